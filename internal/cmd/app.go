// Package cmd implements the rad-sync command-line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"rad-sync/internal/config"
	"rad-sync/internal/intent"

	"golang.org/x/term"
)

// Engine executes resolved sync intents against the local node. The real
// engine lives in the node process; rad-sync only produces the intent.
type Engine interface {
	// Sync runs a repository sync or inventory announcement. rid is the
	// zero value when the invocation named no repository.
	Sync(ctx context.Context, rid intent.RepoID, mode intent.SyncMode) error
	// Status displays the sync status table for a repository.
	Status(ctx context.Context, req intent.StatusRequest) error
}

// App holds application state shared across commands.
type App struct {
	Engine  Engine
	Config  config.Config
	Out     io.Writer
	Err     io.Writer
	Debug   bool
	Verbose bool
}

// Debugf writes debug output to stderr when --debug is set.
func (a *App) Debugf(format string, args ...any) {
	if a.Debug {
		fmt.Fprintf(a.Err, "debug: "+format+"\n", args...)
	}
}

// SuccessColor returns the string wrapped in green ANSI codes if stdout is a terminal,
// otherwise returns the string unchanged.
func (a *App) SuccessColor(s string) string {
	if f, ok := a.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[32m" + s + "\033[0m"
	}
	return s
}

// WarnColor returns the string wrapped in orange ANSI codes if stdout is a terminal,
// otherwise returns the string unchanged.
func (a *App) WarnColor(s string) string {
	if f, ok := a.Out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "\033[38;5;214m" + s + "\033[0m"
	}
	return s
}
