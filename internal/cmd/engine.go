package cmd

import (
	"context"
	"fmt"
	"strings"

	"rad-sync/internal/intent"
)

// reportEngine is the default Engine. It reports the resolved intent
// without touching the network, so the command surface stays usable (and
// testable) without a running node.
type reportEngine struct {
	app *App
}

func (e *reportEngine) Sync(ctx context.Context, rid intent.RepoID, mode intent.SyncMode) error {
	switch m := mode.(type) {
	case intent.Inventory:
		fmt.Fprintln(e.app.Out, e.app.SuccessColor("✓")+" announcing inventory to the network")
	case intent.Repo:
		repo := "the current repository"
		if rid != "" {
			repo = string(rid)
		}
		fmt.Fprintf(e.app.Out, "%s syncing %s (%s)\n", e.app.SuccessColor("✓"), repo, m.Direction)
		if e.app.Verbose {
			fmt.Fprintf(e.app.Out, "  replicas %d, timeout %s, seeds %s\n",
				m.Settings.Replicas, m.Settings.Timeout, formatSeeds(m.Settings.Seeds))
		}
	}
	return nil
}

func (e *reportEngine) Status(ctx context.Context, req intent.StatusRequest) error {
	repo := "the current repository"
	if req.RID != "" {
		repo = string(req.RID)
	}
	fmt.Fprintf(e.app.Out, "sync status of %s, sorted by %s\n", repo, req.SortBy)
	return nil
}

func formatSeeds(seeds []intent.NodeID) string {
	if len(seeds) == 0 {
		return "(none)"
	}
	parts := make([]string, len(seeds))
	for i, s := range seeds {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
