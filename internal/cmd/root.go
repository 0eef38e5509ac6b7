package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"rad-sync/internal/config"
	"rad-sync/internal/intent"

	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Globals captured from flags before Execute()
	RID     intent.RepoID
	Debug   bool
	Verbose bool
	Out     io.Writer
	Err     io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	if p.app != nil {
		// Globals are bound by pflag after the provider is created, so
		// they are copied over on every access.
		p.app.Debug = p.Debug || p.app.Debug
		p.app.Verbose = p.Verbose || p.app.Verbose
	}
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a recording engine.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	cfg, err := config.Resolve()
	if err != nil {
		return nil, err
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	app := &App{
		Config:  cfg,
		Out:     out,
		Err:     errOut,
		Debug:   config.DebugEnabled(),
		Verbose: p.Verbose,
	}
	app.Engine = &reportEngine{app: app}
	return app, nil
}

// Execute runs the CLI.
func Execute() error {
	provider := &AppProvider{
		Out: os.Stdout,
		Err: os.Stderr,
	}

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
//
// The root command is itself the sync invocation; `status` and `version`
// are the only subcommands. The rid/debug/verbose globals are persistent
// flags so both the root and `status` accept them without redeclaring
// them per command.
func newRootCmd(provider *AppProvider) *cobra.Command {
	var (
		fetch     bool
		announce  bool
		inventory bool
		replicas  int
		seeds     intent.NodeIDs
		timeout   int
	)

	rootCmd := &cobra.Command{
		Use:   "rad-sync",
		Short: "Sync repositories to and from the network",
		Long: `Sync repositories to and from the network.

By default, the current repository is synchronized both ways: changes
are fetched from connected seeds, then local refs are announced to
peers, prompting them to fetch from us. If --rid is given, that
repository is synced instead.

When --fetch or --announce is given on its own, only that half of the
sync runs. With --inventory, the node's whole inventory is announced
instead; that mode names no repository and ignores --rid.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Structural checks on numeric flags happen before anything
			// else; a rejected invocation must not reach the engine.
			if replicas < 0 {
				return fmt.Errorf("invalid --replicas value %d: must be zero or positive", replicas)
			}
			if timeout < 0 {
				return fmt.Errorf("invalid --timeout value %d: must be zero or positive", timeout)
			}

			app, err := provider.Get()
			if err != nil {
				return err
			}

			// Operator config fills fields the flags left unset.
			flags := cmd.Flags()
			if !flags.Changed("replicas") {
				replicas = app.Config.Sync.Replicas
			}
			if !flags.Changed("timeout") {
				timeout = app.Config.Sync.Timeout
			}
			if !flags.Changed("seed") {
				for _, s := range app.Config.Sync.Seeds {
					seeds = append(seeds, intent.NodeID(s))
				}
			}

			if inventory && provider.RID != "" {
				// Ignored, not rejected. Surprising enough to mention.
				app.Debugf("ignoring --rid %s in inventory mode", provider.RID)
			}

			mode := intent.Resolve(intent.Flags{
				Fetch:     fetch,
				Announce:  announce,
				Inventory: inventory,
				Replicas:  replicas,
				Seeds:     seeds,
				Timeout:   time.Duration(timeout) * time.Second,
			})

			return app.Engine.Sync(cmd.Context(), provider.RID, mode)
		},
	}

	// Global flags, shared with subcommands
	rootCmd.PersistentFlags().Var(&provider.RID, "rid", "Repository Identifier to be synchronized")
	rootCmd.PersistentFlags().BoolVar(&provider.Debug, "debug", false, "Output debug information, if any")
	rootCmd.PersistentFlags().BoolVarP(&provider.Verbose, "verbose", "v", false, "Output verbose information, if any")

	rootCmd.Flags().BoolVar(&fetch, "fetch", false, "Fetch changes from connected seeds")
	rootCmd.Flags().BoolVar(&announce, "announce", false, "Announce local refs to the network")
	rootCmd.Flags().BoolVar(&inventory, "inventory", false, "Announce the node's inventory instead of syncing a repository")
	rootCmd.Flags().IntVarP(&replicas, "replicas", "r", intent.DefaultReplicas, "Sync with at least N replicas")
	rootCmd.Flags().Var(&seeds, "seed", "Sync with the given node (may be repeated)")
	rootCmd.Flags().IntVar(&timeout, "timeout", int(intent.DefaultTimeout.Seconds()), "How many seconds to wait for syncing to complete")

	// Direction flags and inventory are contradictory; reject the
	// combination during parsing rather than resolving it away.
	rootCmd.MarkFlagsMutuallyExclusive("fetch", "inventory")
	rootCmd.MarkFlagsMutuallyExclusive("announce", "inventory")

	rootCmd.AddCommand(newStatusCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}
