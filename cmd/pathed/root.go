package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pathed/internal/config"
	"pathed/internal/envstore"
	"pathed/internal/history"
	"pathed/internal/logging"
	"pathed/internal/pathlist"
	"pathed/internal/style"
)

var version = "0.1.0"

// annotationMutates marks commands whose failure falls back to echoing the
// unmodified PATH, so `export PATH="$(pathed ...)"` never clobbers it.
const annotationMutates = "pathed/mutates"

type options struct {
	verbosity  int
	quiet      bool
	dryRun     bool
	history    bool
	shell      string
	configPath string
}

// app carries everything a command needs. The store and history log are
// built once flags and config are known.
type app struct {
	opts   options
	stdout io.Writer
	stderr io.Writer
	getwd  func() (string, error)
	exists func(pathlist.Entry) bool

	store   envstore.Store
	history *history.Log
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		getwd:  os.Getwd,
		exists: envstore.Exists,
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pathed",
		Short:   "Inspect and reorder the directories in PATH",
		Long:    rootLong,
		Example: rootExample,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(a.opts.verbosity, a.stderr)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLs(formatPlain)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	bindGlobalFlags(rootCmd.PersistentFlags(), &a.opts)

	rootCmd.AddCommand(
		newLsCmd(a),
		newAddCmd(a),
		newRmCmd(a),
		newMoveCmd(a, moveUp),
		newMoveCmd(a, moveDown),
		newCleanCmd(a),
		newRevertCmd(a),
		newHistoryCmd(a),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return rootCmd
}

func bindGlobalFlags(flags *pflag.FlagSet, opts *options) {
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Don't print warnings or errors")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Preview the change on stderr without printing the new PATH")
	flags.BoolVarP(&opts.history, "history", "H", false, "Record the current PATH in the history before changing it")
	flags.StringVar(&opts.shell, "shell", "", "Output mode: raw, bash, zsh, sh, fish, powershell (default raw)")
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/pathed/config.yaml)")
}

// configure merges the config file under the flags and builds the store.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("shell") && cfg.Shell != "" {
		a.opts.shell = cfg.Shell
	}
	a.opts.quiet = a.opts.quiet || cfg.Quiet
	a.opts.history = a.opts.history || cfg.History

	store, err := envstore.New(envstore.Options{
		Mode:   a.opts.shell,
		Stdout: a.stdout,
		Stderr: a.stderr,
	})
	if err != nil {
		return err
	}
	a.store = store
	a.history = history.New(cfg.HistoryFile)
	return nil
}

func (a *app) cwd() (string, error) {
	dir, err := a.getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return dir, nil
}

// commit writes list out and, once that succeeded, records the previous
// value when asked to. A history failure is only a warning: the new value
// is already on stdout.
func (a *app) commit(op string, list pathlist.List) error {
	logger := logging.GetLogger("cmd." + op)
	logger.Info().
		Int("entries", len(list)).
		Bool("dryRun", a.opts.dryRun).
		Msg("Writing PATH")
	if err := a.store.Write(list, a.opts.dryRun); err != nil {
		return err
	}
	if !a.opts.history || a.opts.dryRun {
		return nil
	}

	if err := a.history.Append(a.store.Raw()); err != nil {
		logger.Warn().Err(err).Str("file", a.history.Path()).Msg("Failed to record previous PATH")
		return nil
	}
	logger.Info().Str("file", a.history.Path()).Msg("Recorded previous PATH")
	return nil
}

// execute runs the command line and returns the process exit code. On a
// failed edit the original PATH is echoed so callers keep a usable value.
func execute(a *app, args []string) int {
	rootCmd := newRootCmd(a)
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	if !a.opts.quiet {
		msg := fmt.Sprintf("Error: %v", err)
		fmt.Fprintln(a.stderr, style.Render("Error", msg, style.IsTerminal(a.stderr)))
	}

	if cmd != nil && cmd.Annotations[annotationMutates] == "true" {
		store := a.store
		if store == nil {
			// flags or config failed before the configured store existed
			store, _ = envstore.New(envstore.Options{Stdout: a.stdout, Stderr: a.stderr})
		}
		if echoErr := store.Echo(); echoErr != nil && !a.opts.quiet {
			fmt.Fprintln(a.stderr, echoErr)
		}
	}
	return 1
}
