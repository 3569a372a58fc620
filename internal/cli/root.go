// Package cli wires configuration, the command registry and the TUI shell
// behind the rms command line.
package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lumipallolabs/rms/internal/command"
	"github.com/lumipallolabs/rms/internal/config"
	"github.com/lumipallolabs/rms/internal/history"
	"github.com/lumipallolabs/rms/internal/logging"
	"github.com/lumipallolabs/rms/internal/reveal"
	"github.com/lumipallolabs/rms/internal/ui/tui"
)

// Build information
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// SetVersionInfo updates the build information variables
func SetVersionInfo(v, c, d, b string) {
	version = v
	commit = c
	date = d
	builtBy = b
}

// newRevealer builds the platform revealer. Replaced in tests.
var newRevealer = func(cfg *config.Config) reveal.Revealer {
	return reveal.Default(reveal.WithLinuxBackend(cfg.LinuxBackend))
}

// runProgram runs the TUI. Replaced in tests.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// options holds flag values shared by every subcommand
type options struct {
	cfgFile string
	dir     string
	debug   bool

	cfg *config.Config
}

// NewRootCmd builds the rms command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "rms [path]",
		Short: "Reveal files in the system file manager",
		Long: `rms shows a file or folder in the platform file manager, with the
item selected where the file manager supports it.

Run without a subcommand it opens an interactive shell with an application
and Edit menu, a path input and a list of recently revealed paths.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			start := ""
			if len(args) == 1 {
				start = args[0]
			}
			return runShell(opts.cfg, start)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is <config dir>/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.dir, "dir", "", "config directory (default is $XDG_CONFIG_HOME/rms)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write debug.log to the config directory")

	rootCmd.AddCommand(newRevealCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (o *options) initConfig(cmd *cobra.Command) error {
	v := config.New()
	if err := v.BindPFlag(config.KeyDebug, cmd.Flags().Lookup("debug")); err != nil {
		return err
	}

	cfg, err := config.Load(v, o.cfgFile, o.dir)
	if err != nil {
		return err
	}
	if cfg.Debug {
		logging.Enable(cfg.Dir)
	}
	logging.Debug.Debug().
		Str("config", cfg.File).
		Str("backend", string(cfg.LinuxBackend)).
		Int("history_size", cfg.HistorySize).
		Msg("config loaded")

	o.cfg = cfg
	return nil
}

func runShell(cfg *config.Config, start string) error {
	hist := history.NewManager(history.DefaultPath(cfg.Dir), cfg.HistorySize)
	if err := hist.Load(); err != nil {
		// A corrupt history file should not keep the shell from starting
		logging.Debug.Warn().Err(err).Msg("load history")
	}
	defer func() {
		if err := hist.Close(); err != nil {
			logging.Debug.Warn().Err(err).Msg("save history")
		}
	}()

	app, err := tui.NewApp(tui.Options{
		AppName:   cfg.AppName,
		Version:   version,
		StartPath: start,
		Registry:  command.NewDefaultRegistry(newRevealer(cfg)),
		History:   hist,
	})
	if err != nil {
		return err
	}

	if err := runProgram(app); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run shell: %w", err)
	}
	return nil
}
