package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/setlist/internal/cmd"
	"github.com/gravitrone/setlist/internal/movie"
	"github.com/gravitrone/setlist/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	opts := &cmd.Options{}
	root := &cobra.Command{
		Use:   "setlist",
		Short: "setlist - edit a song list and a movie list",
		Long:  "setlist: edit song lines and keep track of watched movies from the terminal.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(*opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.SeedFile, "seed", "", "seed file with initial songs and movies (.yaml or .toml)")
	root.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "write logs to this file")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(cmd.SongsCmd(opts))
	root.AddCommand(cmd.MoviesCmd(opts))
	root.AddCommand(cmd.SeedCmd())
	root.AddCommand(cmd.ConfigCmd())
	return root
}

func runTUI(opts cmd.Options) error {
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return errors.New("setlist needs a terminal; use the songs or movies subcommands instead")
	}
	cfg, err := cmd.LoadConfig(opts)
	if err != nil {
		return err
	}
	logger, closeLog, err := cmd.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	state, err := cmd.LoadState(cfg)
	if err != nil {
		return err
	}
	notice := ""
	if err := state.Check(); err != nil {
		logger.Warn("seed has problems", slog.String("seed", cfg.SeedFile), slog.String("error", err.Error()))
		if errors.Is(err, movie.ErrDuplicateID) {
			notice = "warning: " + err.Error()
		}
	}

	app := ui.NewApp(state, cfg, logger, notice)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
