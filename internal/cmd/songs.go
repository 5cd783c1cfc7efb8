package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gravitrone/setlist/internal/songlist"
)

// SongsCmd returns the `setlist songs` command group. Each action is applied
// to the seed in memory and the resulting list is printed; the seed file is
// not modified.
func SongsCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "songs",
		Short: "Show or edit the song list",
	}
	cmd.AddCommand(songsListCmd(opts))
	cmd.AddCommand(songsAddCmd(opts))
	cmd.AddCommand(songsEditCmd(opts))
	cmd.AddCommand(songsDeleteCmd(opts))
	return cmd
}

func songsListCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the song list",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			songs, err := loadSongs(*opts)
			if err != nil {
				return err
			}
			printSongs(c.OutOrStdout(), songs)
			return nil
		},
	}
}

func songsAddCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Append an empty line",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return applySongs(c.OutOrStdout(), *opts, func(v songlist.View) { v.Add() })
		},
	}
}

func songsEditCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <index> <text>",
		Short: "Replace the line at index",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be a number: %w", err)
			}
			text := args[1]
			return applySongs(c.OutOrStdout(), *opts, func(v songlist.View) { v.Edit(idx, text) })
		},
	}
}

func songsDeleteCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Remove the line at index",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be a number: %w", err)
			}
			return applySongs(c.OutOrStdout(), *opts, func(v songlist.View) { v.Delete(idx) })
		},
	}
}

func loadSongs(opts Options) ([]string, error) {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return nil, err
	}
	state, err := LoadState(cfg)
	if err != nil {
		return nil, err
	}
	return state.Songs, nil
}

// applySongs runs one action through the songlist controller and prints the
// list the setter received.
func applySongs(out io.Writer, opts Options, action func(songlist.View)) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	state, err := LoadState(cfg)
	if err != nil {
		return err
	}
	logger, closeLog, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	var next []string
	changed := false
	view := songlist.New(logger).Render(state.Songs, func(songs []string) {
		next = songs
		changed = true
	})
	action(view)
	if !changed {
		return fmt.Errorf("%w: no line at that index (%d lines)", errNoChange, len(state.Songs))
	}
	printSongs(out, next)
	return nil
}

func printSongs(out io.Writer, songs []string) {
	if len(songs) == 0 {
		fmt.Fprintln(out, "no songs")
		return
	}
	for i, s := range songs {
		fmt.Fprintf(out, "%3d  %s\n", i, s)
	}
}
