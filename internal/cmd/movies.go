package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gravitrone/setlist/internal/movie"
	"github.com/gravitrone/setlist/internal/movielist"
)

// MoviesCmd returns the `setlist movies` command group. Like `songs`, changes
// are printed and never written back.
func MoviesCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "Show or update the movie list",
	}
	cmd.AddCommand(moviesListCmd(opts))
	cmd.AddCommand(moviesWatchCmd(opts))
	cmd.AddCommand(moviesUnwatchCmd(opts))
	cmd.AddCommand(moviesDeleteCmd(opts))
	return cmd
}

func moviesListCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the movie list",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runMovies(c.OutOrStdout(), *opts, "", nil)
		},
	}
}

func moviesWatchCmd(opts *Options) *cobra.Command {
	var liked bool
	cmd := &cobra.Command{
		Use:   "watch <id>",
		Short: "Mark a movie as seen",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			action := movielist.Controls.MarkWatched
			if liked {
				action = movielist.Controls.MarkLiked
			}
			return runMovies(c.OutOrStdout(), *opts, args[0], action)
		},
	}
	cmd.Flags().BoolVarP(&liked, "liked", "l", false, "also mark the movie as liked")
	return cmd
}

func moviesUnwatchCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "unwatch <id>",
		Short: "Clear a movie's watched status",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runMovies(c.OutOrStdout(), *opts, args[0], movielist.Controls.MarkUnseen)
		},
	}
}

func moviesDeleteCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runMovies(c.OutOrStdout(), *opts, args[0], movielist.Controls.Delete)
		},
	}
}

// runMovies activates action on the row for id, then prints every row. With
// an empty id it only prints.
func runMovies(out io.Writer, opts Options, id string, action func(movielist.Controls)) error {
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

	store := movie.NewStore(state.Movies, movie.WithLogger(logger))
	var errs []error
	record := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	deleteMovie := func(id string) { record(store.Delete(id)) }
	editMovie := func(id string, updated movie.Movie) { record(store.Edit(id, updated)) }
	setMovieWatched := func(id string, seen, liked bool) { record(store.SetWatched(id, seen, liked)) }
	render := func() movielist.View {
		return movielist.Render(store.Movies(), deleteMovie, editMovie, setMovieWatched, nil)
	}

	if action != nil {
		row, ok := findRow(render(), id)
		if !ok {
			// Unknown ids still go to the store, which rejects them.
			row = movielist.NewMovieRow(movie.Movie{ID: id}, deleteMovie, editMovie, setMovieWatched)
		}
		controls, ok := row.(movielist.Controls)
		if !ok {
			return fmt.Errorf("row for %q has no controls", id)
		}
		action(controls)
		if err := errors.Join(errs...); err != nil {
			return err
		}
	}

	view := render()
	if view.Len() == 0 {
		fmt.Fprintln(out, "no movies")
		return nil
	}
	for _, row := range view.Rows {
		fmt.Fprintln(out, row.Render(0, row.Movie().ID == id))
	}
	return nil
}

func findRow(view movielist.View, id string) (movielist.Row, bool) {
	for _, row := range view.Rows {
		if row.Movie().ID == id {
			return row, true
		}
	}
	return nil, false
}
