package movielist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/setlist/internal/movie"
	"github.com/gravitrone/setlist/internal/ui/components"
)

var (
	rowTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d7d9da"))

	rowSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)

	rowMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ba0bf"))

	rowSeenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3f866b"))

	rowLikedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a7754e"))
)

// MovieRow is the default row: a one-line summary with delete, edit and
// watched controls bound to its movie id.
type MovieRow struct {
	movie           movie.Movie
	deleteMovie     DeleteFunc
	editMovie       EditFunc
	setMovieWatched SetWatchedFunc
}

// NewMovieRow is the default RowDelegate.
func NewMovieRow(m movie.Movie, deleteMovie DeleteFunc, editMovie EditFunc, setMovieWatched SetWatchedFunc) Row {
	return &MovieRow{
		movie:           m,
		deleteMovie:     deleteMovie,
		editMovie:       editMovie,
		setMovieWatched: setMovieWatched,
	}
}

func (r *MovieRow) Movie() movie.Movie {
	return r.movie
}

// Delete asks the host to remove this movie.
func (r *MovieRow) Delete() {
	r.deleteMovie(r.movie.ID)
}

// Edit asks the host to replace this movie with updated.
func (r *MovieRow) Edit(updated movie.Movie) {
	r.editMovie(r.movie.ID, updated)
}

// MarkWatched marks the movie seen without liking it.
func (r *MovieRow) MarkWatched() {
	r.setMovieWatched(r.movie.ID, true, false)
}

// MarkLiked marks the movie seen and liked.
func (r *MovieRow) MarkLiked() {
	r.setMovieWatched(r.movie.ID, true, true)
}

// MarkUnseen clears the watched status.
func (r *MovieRow) MarkUnseen() {
	r.setMovieWatched(r.movie.ID, false, false)
}

// Render draws the row on a single line. Title and release date are
// sanitized; with a positive width the title is clamped by display width.
func (r *MovieRow) Render(width int, selected bool) string {
	m := r.movie
	title := strings.TrimSpace(components.SanitizeOneLine(m.Title))
	if title == "" {
		title = "(untitled)"
	}
	if released := strings.TrimSpace(components.SanitizeOneLine(m.Released)); released != "" {
		title = fmt.Sprintf("%s (%s)", title, released)
	}
	stars := strings.Repeat("*", clampRating(m.Rating))
	status := renderStatus(m.Watched)

	prefix := "    "
	titleStyle := rowTitleStyle
	if selected {
		prefix = "  > "
		titleStyle = rowSelectedStyle
	}
	suffix := "  " + rowMutedStyle.Render(stars) + "  " + status
	if width > 0 {
		room := width - lipgloss.Width(prefix) - lipgloss.Width(suffix)
		if room < 1 {
			room = 1
		}
		title = components.ClampTextWidth(title, room)
	}
	return titleStyle.Render(prefix+title) + suffix
}

func renderStatus(w movie.Watched) string {
	label := w.StatusLabel()
	switch {
	case w.Seen && w.Liked:
		label = rowLikedStyle.Render(label)
	case w.Seen:
		label = rowSeenStyle.Render(label)
	default:
		return rowMutedStyle.Render(label)
	}
	if w.When != nil {
		label += " " + rowMutedStyle.Render(w.When.Format("2006-01-02"))
	}
	return label
}

func clampRating(rating int) int {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return rating
}
