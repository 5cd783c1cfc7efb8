// Package movielist renders a movie collection as one delegated row per
// record. The list itself changes nothing: the delete, edit and watched
// callbacks of the host go to every row as given.
package movielist

import "github.com/gravitrone/setlist/internal/movie"

// DeleteFunc removes the movie with the given id.
type DeleteFunc func(id string)

// EditFunc replaces the movie with the given id.
type EditFunc func(id string, updated movie.Movie)

// SetWatchedFunc sets the watched status of the movie with the given id.
type SetWatchedFunc func(id string, seen, liked bool)

// Row is one rendered movie.
type Row interface {
	Movie() movie.Movie
	Render(width int, selected bool) string
}

// Controls is implemented by rows that expose the movie actions.
type Controls interface {
	Delete()
	Edit(updated movie.Movie)
	MarkWatched()
	MarkLiked()
	MarkUnseen()
}

// RowDelegate builds the row for one movie.
type RowDelegate func(m movie.Movie, deleteMovie DeleteFunc, editMovie EditFunc, setMovieWatched SetWatchedFunc) Row

// View is one render of a movie list.
type View struct {
	Rows []Row
}

// Len returns the number of rows.
func (v View) Len() int {
	return len(v.Rows)
}

// Row returns the row at index, or false when there is none.
func (v View) Row(index int) (Row, bool) {
	if index < 0 || index >= len(v.Rows) {
		return nil, false
	}
	return v.Rows[index], true
}

// Render builds one row per movie, in order. A nil delegate uses NewMovieRow.
func Render(movies []movie.Movie, deleteMovie DeleteFunc, editMovie EditFunc, setMovieWatched SetWatchedFunc, delegate RowDelegate) View {
	if delegate == nil {
		delegate = NewMovieRow
	}
	rows := make([]Row, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, delegate(m, deleteMovie, editMovie, setMovieWatched))
	}
	return View{Rows: rows}
}
