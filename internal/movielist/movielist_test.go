package movielist

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/setlist/internal/movie"
)

type watchedCall struct {
	id    string
	seen  bool
	liked bool
}

type editCall struct {
	id      string
	updated movie.Movie
}

// recorder is a host that only records callback invocations.
type recorder struct {
	deletes []string
	edits   []editCall
	watched []watchedCall
}

func (r *recorder) deleteMovie(id string) {
	r.deletes = append(r.deletes, id)
}

func (r *recorder) editMovie(id string, updated movie.Movie) {
	r.edits = append(r.edits, editCall{id: id, updated: updated})
}

func (r *recorder) setMovieWatched(id string, seen, liked bool) {
	r.watched = append(r.watched, watchedCall{id: id, seen: seen, liked: liked})
}

func (r *recorder) render(movies []movie.Movie) View {
	return Render(movies, r.deleteMovie, r.editMovie, r.setMovieWatched, nil)
}

func testMovies() []movie.Movie {
	return []movie.Movie{
		{ID: "m1", Title: "Alien", Rating: 5},
		{ID: "w1", Title: "Heat", Rating: 4},
		{ID: "m3", Title: "Tron", Watched: movie.Watched{Seen: true, Liked: true}},
	}
}

func controls(t *testing.T, row Row) Controls {
	t.Helper()
	c, ok := row.(Controls)
	require.True(t, ok, "row %T has no controls", row)
	return c
}

func TestRenderOneRowPerMovieInOrder(t *testing.T) {
	rec := &recorder{}
	view := rec.render(testMovies())

	require.Equal(t, 3, view.Len())
	for i, m := range testMovies() {
		assert.Equal(t, m.ID, view.Rows[i].Movie().ID)
	}
}

func TestRenderEmptyHasNoRows(t *testing.T) {
	rec := &recorder{}
	assert.Equal(t, 0, rec.render(nil).Len())
	assert.Equal(t, 0, rec.render([]movie.Movie{}).Len())
	_, ok := rec.render(nil).Row(0)
	assert.False(t, ok)
}

func TestRenderKeepsDuplicates(t *testing.T) {
	rec := &recorder{}
	movies := []movie.Movie{{ID: "a"}, {ID: "a"}, {ID: "b"}}

	view := rec.render(movies)

	require.Equal(t, 3, view.Len())
	assert.Equal(t, "a", view.Rows[1].Movie().ID)
}

func TestDelegateReceivesHostCallbacks(t *testing.T) {
	rec := &recorder{}
	var got []movie.Movie
	delegate := func(m movie.Movie, del DeleteFunc, edit EditFunc, watched SetWatchedFunc) Row {
		got = append(got, m)
		// Invoke the callbacks exactly as handed over.
		del(m.ID)
		edit(m.ID, movie.Movie{Title: "x"})
		watched(m.ID, true, true)
		return NewMovieRow(m, del, edit, watched)
	}

	Render(testMovies()[:2], rec.deleteMovie, rec.editMovie, rec.setMovieWatched, delegate)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"m1", "w1"}, rec.deletes)
	require.Len(t, rec.edits, 2)
	assert.Equal(t, "x", rec.edits[1].updated.Title)
	assert.Equal(t, []watchedCall{{"m1", true, true}, {"w1", true, true}}, rec.watched)
}

func TestRowControlsForwardIDAndArguments(t *testing.T) {
	rec := &recorder{}
	view := rec.render(testMovies())

	row := controls(t, view.Rows[2])
	row.Delete()
	row.Delete()
	row.Edit(movie.Movie{Title: "Tron: Legacy"})
	row.MarkLiked()
	row.MarkUnseen()

	assert.Equal(t, []string{"m3", "m3"}, rec.deletes)
	require.Len(t, rec.edits, 1)
	assert.Equal(t, "m3", rec.edits[0].id)
	assert.Equal(t, "Tron: Legacy", rec.edits[0].updated.Title)
	assert.Equal(t, []watchedCall{{"m3", true, true}, {"m3", false, false}}, rec.watched)
}

func TestWatchedToggleTargetsOneMovie(t *testing.T) {
	rec := &recorder{}
	view := rec.render(testMovies())

	controls(t, view.Rows[1]).MarkWatched()

	assert.Equal(t, []watchedCall{{id: "w1", seen: true, liked: false}}, rec.watched)
	assert.Empty(t, rec.deletes)
	assert.Empty(t, rec.edits)
}

func TestUnknownIDIsForwarded(t *testing.T) {
	rec := &recorder{}
	// A row built from a movie the host no longer has still forwards its id.
	row := NewMovieRow(movie.Movie{ID: "gone"}, rec.deleteMovie, rec.editMovie, rec.setMovieWatched)

	controls(t, row).Delete()

	assert.Equal(t, []string{"gone"}, rec.deletes)
}

func TestMovieRowRender(t *testing.T) {
	rec := &recorder{}
	view := rec.render([]movie.Movie{
		{ID: "a", Title: "Alien", Rating: 5, Released: "1979"},
		{ID: "b", Title: ""},
	})

	out := view.Rows[0].Render(80, true)
	assert.Contains(t, out, "> Alien (1979)")
	assert.Contains(t, out, "*****")
	assert.Contains(t, out, "unseen")

	assert.Contains(t, view.Rows[1].Render(80, false), "(untitled)")
}

func TestClampRating(t *testing.T) {
	assert.Equal(t, 0, clampRating(-2))
	assert.Equal(t, 3, clampRating(3))
	assert.Equal(t, 5, clampRating(9))
}

func TestMovieRowRenderStripsControlSequences(t *testing.T) {
	rec := &recorder{}
	view := rec.render([]movie.Movie{
		{ID: "a", Title: "Evil\x1b]0;pwned\x07\nsecond", Released: "19\x1b[31m79"},
	})

	for _, width := range []int{0, 80} {
		out := view.Rows[0].Render(width, true)
		assert.NotContains(t, out, "\x1b]0;")
		assert.NotContains(t, out, "\x07")
		assert.NotContains(t, out, "\n")
		assert.NotContains(t, out, "pwned")
		assert.Contains(t, out, "Evil")
		assert.Contains(t, out, "second")
		assert.Contains(t, out, "(1979)")
	}
}

func TestMovieRowRenderClampsByDisplayWidth(t *testing.T) {
	rec := &recorder{}
	view := rec.render([]movie.Movie{
		{ID: "a", Title: strings.Repeat("你好", 20), Rating: 5},
	})

	out := view.Rows[0].Render(30, false)
	assert.LessOrEqual(t, lipgloss.Width(out), 30)
	assert.Contains(t, out, "你")
}
