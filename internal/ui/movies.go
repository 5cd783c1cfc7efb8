package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/setlist/internal/movie"
	"github.com/gravitrone/setlist/internal/movielist"
	"github.com/gravitrone/setlist/internal/ui/components"
)

type moviesView int

const (
	moviesViewList moviesView = iota
	moviesViewConfirmDelete
	moviesViewEdit
	moviesViewNew
)

const (
	movieFieldTitle = iota
	movieFieldRating
	movieFieldReleased
	movieFieldDescription
	movieFieldSoundtrack
	movieFieldCount
)

var movieFieldLabels = []string{"Title", "Rating", "Released", "Description", "Soundtrack"}

// --- Movies Model ---

// MoviesModel owns the movie store. Rows come from movielist.Render with
// callbacks that apply changes to the store; the model only picks the row
// under the cursor and activates one of its controls.
type MoviesModel struct {
	store    *movie.Store
	delegate movielist.RowDelegate
	list     *components.List
	view     moviesView
	vimKeys  bool
	errText  string
	logger   *slog.Logger
	width    int
	height   int

	// edit
	editID    string
	editFocus int
	editBufs  [movieFieldCount]string
	editErr   string

	// new
	newTitle string
}

// NewMoviesModel builds the movies tab around a store.
func NewMoviesModel(store *movie.Store, pageSize int, vimKeys bool, logger *slog.Logger) MoviesModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	list := components.NewList(pageSize)
	list.SetCount(store.Len())
	return MoviesModel{
		store:    store,
		delegate: movielist.NewMovieRow,
		list:     list,
		view:     moviesViewList,
		vimKeys:  vimKeys,
		logger:   logger,
	}
}

// Movies returns the current movie collection.
func (m MoviesModel) Movies() []movie.Movie {
	return m.store.Movies()
}

// capturesText reports whether printable keys belong to an input.
func (m MoviesModel) capturesText() bool {
	return m.view == moviesViewEdit || m.view == moviesViewNew
}

func (m MoviesModel) Update(msg tea.Msg) (MoviesModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.view {
	case moviesViewConfirmDelete:
		return m.handleConfirmKeys(key)
	case moviesViewEdit:
		return m.handleEditKeys(key)
	case moviesViewNew:
		return m.handleNewKeys(key)
	default:
		return m.handleListKeys(key)
	}
}

// render builds the rows with callbacks bound to the store. Store errors are
// collected in errs.
func (m MoviesModel) render(errs *[]error) movielist.View {
	record := func(err error) {
		if err != nil {
			m.logger.Warn("movie action rejected", slog.String("error", err.Error()))
			*errs = append(*errs, err)
		}
	}
	return movielist.Render(
		m.store.Movies(),
		func(id string) { record(m.store.Delete(id)) },
		func(id string, updated movie.Movie) { record(m.store.Edit(id, updated)) },
		func(id string, seen, liked bool) { record(m.store.SetWatched(id, seen, liked)) },
		m.delegate,
	)
}

// withSelected activates a control on the row under the cursor.
func (m MoviesModel) withSelected(action func(movielist.Controls)) MoviesModel {
	var errs []error
	view := m.render(&errs)
	row, ok := view.Row(m.list.Selected())
	if !ok {
		return m
	}
	controls, ok := row.(movielist.Controls)
	if !ok {
		m.errText = "row has no controls"
		return m
	}
	action(controls)
	m.list.SetCount(m.store.Len())
	m.errText = ""
	if err := errors.Join(errs...); err != nil {
		m.errText = err.Error()
	}
	return m
}

func (m MoviesModel) selected() (movie.Movie, bool) {
	var errs []error
	row, ok := m.render(&errs).Row(m.list.Selected())
	if !ok {
		return movie.Movie{}, false
	}
	return row.Movie(), true
}

// --- List View ---

func (m MoviesModel) handleListKeys(msg tea.KeyMsg) (MoviesModel, tea.Cmd) {
	// A rejection is shown until the next key.
	m.errText = ""
	switch {
	case isUp(msg, m.vimKeys):
		m.list.Up()
	case isDown(msg, m.vimKeys):
		m.list.Down()
	case isKey(msg, "w"):
		m = m.withSelected(movielist.Controls.MarkWatched)
	case isKey(msg, "l"):
		m = m.withSelected(movielist.Controls.MarkLiked)
	case isKey(msg, "u"):
		m = m.withSelected(movielist.Controls.MarkUnseen)
	case isKey(msg, "d", "delete"):
		if _, ok := m.selected(); ok {
			m.view = moviesViewConfirmDelete
		}
	case isKey(msg, "e"), isEnter(msg):
		if mv, ok := m.selected(); ok {
			m.startEdit(mv)
		}
	case isKey(msg, "n"):
		m.newTitle = ""
		m.view = moviesViewNew
	}
	return m, nil
}

func (m MoviesModel) renderList() string {
	var errs []error
	view := m.render(&errs)
	if view.Len() == 0 {
		return components.Box(MutedStyle.Render("No movies. Press n to add one."), m.width)
	}

	var rows strings.Builder
	contentWidth := components.BoxContentWidth(m.width)
	start, end := m.list.Window()
	for i := start; i < end; i++ {
		rows.WriteString(view.Rows[i].Render(contentWidth, m.list.IsSelected(i)))
		if i < end-1 {
			rows.WriteString("\n")
		}
	}
	content := MutedStyle.Render(fmt.Sprintf("%d movies", view.Len())) + "\n\n" + rows.String()
	sections := []string{components.TitledBox("Movies", content, m.width)}
	if row, ok := view.Row(m.list.Selected()); ok {
		sections = append(sections, renderMovieDetail(row.Movie(), m.width))
	}
	return strings.Join(sections, "\n\n")
}

func renderMovieDetail(mv movie.Movie, width int) string {
	rows := []components.TableRow{
		{Label: "ID", Value: mv.ID},
		{Label: "Rating", Value: strconv.Itoa(mv.Rating)},
		{Label: "Status", Value: mv.Watched.StatusLabel()},
	}
	if mv.Watched.When != nil {
		rows = append(rows, components.TableRow{Label: "Watched", Value: mv.Watched.When.Format("2006-01-02 15:04")})
	}
	if mv.Released != "" {
		rows = append(rows, components.TableRow{Label: "Released", Value: mv.Released})
	}
	if mv.Description != "" {
		rows = append(rows, components.TableRow{Label: "Description", Value: mv.Description})
	}
	if len(mv.Soundtrack) > 0 {
		rows = append(rows, components.TableRow{Label: "Soundtrack", Value: strings.Join(mv.Soundtrack, ", ")})
	}
	title := components.SanitizeOneLine(mv.Title)
	if title == "" {
		title = "Movie"
	}
	return components.Table(title, rows, width)
}

// --- Delete Confirmation ---

func (m MoviesModel) handleConfirmKeys(msg tea.KeyMsg) (MoviesModel, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		m = m.withSelected(movielist.Controls.Delete)
		m.view = moviesViewList
	case isKey(msg, "n"), isBack(msg):
		m.view = moviesViewList
	}
	return m, nil
}

func (m MoviesModel) renderConfirm() string {
	mv, _ := m.selected()
	title := strings.TrimSpace(mv.Title)
	if title == "" {
		title = mv.ID
	}
	return components.ConfirmDialog("Delete movie", fmt.Sprintf("Remove %s?", title))
}

// --- Edit View ---

func (m *MoviesModel) startEdit(mv movie.Movie) {
	m.editID = mv.ID
	m.editFocus = movieFieldTitle
	m.editErr = ""
	m.editBufs = [movieFieldCount]string{
		movieFieldTitle:       mv.Title,
		movieFieldRating:      strconv.Itoa(mv.Rating),
		movieFieldReleased:    mv.Released,
		movieFieldDescription: mv.Description,
		movieFieldSoundtrack:  strings.Join(mv.Soundtrack, ", "),
	}
	m.view = moviesViewEdit
}

func (m MoviesModel) handleEditKeys(msg tea.KeyMsg) (MoviesModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.view = moviesViewList
		m.editErr = ""
	case isUp(msg, false):
		m.editFocus = (m.editFocus - 1 + movieFieldCount) % movieFieldCount
	case isDown(msg, false), isKey(msg, "tab"):
		m.editFocus = (m.editFocus + 1) % movieFieldCount
	case isKey(msg, "ctrl+s"):
		return m.saveEdit()
	case m.editFocus == movieFieldRating && isKey(msg, "left", "right"):
		rating, _ := strconv.Atoi(m.editBufs[movieFieldRating])
		if isKey(msg, "left") && rating > 0 {
			rating--
		}
		if isKey(msg, "right") && rating < 5 {
			rating++
		}
		m.editBufs[movieFieldRating] = strconv.Itoa(rating)
	case isKey(msg, "backspace", "delete"):
		m.editBufs[m.editFocus] = dropLastRune(m.editBufs[m.editFocus])
	case isKey(msg, "ctrl+u"):
		m.editBufs[m.editFocus] = ""
	default:
		if text, ok := typedText(msg); ok {
			m.editBufs[m.editFocus] += text
		}
	}
	return m, nil
}

// saveEdit builds the updated record from the form, keeping the fields the
// form does not show, and sends it through the row's edit control.
func (m MoviesModel) saveEdit() (MoviesModel, tea.Cmd) {
	current, err := m.store.Get(m.editID)
	if err != nil {
		m.editErr = err.Error()
		return m, nil
	}
	rating := 0
	if raw := strings.TrimSpace(m.editBufs[movieFieldRating]); raw != "" {
		rating, err = strconv.Atoi(raw)
		if err != nil {
			m.editErr = fmt.Sprintf("rating must be a number, got %q", raw)
			return m, nil
		}
	}
	updated := current.Clone()
	updated.Title = strings.TrimSpace(m.editBufs[movieFieldTitle])
	updated.Rating = rating
	updated.Released = strings.TrimSpace(m.editBufs[movieFieldReleased])
	updated.Description = strings.TrimSpace(m.editBufs[movieFieldDescription])
	updated.Soundtrack = splitSoundtrack(m.editBufs[movieFieldSoundtrack])

	id := m.editID
	m = m.withSelectedID(id, func(c movielist.Controls) { c.Edit(updated) })
	if m.errText != "" {
		m.editErr = m.errText
		return m, nil
	}
	m.view = moviesViewList
	return m, nil
}

// withSelectedID activates a control on the first row carrying id.
func (m MoviesModel) withSelectedID(id string, action func(movielist.Controls)) MoviesModel {
	var errs []error
	view := m.render(&errs)
	for i, row := range view.Rows {
		if row.Movie().ID != id {
			continue
		}
		prev := m.list.Cursor
		m.list.Cursor = i
		m = m.withSelected(action)
		m.list.Cursor = prev
		m.list.SetCount(m.store.Len())
		return m
	}
	m.errText = fmt.Errorf("%w: %q", movie.ErrUnknownID, id).Error()
	return m
}

func splitSoundtrack(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (m MoviesModel) renderEdit() string {
	var b strings.Builder
	for i, label := range movieFieldLabels {
		value := components.SanitizeOneLine(m.editBufs[i])
		if i == m.editFocus {
			b.WriteString(SelectedStyle.Render("> " + label + ":"))
			b.WriteString("\n")
			b.WriteString(NormalStyle.Render("  "+value) + cursorBlock)
		} else {
			b.WriteString(MutedStyle.Render("  " + label + ":"))
			b.WriteString("\n")
			if value == "" {
				value = "-"
			}
			b.WriteString(NormalStyle.Render("  " + value))
		}
		if i < len(movieFieldLabels)-1 {
			b.WriteString("\n\n")
		}
	}
	if m.editErr != "" {
		b.WriteString("\n\n" + ErrorStyle.Render(m.editErr))
	}
	return components.ActiveBox(b.String(), m.width)
}

// --- New Movie ---

func (m MoviesModel) handleNewKeys(msg tea.KeyMsg) (MoviesModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.view = moviesViewList
	case isEnter(msg):
		title := strings.TrimSpace(m.newTitle)
		if title == "" {
			m.view = moviesViewList
			return m, nil
		}
		added := m.store.Add(movie.Movie{Title: title})
		m.logger.Info("movie added", slog.String("id", added.ID), slog.String("title", title))
		m.list.SetCount(m.store.Len())
		m.list.Last()
		m.view = moviesViewList
	case isKey(msg, "backspace", "delete"):
		m.newTitle = dropLastRune(m.newTitle)
	default:
		if text, ok := typedText(msg); ok {
			m.newTitle += text
		}
	}
	return m, nil
}

func (m MoviesModel) View() string {
	var body string
	switch m.view {
	case moviesViewConfirmDelete:
		body = m.renderConfirm()
	case moviesViewEdit:
		body = m.renderEdit()
	case moviesViewNew:
		body = components.InputDialog("New movie", m.newTitle)
	default:
		body = m.renderList()
	}
	if m.errText != "" {
		body += "\n\n" + components.ErrorBox("Rejected", m.errText, m.width)
	}
	return body
}

func (m MoviesModel) hints() []components.KeyHint {
	switch m.view {
	case moviesViewEdit:
		return []components.KeyHint{
			{Key: "↑/↓", Desc: "Field"},
			{Key: "←/→", Desc: "Rating"},
			{Key: "ctrl+s", Desc: "Save"},
			{Key: "esc", Desc: "Cancel"},
		}
	case moviesViewConfirmDelete, moviesViewNew:
		return nil
	}
	return []components.KeyHint{
		{Key: "↑/↓", Desc: "Move"},
		{Key: "w", Desc: "Watched"},
		{Key: "l", Desc: "Liked"},
		{Key: "u", Desc: "Unseen"},
		{Key: "e", Desc: "Edit"},
		{Key: "d", Desc: "Delete"},
		{Key: "n", Desc: "New"},
	}
}
