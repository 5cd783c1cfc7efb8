package ui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/setlist/internal/songlist"
	"github.com/gravitrone/setlist/internal/ui/components"
)

// --- Songs Model ---

// SongsModel owns the song list and hands a setter to the songlist
// controller. Each key event re-renders the controller from the current
// songs before dispatching to one of its controls.
type SongsModel struct {
	songs  []string
	ctl    *songlist.Controller
	list   *components.List
	width  int
	height int
}

// NewSongsModel builds the songs tab around an initial list.
func NewSongsModel(songs []string, pageSize int, logger *slog.Logger) SongsModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	list := components.NewList(pageSize)
	list.SetCount(len(songs))
	return SongsModel{
		songs: songs,
		ctl:   songlist.New(logger),
		list:  list,
	}
}

// Songs returns the current song list.
func (m SongsModel) Songs() []string {
	return m.songs
}

func (m SongsModel) Update(msg tea.Msg) (SongsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case isUp(key, false):
		m.list.Up()
	case isDown(key, false):
		m.list.Down()
	case isKey(key, "ctrl+n"), isEnter(key):
		m = m.dispatch(func(v songlist.View) { v.Add() })
		m.list.Last()
	case isKey(key, "ctrl+d"):
		idx := m.list.Selected()
		m = m.dispatch(func(v songlist.View) { v.Delete(idx) })
	case isKey(key, "backspace", "delete"):
		m = m.editFocused(dropLastRune)
	case isKey(key, "ctrl+u"):
		m = m.editFocused(func(string) string { return "" })
	default:
		if text, ok := typedText(key); ok {
			m = m.editFocused(func(current string) string { return current + text })
		}
	}
	return m, nil
}

// editFocused sends the full new text of the focused line as one input event.
func (m SongsModel) editFocused(change func(string) string) SongsModel {
	idx := m.list.Selected()
	return m.dispatch(func(v songlist.View) {
		f, ok := v.Field(idx)
		if !ok {
			return
		}
		f.Input(change(f.Value))
	})
}

// dispatch renders the controller against the current songs, runs one
// action on the result and adopts whatever the setter received.
func (m SongsModel) dispatch(action func(songlist.View)) SongsModel {
	var next []string
	changed := false
	setSongs := func(songs []string) {
		next = songs
		changed = true
	}
	action(m.ctl.Render(m.songs, setSongs))
	if changed {
		m.songs = next
		m.list.SetCount(len(next))
	}
	return m
}

func (m SongsModel) View() string {
	view := m.ctl.Render(m.songs, func([]string) {})

	var b strings.Builder
	start, end := m.list.Window()
	contentWidth := components.BoxContentWidth(m.width)
	for i := start; i < end; i++ {
		b.WriteString(m.renderField(view.Fields[i], contentWidth))
		b.WriteString("\n")
	}
	if view.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(ControlStyle.Render("[+] add line"))

	count := MutedStyle.Render(fmt.Sprintf("%d lines", view.Len()))
	return components.TitledBox("Songs", count+"\n\n"+b.String(), m.width)
}

func (m SongsModel) renderField(f songlist.Field, contentWidth int) string {
	const deleteControl = "  [x]"
	value := components.SanitizeOneLine(f.Value)
	if contentWidth > 0 {
		value = components.ClampTextWidth(value, contentWidth-4-len(deleteControl)-1)
	}
	label := fmt.Sprintf("%2d ", f.Index+1)
	if m.list.IsSelected(f.Index) {
		return SelectedStyle.Render("> "+label) + NormalStyle.Render(value) + cursorBlock + MutedStyle.Render(deleteControl)
	}
	if value == "" {
		value = MutedStyle.Render("-")
	}
	return NormalStyle.Render("  "+label+value) + MutedStyle.Render(deleteControl)
}

func (m SongsModel) hints() []components.KeyHint {
	return []components.KeyHint{
		{Key: "↑/↓", Desc: "Move"},
		{Key: "enter", Desc: "Add line"},
		{Key: "ctrl+d", Desc: "Delete line"},
		{Key: "ctrl+u", Desc: "Clear line"},
	}
}
