package ui

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/setlist/internal/config"
	"github.com/gravitrone/setlist/internal/movie"
	"github.com/gravitrone/setlist/internal/seed"
	"github.com/gravitrone/setlist/internal/ui/components"
)

// --- Tab Constants ---

const (
	tabSongs  = 0
	tabMovies = 1
	tabCount  = 2
)

var tabNames = []string{"Songs", "Movies"}

// --- App Model ---

// App is the root TUI model that routes between the songs and movies tabs.
type App struct {
	config *config.Config
	tab    int
	width  int
	height int
	notice string

	songs  SongsModel
	movies MoviesModel
}

// NewApp creates the root application model. notice, when set, is shown
// above the tabs until the first key press.
func NewApp(state *seed.State, cfg *config.Config, logger *slog.Logger, notice string) App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	store := movie.NewStore(state.Movies, movie.WithLogger(logger))
	return App{
		config: cfg,
		tab:    tabSongs,
		notice: notice,
		songs:  NewSongsModel(state.Songs, cfg.Pages(), logger),
		movies: NewMoviesModel(store, cfg.Pages(), cfg.VimKeys, logger),
	}
}

// State returns the collections currently shown.
func (a App) State() seed.State {
	return seed.State{Songs: a.songs.Songs(), Movies: a.movies.Movies()}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.songs.width = msg.Width
		a.songs.height = msg.Height
		a.movies.width = msg.Width
		a.movies.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		a.notice = ""
		if isQuit(msg) {
			return a, tea.Quit
		}
		if !a.capturesText() {
			switch {
			case isNextTab(msg):
				a.tab = (a.tab + 1) % tabCount
				return a, nil
			case isPrevTab(msg):
				a.tab = (a.tab - 1 + tabCount) % tabCount
				return a, nil
			case a.tab == tabMovies && isKey(msg, "q"):
				return a, tea.Quit
			case a.tab == tabMovies && isKey(msg, "1"):
				a.tab = tabSongs
				return a, nil
			}
		}
		var cmd tea.Cmd
		switch a.tab {
		case tabSongs:
			a.songs, cmd = a.songs.Update(msg)
		case tabMovies:
			a.movies, cmd = a.movies.Update(msg)
		}
		return a, cmd
	}
	return a, nil
}

// capturesText reports whether the active tab is editing a field that tab
// should move through rather than leave.
func (a App) capturesText() bool {
	return a.tab == tabMovies && a.movies.capturesText()
}

func (a App) View() string {
	var b strings.Builder
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")
	if a.notice != "" {
		b.WriteString(WarningStyle.Render(a.notice))
		b.WriteString("\n\n")
	}
	var hints []components.KeyHint
	switch a.tab {
	case tabMovies:
		b.WriteString(a.movies.View())
		hints = a.movies.hints()
	default:
		b.WriteString(a.songs.View())
		hints = a.songs.hints()
	}
	hints = append(hints, components.KeyHint{Key: "tab", Desc: "Switch"}, components.KeyHint{Key: "ctrl+c", Desc: "Quit"})
	b.WriteString("\n")
	b.WriteString(components.StatusBar(hints, a.width))
	return components.Indent(b.String(), 1)
}

func (a App) renderTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if i == a.tab {
			parts = append(parts, TabActiveStyle.Render(name))
		} else {
			parts = append(parts, TabInactiveStyle.Render(name))
		}
	}
	return TitleStyle.Render("setlist") + "  " + strings.Join(parts, " ")
}
