// Package songlist turns add, edit and delete actions on an ordered list of
// song lines into new slices handed to a setter owned by the caller.
package songlist

import (
	"errors"
	"log/slog"

	"github.com/gravitrone/setlist/internal/collection"
)

// SetFunc receives the next song list. It must make the value visible on
// the following render.
type SetFunc func(songs []string)

// Add returns songs with one empty line appended.
func Add(songs []string) []string {
	return collection.Append(songs, "")
}

// Edit returns songs with line index replaced by text.
func Edit(songs []string, index int, text string) ([]string, error) {
	return collection.ReplaceAt(songs, index, text)
}

// Delete returns songs without line index.
func Delete(songs []string, index int) ([]string, error) {
	return collection.RemoveAt(songs, index)
}

// Controller renders song lists. It keeps no copy of the songs between
// renders; every control is bound to the slice given to Render.
type Controller struct {
	logger *slog.Logger
}

// New builds a controller. A nil logger uses slog.Default.
func New(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{logger: logger}
}

// Render renders songs with the package default controller.
func Render(songs []string, setSongs SetFunc) View {
	return New(nil).Render(songs, setSongs)
}

// Render builds one field per song plus the single add control.
func (c *Controller) Render(songs []string, setSongs SetFunc) View {
	fields := make([]Field, len(songs))
	for i, value := range songs {
		idx := i
		fields[i] = Field{
			Index: idx,
			Value: value,
			input: func(text string) {
				c.apply("edit", idx, setSongs, func() ([]string, error) {
					return Edit(songs, idx, text)
				})
			},
			remove: func() {
				c.apply("delete", idx, setSongs, func() ([]string, error) {
					return Delete(songs, idx)
				})
			},
		}
	}
	return View{
		Fields: fields,
		add: func() {
			setSongs(Add(songs))
		},
		miss: func(action string, index int) {
			c.logger.Debug("songlist: no field at index", slog.String("action", action), slog.Int("index", index), slog.Int("len", len(songs)))
		},
	}
}

// apply hands the computed slice to the setter. An index that no longer
// addresses a song is dropped without calling the setter.
func (c *Controller) apply(action string, index int, setSongs SetFunc, next func() ([]string, error)) {
	songs, err := next()
	if err != nil {
		if errors.Is(err, collection.ErrIndexOutOfRange) {
			c.logger.Debug("songlist: ignoring action", slog.String("action", action), slog.Int("index", index), slog.String("error", err.Error()))
			return
		}
		c.logger.Warn("songlist: action failed", slog.String("action", action), slog.String("error", err.Error()))
		return
	}
	setSongs(songs)
}
