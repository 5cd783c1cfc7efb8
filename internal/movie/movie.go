// Package movie defines the movie record and the store that owns a movie
// collection on behalf of the UI.
package movie

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Movie is one record of the movie list. Only ID is interpreted by the list
// controller; every other field is payload.
type Movie struct {
	ID          string   `yaml:"id" toml:"id" json:"id"`
	Title       string   `yaml:"title" toml:"title" json:"title"`
	Rating      int      `yaml:"rating" toml:"rating" json:"rating"`
	Description string   `yaml:"description,omitempty" toml:"description" json:"description,omitempty"`
	Released    string   `yaml:"released,omitempty" toml:"released" json:"released,omitempty"`
	Soundtrack  []string `yaml:"soundtrack,omitempty" toml:"soundtrack" json:"soundtrack,omitempty"`
	Watched     Watched  `yaml:"watched" toml:"watched" json:"watched"`
}

// Watched is the viewing status of a movie.
type Watched struct {
	Seen  bool       `yaml:"seen" toml:"seen" json:"seen"`
	Liked bool       `yaml:"liked" toml:"liked" json:"liked"`
	When  *time.Time `yaml:"when,omitempty" toml:"when,omitempty" json:"when,omitempty"`
}

// NewID returns a fresh movie id.
func NewID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of m.
func (m Movie) Clone() Movie {
	out := m
	if m.Soundtrack != nil {
		out.Soundtrack = append([]string(nil), m.Soundtrack...)
	}
	if m.Watched.When != nil {
		when := *m.Watched.When
		out.Watched.When = &when
	}
	return out
}

// StatusLabel renders the watched status as a short label.
func (w Watched) StatusLabel() string {
	switch {
	case w.Seen && w.Liked:
		return "liked"
	case w.Seen:
		return "seen"
	default:
		return "unseen"
	}
}

// Validate reports movies with empty ids (ErrMissingID) and repeated ids
// (ErrDuplicateID). Both kinds are joined into one error.
func Validate(movies []Movie) error {
	seen := make(map[string]int, len(movies))
	var missing, repeated []string
	for i, m := range movies {
		if strings.TrimSpace(m.ID) == "" {
			missing = append(missing, fmt.Sprintf("movie %d has no id", i))
			continue
		}
		if first, ok := seen[m.ID]; ok {
			repeated = append(repeated, fmt.Sprintf("movie %d repeats id %q of movie %d", i, m.ID, first))
			continue
		}
		seen[m.ID] = i
	}
	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrMissingID, strings.Join(missing, "; ")))
	}
	if len(repeated) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateID, strings.Join(repeated, "; ")))
	}
	return errors.Join(errs...)
}
