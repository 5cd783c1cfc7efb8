package movie

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gravitrone/setlist/internal/collection"
)

var (
	// ErrUnknownID is returned when no movie carries the requested id.
	ErrUnknownID = errors.New("unknown movie id")
	// ErrDuplicateID is returned when an id matches more than one movie.
	ErrDuplicateID = errors.New("duplicate movie id")
	// ErrMissingID is returned by Validate for a movie without an id.
	ErrMissingID = errors.New("missing movie id")
)

// Store owns a movie collection. Every change replaces the collection with a
// new slice; slices returned by Movies are never written to afterwards.
type Store struct {
	movies []Movie
	now    func() time.Time
	logger *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock sets the time source used for watched timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the store logger.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a store holding a copy of movies.
func NewStore(movies []Movie, opts ...StoreOption) *Store {
	s := &Store{
		movies: append([]Movie(nil), movies...),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Movies returns the current collection.
func (s *Store) Movies() []Movie {
	return s.movies
}

// Len returns the number of movies.
func (s *Store) Len() int {
	return len(s.movies)
}

// Get returns the movie with the given id.
func (s *Store) Get(id string) (Movie, error) {
	idx, err := s.lookup(id)
	if err != nil {
		return Movie{}, err
	}
	return s.movies[idx], nil
}

// Add appends m, assigning an id when it has none, and returns the stored movie.
func (s *Store) Add(m Movie) Movie {
	if m.ID == "" {
		m.ID = NewID()
	}
	s.movies = collection.Append(s.movies, m)
	s.logger.Debug("movie added", slog.String("id", m.ID))
	return m
}

// Delete removes the movie with the given id.
func (s *Store) Delete(id string) error {
	idx, err := s.lookup(id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	next, err := collection.RemoveAt(s.movies, idx)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	s.movies = next
	s.logger.Debug("movie deleted", slog.String("id", id))
	return nil
}

// Edit replaces the movie with the given id. The stored record keeps id even
// if updated carries another one.
func (s *Store) Edit(id string, updated Movie) error {
	idx, err := s.lookup(id)
	if err != nil {
		return fmt.Errorf("edit movie: %w", err)
	}
	updated.ID = id
	next, err := collection.ReplaceAt(s.movies, idx, updated)
	if err != nil {
		return fmt.Errorf("edit movie: %w", err)
	}
	s.movies = next
	s.logger.Debug("movie edited", slog.String("id", id))
	return nil
}

// SetWatched updates the watched status of the movie with the given id. The
// timestamp is set when the movie becomes seen and cleared when it is unseen.
func (s *Store) SetWatched(id string, seen, liked bool) error {
	idx, err := s.lookup(id)
	if err != nil {
		return fmt.Errorf("set watched: %w", err)
	}
	m := s.movies[idx].Clone()
	switch {
	case !seen:
		m.Watched.When = nil
	case !m.Watched.Seen || m.Watched.When == nil:
		when := s.now()
		m.Watched.When = &when
	}
	m.Watched.Seen = seen
	m.Watched.Liked = liked
	next, err := collection.ReplaceAt(s.movies, idx, m)
	if err != nil {
		return fmt.Errorf("set watched: %w", err)
	}
	s.movies = next
	s.logger.Debug("movie watched status set", slog.String("id", id), slog.Bool("seen", seen), slog.Bool("liked", liked))
	return nil
}

func (s *Store) lookup(id string) (int, error) {
	matches := collection.IndexFunc(s.movies, func(m Movie) bool { return m.ID == id })
	switch len(matches) {
	case 0:
		return -1, fmt.Errorf("%w: %q", ErrUnknownID, id)
	case 1:
		return matches[0], nil
	default:
		return -1, fmt.Errorf("%w: %q matches %d movies", ErrDuplicateID, id, len(matches))
	}
}
