package movie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateReportsDuplicatesAndEmptyIDs(t *testing.T) {
	assert.NoError(t, Validate(sampleMovies()))
	assert.NoError(t, Validate(nil))

	err := Validate([]Movie{{ID: "a"}, {ID: ""}, {ID: "a"}})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.ErrorIs(t, err, ErrMissingID)
	assert.Contains(t, err.Error(), "movie 1 has no id")
	assert.Contains(t, err.Error(), `movie 2 repeats id "a" of movie 0`)
}

func TestValidateSeparatesMissingFromDuplicate(t *testing.T) {
	err := Validate([]Movie{{ID: "a"}, {ID: "  "}})
	assert.ErrorIs(t, err, ErrMissingID)
	assert.NotErrorIs(t, err, ErrDuplicateID)

	err = Validate([]Movie{{ID: "a"}, {ID: "a"}})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.NotErrorIs(t, err, ErrMissingID)
}

func TestCloneIsDeep(t *testing.T) {
	when := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := Movie{ID: "a", Soundtrack: []string{"theme"}, Watched: Watched{Seen: true, When: &when}}

	c := m.Clone()
	c.Soundtrack[0] = "other"
	*c.Watched.When = when.Add(time.Hour)

	assert.Equal(t, "theme", m.Soundtrack[0])
	assert.True(t, m.Watched.When.Equal(when))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "unseen", Watched{}.StatusLabel())
	assert.Equal(t, "seen", Watched{Seen: true}.StatusLabel())
	assert.Equal(t, "liked", Watched{Seen: true, Liked: true}.StatusLabel())
}

func TestNewIDIsUnique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
	assert.Len(t, NewID(), 36)
}
