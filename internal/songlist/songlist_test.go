package songlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// host stands in for the state owner: it keeps the current songs and
// records every slice handed to the setter.
type host struct {
	songs []string
	calls [][]string
}

func (h *host) set(songs []string) {
	h.calls = append(h.calls, songs)
	h.songs = songs
}

func (h *host) render() View {
	return Render(h.songs, h.set)
}

func TestAddAppendsEmptyLineOnce(t *testing.T) {
	original := []string{"a", "b"}
	h := &host{songs: original}

	h.render().Add()

	require.Len(t, h.calls, 1)
	assert.Equal(t, []string{"a", "b", ""}, h.calls[0])
	assert.Equal(t, []string{"a", "b"}, original)
}

func TestAddOnEmptyList(t *testing.T) {
	h := &host{}
	view := h.render()
	assert.Equal(t, 0, view.Len())
	assert.Equal(t, 1, view.AddControls())

	view.Add()

	require.Len(t, h.calls, 1)
	assert.Equal(t, []string{""}, h.calls[0])
	assert.Equal(t, 1, h.render().Len())
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	original := []string{"s1", "s2", "s3"}
	h := &host{songs: original}

	h.render().Fields[1].Delete()

	require.Len(t, h.calls, 1)
	assert.Equal(t, []string{"s1", "s3"}, h.calls[0])
	assert.Equal(t, []string{"s1", "s2", "s3"}, original)
}

func TestDeleteLastRemainingLine(t *testing.T) {
	h := &host{songs: []string{"only"}}

	h.render().Fields[0].Delete()

	require.Len(t, h.calls, 1)
	assert.Empty(t, h.calls[0])
	assert.Equal(t, 0, h.render().Len())
	assert.Equal(t, 1, h.render().AddControls())
}

func TestEditReplacesOnlyTarget(t *testing.T) {
	original := []string{"a", "b", "c"}
	h := &host{songs: original}

	h.render().Fields[2].Input("z")

	require.Len(t, h.calls, 1)
	assert.Equal(t, []string{"a", "b", "z"}, h.calls[0])
	assert.Equal(t, []string{"a", "b", "c"}, original)
}

func TestEditCallsSetterPerInputEvent(t *testing.T) {
	h := &host{songs: []string{"a", ""}}

	// Input events without a re-render in between all derive from the
	// render-time slice.
	view := h.render()
	view.Fields[1].Input("v")
	view.Fields[1].Input("ve")
	view.Fields[1].Input("ver")

	require.Len(t, h.calls, 3)
	assert.Equal(t, []string{"a", "ver"}, h.calls[2])

	// With a re-render after every event the result is the same.
	h = &host{songs: []string{"a", ""}}
	for _, text := range []string{"v", "ve", "ver"} {
		h.render().Fields[1].Input(text)
	}
	require.Len(t, h.calls, 3)
	assert.Equal(t, []string{"a", "ver"}, h.songs)
}

func TestFieldsMatchSongs(t *testing.T) {
	songs := []string{"x", "x", "y"}
	view := Render(songs, func([]string) {})

	require.Equal(t, len(songs), view.Len())
	for i, f := range view.Fields {
		assert.Equal(t, i, f.Index)
		assert.Equal(t, songs[i], f.Value)
	}
}

func TestOutOfRangeIndexIsNoOp(t *testing.T) {
	h := &host{songs: []string{"a"}}
	view := h.render()

	view.Edit(3, "x")
	view.Delete(1)
	view.Delete(-1)

	assert.Empty(t, h.calls)
	assert.Equal(t, []string{"a"}, h.songs)

	_, ok := view.Field(5)
	assert.False(t, ok)
}

func TestViewIndexDispatch(t *testing.T) {
	h := &host{songs: []string{"a", "b"}}

	h.render().Edit(0, "A")
	h.render().Delete(1)

	require.Len(t, h.calls, 2)
	assert.Equal(t, []string{"A", "b"}, h.calls[0])
	assert.Equal(t, []string{"A"}, h.calls[1])
}

func TestEveryActionAllocatesNewSlice(t *testing.T) {
	original := []string{"a", "b"}
	h := &host{songs: original}

	h.render().Fields[0].Input("z")
	h.calls[0][1] = "mutated"

	assert.Equal(t, []string{"a", "b"}, original)
}

func TestEditSessionScenario(t *testing.T) {
	h := &host{songs: []string{"intro"}}

	h.render().Add()
	assert.Equal(t, []string{"intro", ""}, h.songs)

	for _, text := range []string{"v", "ve", "ver", "vers", "verse", "verse-", "verse-1"} {
		h.render().Fields[1].Input(text)
	}
	assert.Equal(t, []string{"intro", "verse-1"}, h.calls[len(h.calls)-1])

	h.render().Add()
	assert.Equal(t, []string{"intro", "verse-1", ""}, h.songs)
	assert.Equal(t, 3, h.render().Len())

	h.render().Fields[0].Delete()
	view := h.render()
	assert.Equal(t, []string{"verse-1", ""}, h.songs)
	assert.Equal(t, 2, view.Len())
	assert.Equal(t, "verse-1", view.Fields[0].Value)
}

func TestPureFunctions(t *testing.T) {
	assert.Equal(t, []string{""}, Add(nil))

	next, err := Edit([]string{"a"}, 0, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, next)

	_, err = Delete([]string{}, 0)
	assert.Error(t, err)
}
