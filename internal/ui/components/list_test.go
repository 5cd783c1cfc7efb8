package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListNewList(t *testing.T) {
	list := NewList(10)
	assert.Equal(t, 10, list.PageSize)
	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)
	assert.Equal(t, -1, list.Selected())

	assert.Equal(t, 1, NewList(0).PageSize)
}

func TestListDownMovement(t *testing.T) {
	list := NewList(3)
	list.SetCount(5)

	list.Down()
	assert.Equal(t, 1, list.Cursor)
	assert.Equal(t, 0, list.Offset)

	list.Down()
	assert.Equal(t, 2, list.Cursor)
	assert.Equal(t, 0, list.Offset)

	// Move down - should scroll
	list.Down()
	assert.Equal(t, 3, list.Cursor)
	assert.Equal(t, 1, list.Offset)

	list.Down()
	assert.Equal(t, 4, list.Cursor)
	assert.Equal(t, 2, list.Offset)

	// Try to go past end - should stay
	list.Down()
	assert.Equal(t, 4, list.Cursor)
	assert.Equal(t, 2, list.Offset)
}

func TestListUpMovement(t *testing.T) {
	list := NewList(3)
	list.SetCount(5)
	list.Last()
	assert.Equal(t, 4, list.Cursor)
	assert.Equal(t, 2, list.Offset)

	list.Up()
	list.Up()
	assert.Equal(t, 2, list.Cursor)
	assert.Equal(t, 2, list.Offset)

	// Cursor above the window scrolls up.
	list.Up()
	assert.Equal(t, 1, list.Cursor)
	assert.Equal(t, 1, list.Offset)

	list.Up()
	list.Up()
	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)
}

func TestListSetCountClampsCursor(t *testing.T) {
	list := NewList(3)
	list.SetCount(5)
	list.Last()

	// Deleting the last row pulls the cursor back.
	list.SetCount(4)
	assert.Equal(t, 3, list.Cursor)
	assert.Equal(t, 1, list.Offset)

	// Growing keeps the cursor where it was.
	list.SetCount(6)
	assert.Equal(t, 3, list.Cursor)

	list.SetCount(0)
	assert.Equal(t, 0, list.Cursor)
	assert.Equal(t, 0, list.Offset)
	assert.Equal(t, -1, list.Selected())
	assert.False(t, list.IsSelected(0))
}

func TestListWindow(t *testing.T) {
	list := NewList(3)
	list.SetCount(5)

	start, end := list.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	list.Last()
	start, end = list.Window()
	assert.Equal(t, 2, start)
	assert.Equal(t, 5, end)

	list.SetCount(0)
	start, end = list.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestListWindowSmallerThanPage(t *testing.T) {
	list := NewList(10)
	list.SetCount(3)

	start, end := list.Window()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestListIsSelected(t *testing.T) {
	list := NewList(5)
	list.SetCount(3)
	list.Down()
	assert.True(t, list.IsSelected(1))
	assert.False(t, list.IsSelected(0))
}

func TestListScrollingLargeList(t *testing.T) {
	list := NewList(5)
	list.SetCount(20)

	for i := 0; i < 10; i++ {
		list.Down()
	}

	assert.Equal(t, 10, list.Cursor)
	assert.Equal(t, 6, list.Offset)
	start, end := list.Window()
	assert.Equal(t, 5, end-start)
}
