package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogIncludesTitleMessageAndHints(t *testing.T) {
	out := ConfirmDialog("Delete movie", "Remove Heat?")
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Delete movie")
	assert.Contains(t, clean, "Remove Heat?")
	assert.Contains(t, clean, "y: confirm | n: cancel")
}

func TestInputDialogIncludesTitleInputAndHints(t *testing.T) {
	out := InputDialog("New movie", "Arrival")
	clean := SanitizeText(out)

	assert.Contains(t, clean, "New movie")
	assert.Contains(t, clean, "> Arrival")
	assert.Contains(t, clean, "enter: submit | esc: cancel")
}

func TestInputDialogStripsControlCharacters(t *testing.T) {
	out := InputDialog("Title", "a\x1b[31mb\nc")
	assert.Contains(t, SanitizeText(out), "> abc")
}
