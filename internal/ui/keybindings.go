package ui

import tea "github.com/charmbracelet/bubbletea"

// --- Key Helpers ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

// isQuit only matches ctrl+c: on the songs tab every printable key is text.
func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+c")
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

func isUp(msg tea.KeyMsg, vim bool) bool {
	if vim && isKey(msg, "k") {
		return true
	}
	return isKey(msg, "up")
}

func isDown(msg tea.KeyMsg, vim bool) bool {
	if vim && isKey(msg, "j") {
		return true
	}
	return isKey(msg, "down")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

func isNextTab(msg tea.KeyMsg) bool {
	return isKey(msg, "tab")
}

func isPrevTab(msg tea.KeyMsg) bool {
	return isKey(msg, "shift+tab")
}

// typedText returns the printable text carried by a key message.
func typedText(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return "", false
		}
		return string(msg.Runes), true
	case tea.KeySpace:
		return " ", true
	}
	return "", false
}

func dropLastRune(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
