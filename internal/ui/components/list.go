package components

// List is a cursor over a collection owned elsewhere. It only tracks the
// length, so it must be told whenever the collection changes size.
type List struct {
	Count    int
	Cursor   int
	Offset   int
	PageSize int
}

// NewList creates a list with the given page size.
func NewList(pageSize int) *List {
	if pageSize < 1 {
		pageSize = 1
	}
	return &List{PageSize: pageSize}
}

// SetCount records a new collection length, keeping the cursor where it was
// when still in range and pulling it back to the last row otherwise.
func (l *List) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	l.Count = n
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.follow()
}

// Down moves the cursor down.
func (l *List) Down() {
	if l.Cursor < l.Count-1 {
		l.Cursor++
		l.follow()
	}
}

// Up moves the cursor up.
func (l *List) Up() {
	if l.Cursor > 0 {
		l.Cursor--
		l.follow()
	}
}

// Last moves the cursor to the final row.
func (l *List) Last() {
	if l.Count > 0 {
		l.Cursor = l.Count - 1
		l.follow()
	}
}

// Window returns the half-open range [start, end) of visible rows.
func (l *List) Window() (int, int) {
	if l.Count == 0 {
		return 0, 0
	}
	end := l.Offset + l.PageSize
	if end > l.Count {
		end = l.Count
	}
	return l.Offset, end
}

// Selected returns the index of the selected row, or -1 for an empty list.
func (l *List) Selected() int {
	if l.Count == 0 {
		return -1
	}
	return l.Cursor
}

// IsSelected returns true if the given absolute index is the cursor.
func (l *List) IsSelected(absIdx int) bool {
	return l.Count > 0 && absIdx == l.Cursor
}

// follow scrolls the window so the cursor stays visible.
func (l *List) follow() {
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor >= l.Offset+l.PageSize {
		l.Offset = l.Cursor - l.PageSize + 1
	}
	if maxOffset := l.Count - l.PageSize; l.Offset > maxOffset {
		l.Offset = maxOffset
	}
	if l.Offset < 0 {
		l.Offset = 0
	}
}
