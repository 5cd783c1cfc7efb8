package songlist

// View is one render of a song list.
type View struct {
	Fields []Field
	add    func()
	miss   func(action string, index int)
}

// Add activates the add control.
func (v View) Add() {
	if v.add != nil {
		v.add()
	}
}

// AddControls is always one, including for an empty list.
func (v View) AddControls() int {
	return 1
}

// Len returns the number of editable fields.
func (v View) Len() int {
	return len(v.Fields)
}

// Field returns the field at index, or false when there is none.
func (v View) Field(index int) (Field, bool) {
	if index < 0 || index >= len(v.Fields) {
		return Field{}, false
	}
	return v.Fields[index], true
}

// Edit reports new text for the field at index. An index with no field is
// a no-op.
func (v View) Edit(index int, text string) {
	f, ok := v.Field(index)
	if !ok {
		v.missed("edit", index)
		return
	}
	f.Input(text)
}

// Delete activates the delete control of the field at index. An index with
// no field is a no-op.
func (v View) Delete(index int) {
	f, ok := v.Field(index)
	if !ok {
		v.missed("delete", index)
		return
	}
	f.Delete()
}

func (v View) missed(action string, index int) {
	if v.miss != nil {
		v.miss(action, index)
	}
}

// Field is one editable song line with its delete control.
type Field struct {
	Index int
	Value string

	input  func(text string)
	remove func()
}

// Input reports the full new text of the field.
func (f Field) Input(text string) {
	if f.input != nil {
		f.input(text)
	}
}

// Delete activates the field's delete control.
func (f Field) Delete() {
	if f.remove != nil {
		f.remove()
	}
}
