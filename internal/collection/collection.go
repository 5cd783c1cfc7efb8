// Package collection holds the pure next-state functions shared by the list
// controllers. Every function returns a freshly allocated slice and never
// writes to its input.
package collection

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an index does not address an element.
var ErrIndexOutOfRange = errors.New("index out of range")

// Append returns items followed by item.
func Append[T any](items []T, item T) []T {
	next := make([]T, len(items), len(items)+1)
	copy(next, items)
	return append(next, item)
}

// ReplaceAt returns a copy of items with position index set to item.
func ReplaceAt[T any](items []T, index int, item T) ([]T, error) {
	if err := checkIndex(len(items), index); err != nil {
		return nil, err
	}
	next := make([]T, len(items))
	copy(next, items)
	next[index] = item
	return next, nil
}

// RemoveAt returns a copy of items without position index. Later elements
// shift down by one.
func RemoveAt[T any](items []T, index int) ([]T, error) {
	if err := checkIndex(len(items), index); err != nil {
		return nil, err
	}
	next := make([]T, 0, len(items)-1)
	next = append(next, items[:index]...)
	return append(next, items[index+1:]...), nil
}

// IndexFunc returns every position where match reports true.
func IndexFunc[T any](items []T, match func(T) bool) []int {
	var out []int
	for i, item := range items {
		if match(item) {
			out = append(out, i)
		}
	}
	return out
}

func checkIndex(length, index int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, length)
	}
	return nil
}
