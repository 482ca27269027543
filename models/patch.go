package models

import (
	"errors"
	"fmt"
)

// ErrNotClearable is returned when a patch asks to clear a required or unknown column.
var ErrNotClearable = errors.New("field cannot be cleared")

// clearColumns sets each named optional column to NULL, both on the record
// (through reset) and in changes.
func clearColumns(changes map[string]any, names []string, clearable map[string]func()) error {
	for _, name := range names {
		reset, ok := clearable[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotClearable, name)
		}
		reset()
		changes[name] = nil
	}
	return nil
}
