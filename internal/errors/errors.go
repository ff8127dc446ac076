//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import "fmt"

// PositionOutOfRangeError indicates a 1-based position outside the store.
type PositionOutOfRangeError struct {
	Position int
	Count    int
}

func (e PositionOutOfRangeError) Error() string {
	return fmt.Sprintf("no task at position %d (store has %d)", e.Position, e.Count)
}

// InvalidPositionError indicates a position argument that is not an integer.
type InvalidPositionError struct {
	Value string
}

func (e InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position: %q (expected a 1-based task number)", e.Value)
}
