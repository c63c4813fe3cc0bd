package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the beltsort domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrUnrecognizedCategory is returned when an input is not one of the
	// modeled object colors (or belt labels, for the inverse lookup).
	ErrUnrecognizedCategory = errors.New("beltsort: unrecognized category")
)

// UnrecognizedCategoryError carries the input that failed to classify.
// It matches ErrUnrecognizedCategory with errors.Is.
type UnrecognizedCategoryError struct {
	// Input is the raw label or the numeric value that was rejected.
	Input string
}

func (e *UnrecognizedCategoryError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnrecognizedCategory.Error(), e.Input)
}

// Is reports whether target is ErrUnrecognizedCategory.
func (e *UnrecognizedCategoryError) Is(target error) bool {
	return target == ErrUnrecognizedCategory
}

func unrecognized(input string) error {
	return &UnrecognizedCategoryError{Input: input}
}
