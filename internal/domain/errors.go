package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDataNotFound           = errors.New("venue data not found")
	ErrDataFormat             = errors.New("invalid venue data format")
	ErrEmptyCollection        = errors.New("venue collection is empty")
	ErrInvalidCoordinateInput = errors.New("invalid coordinate input")
)

// FormatError describes a single record that does not match the expected shape.
// It matches ErrDataFormat under errors.Is.
type FormatError struct {
	Index int
	Field string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("record %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("record %d: field %q: %v", e.Index, e.Field, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrDataFormat }
