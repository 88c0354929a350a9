package geoquad

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned when a coordinate lies outside the valid
	// latitude/longitude range.
	ErrDomain = errors.New("coordinate out of range")

	// ErrRange is returned when a neighbor or ring operation would leave the
	// representable grid, or a radius is unreasonably large.
	ErrRange = errors.New("outside the representable grid")

	// ErrInvalidPrecision is returned when a grid precision is not in [1, 16].
	ErrInvalidPrecision = errors.New("precision must be in [1, 16]")

	// ErrInvalidOption is returned for a non-positive budget option.
	ErrInvalidOption = errors.New("invalid option")
)

// DomainError reports an out-of-range coordinate.
//
// errors.Is(err, ErrDomain) holds for every DomainError.
type DomainError struct {
	Axis  string // "latitude" or "longitude"
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %v: %v", e.Axis, e.Value, ErrDomain)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// RangeError reports an operation that would leave the grid.
//
// errors.Is(err, ErrRange) holds for every RangeError.
type RangeError struct {
	Op     string
	Code   Code
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Code, e.Reason, ErrRange)
}

func (e *RangeError) Unwrap() error { return ErrRange }
