package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
)

// NewKind annotates a sentinel kind with the operation that raised it.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// Wrap annotates err with the operation that observed it.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// WrapKind annotates err with both an operation and a sentinel kind so
// callers can match on the kind while keeping the cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
