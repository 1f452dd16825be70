package model

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks unusable request input
	ErrValidation = errors.New("invalid request")
	// ErrMalformedMatrix marks an unusable AHP comparison matrix
	ErrMalformedMatrix = errors.New("malformed comparison matrix")
)

// ValidationError reports a missing or unparseable request field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// MalformedMatrixError reports a comparison matrix that is not square, not
// reciprocal, or has no real positive dominant eigenvector.
type MalformedMatrixError struct {
	Reason string
}

func (e *MalformedMatrixError) Error() string {
	return fmt.Sprintf("malformed comparison matrix: %s", e.Reason)
}

func (e *MalformedMatrixError) Is(target error) bool {
	return target == ErrMalformedMatrix
}
