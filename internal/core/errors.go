package core

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrInvalidLanguage = errors.New("input does not look like a meaningful Vietnamese sentence")
)

// ClassifierError reports a failure of the external sentiment classifier.
type ClassifierError struct {
	Err error
}

func (e *ClassifierError) Error() string {
	return fmt.Sprintf("sentiment classifier: %v", e.Err)
}

func (e *ClassifierError) Unwrap() error { return e.Err }
