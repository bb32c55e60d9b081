package errors

import "errors"

var (
	ErrNotFound = errors.New("slot not found")
)
