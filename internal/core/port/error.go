package port

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidRange = errors.New("invalid range")
)
