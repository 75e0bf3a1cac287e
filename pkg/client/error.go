package client

import (
	"fmt"
	"net/http"
)

var ErrNotFound = &Error{StatusCode: http.StatusNotFound}

// Error is returned when the server answers with an unexpected status code.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("unexpected response code %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("unexpected response code %d (%s): %s", e.StatusCode, http.StatusText(e.StatusCode), e.Detail)
}

// Is matches errors sharing the same status code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.StatusCode == e.StatusCode
}
