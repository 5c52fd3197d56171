package fontface

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnexpectedStatus is wrapped by StatusError.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrNoFamilies is returned for a job none of whose sources could be parsed.
	ErrNoFamilies = errors.New("no font families in job")
	// ErrAborted marks a request that never reached the write step.
	ErrAborted = errors.New("request aborted")
)

// StatusError is a non-200 answer from the font service.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s", e.Code, http.StatusText(e.Code))
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
