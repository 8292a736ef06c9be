package observe

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidPath       = errors.New("invalid path expression")
	ErrNoSuchKey         = errors.New("no such key")
	ErrNotContainer      = errors.New("not a container")
	ErrAssignmentSkipped = errors.New("assignment skipped")
	ErrDisposed          = errors.New("watcher disposed")
)

// PathError records a path expression that could not be walked. Segment is the
// zero-based index of the offending segment.
type PathError struct {
	Op      string
	Path    string
	Segment int
	Key     string
	Err     error
}

func (e *PathError) Error() string {
	return e.Op + " " + strconv.Quote(e.Path) + ": segment " + strconv.Itoa(e.Segment) +
		" (" + strconv.Quote(e.Key) + "): " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// CallbackError is a failure raised by a watcher's callback.
type CallbackError struct {
	Path    string
	Watcher uint64
	Err     error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("callback for %q (watcher %d): %v", e.Path, e.Watcher, e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}
