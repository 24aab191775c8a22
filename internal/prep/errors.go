package prep

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest is returned before any model call when the category or
// level is unknown.
var ErrInvalidRequest = errors.New("invalid generation request")

// ErrMalformedResponse matches every *MalformedResponseError via errors.Is.
var ErrMalformedResponse = errors.New("malformed model response")

// MalformedResponseError reports response text that is not JSON or does not
// have the expected shape.
type MalformedResponseError struct {
	// Op is the operation that received the text ("roadmap", "questions").
	Op      string
	Content []byte
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed model response: %v", e.Op, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// BatchError reports the topic that stopped a batch. Results of earlier
// topics are discarded.
type BatchError struct {
	Category Category
	Topic    string
	// Index is the zero-based position of Topic in the request.
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s batch failed at topic %d (%q): %v", e.Category, e.Index+1, e.Topic, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
