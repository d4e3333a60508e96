package youtube

import "fmt"

// InputError indicates a channel reference that matches no known shape.
type InputError struct {
	Ref string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("could not extract a channel id from %q", e.Ref)
}

// APIError wraps a fault from the YouTube Data API.
type APIError struct {
	Op    string
	Cause error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube %s: %v", e.Op, e.Cause)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}
