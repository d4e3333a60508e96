package pipeline

import "fmt"

// ResolutionError indicates the channel or its video list could not be
// resolved to anything analyzable. It is always fatal to the run.
type ResolutionError struct {
	Stage   string
	Message string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

// CollaboratorError wraps an unexpected fault from an external collaborator.
// It is fatal during the resolution stages and absorbed as a per-video skip
// afterwards.
type CollaboratorError struct {
	Stage string
	Cause error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Cause)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Cause
}
