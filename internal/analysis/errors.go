package analysis

import "fmt"

// MissingInputError indicates that the resume or job text was empty or
// blank. Analysis never proceeds on missing input.
type MissingInputError struct {
	Field string // "resume" or "job"
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input: %s text is empty", e.Field)
}
