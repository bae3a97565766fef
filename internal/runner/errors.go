package runner

import "fmt"

// OpenError reports a named source that could not be opened. Lines already
// ingested from earlier sources are unaffected.
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open input file %s: %v", e.Name, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// WriteError reports a rejected write on the output sink. It aborts the
// rest of the emission; lines already written stay written.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write output: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
