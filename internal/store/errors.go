package store

import "fmt"

// PersistenceError reports a substrate read or write failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s state: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ImportError reports a malformed backup payload.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("invalid backup file: %v", e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
