package main

import (
	"fmt"
)

// UsageError reports the wrong number of command-line arguments.
type UsageError struct {
	NumArgs int
}

func (err *UsageError) Error() string {
	return fmt.Sprintf("wrong usage: expected 2 arguments, got %d", err.NumArgs)
}

// InvalidFlagError reports a mode flag other than -c or -d.
type InvalidFlagError struct {
	Flag string
}

func (err *InvalidFlagError) Error() string {
	return fmt.Sprintf("wrong flag: %q", err.Flag)
}

// InputNotFoundError reports an input file that cannot be opened for reading.
type InputNotFoundError struct {
	Path string
	Err  error
}

func (err *InputNotFoundError) Error() string {
	return fmt.Sprintf("cannot open input file %q: %v", err.Path, err.Err)
}

func (err *InputNotFoundError) Unwrap() error {
	return err.Err
}

var (
	_ error = (*UsageError)(nil)
	_ error = (*InvalidFlagError)(nil)
	_ error = (*InputNotFoundError)(nil)
)
