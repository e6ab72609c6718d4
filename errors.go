package statichuff

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when asked to build a code for data with no
// symbols.  Empty inputs have no Huffman tree and are not supported.
var ErrEmptyInput = errors.New("empty input: no symbols to encode")

// ErrCorruptArtifact is matched by every *CorruptArtifactError via errors.Is.
var ErrCorruptArtifact = errors.New("corrupt artifact")

// CorruptArtifactError reports a malformed header, a truncated payload, or a
// payload that does not decode cleanly against its own frequency table.
type CorruptArtifactError struct {
	// Offset is the byte offset into the artifact at which the problem was
	// detected, or -1 if the problem is not tied to a position.
	Offset int64

	// Reason is a human-readable description of the problem.
	Reason string
}

func corruptf(offset int64, format string, args ...interface{}) *CorruptArtifactError {
	return &CorruptArtifactError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

// Error fulfills the error interface.
func (err *CorruptArtifactError) Error() string {
	if err.Offset < 0 {
		return fmt.Sprintf("corrupt artifact: %s", err.Reason)
	}
	return fmt.Sprintf("corrupt artifact at offset %d: %s", err.Offset, err.Reason)
}

// Is returns true for ErrCorruptArtifact.
func (err *CorruptArtifactError) Is(target error) bool {
	return target == ErrCorruptArtifact
}

var _ error = (*CorruptArtifactError)(nil)
