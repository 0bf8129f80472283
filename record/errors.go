package record

import (
	"errors"
	"fmt"
)

var ErrMalformedRecord = errors.New("malformed record")

const (
	ReasonMissingDelimiter  = "missing delimiter"
	ReasonMissingTerminator = "missing line terminator"
	ReasonEmptyKey          = "empty key"
	ReasonKeyTooLong        = "key too long"
	ReasonInvalidValue      = "invalid value"
)

// maxQuotedLine caps how much of the offending line is kept in an error.
const maxQuotedLine = 128

// MalformedError locates a line that does not have the key;value shape.
// Offset is the absolute byte offset of the start of the line.
type MalformedError struct {
	Offset int64
	Reason string
	Line   string
}

func newMalformedError(offset int64, reason string, line []byte) *MalformedError {
	if len(line) > maxQuotedLine {
		line = line[:maxQuotedLine]
	}
	return &MalformedError{Offset: offset, Reason: reason, Line: string(line)}
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed record at offset %d: %s: %q", e.Offset, e.Reason, e.Line)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedRecord
}
