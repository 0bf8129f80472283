package mapping

import (
	"errors"
	"fmt"
)

var ErrIO = errors.New("io failure")

// Error reports a failure to make a file's bytes resident. It matches both
// ErrIO and the underlying cause with errors.Is.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// Mapping is the read-only content of a file. Bytes must not be written to
// and must not be used after Close.
type Mapping struct {
	path   string
	data   []byte
	mapped bool
}

func (m *Mapping) Bytes() []byte {
	return m.data
}

func (m *Mapping) Len() int {
	return len(m.data)
}

func (m *Mapping) Close() error {
	data, mapped := m.data, m.mapped
	m.data, m.mapped = nil, false
	if !mapped {
		return nil
	}
	if err := release(data); err != nil {
		return &Error{Op: "unmap", Path: m.path, Err: err}
	}
	return nil
}
