//go:build !unix

package mapping

import (
	"golang.org/x/exp/mmap"
)

// Open loads path into memory through a temporary mapping.
func Open(path string) (*Mapping, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil && len(data) > 0 {
		return nil, &Error{Op: "read", Path: path, Err: err}
	}
	return &Mapping{path: path, data: data}, nil
}

func release([]byte) error {
	return nil
}
