//go:build unix

package mapping

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Open maps path read-only. The descriptor is closed before returning; the
// mapping stays valid until Close.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	fs, err := f.Stat()
	if err != nil {
		return nil, &Error{Op: "stat", Path: path, Err: err}
	}
	size := fs.Size()
	if size == 0 {
		return &Mapping{path: path, data: []byte{}}, nil
	}
	if int64(int(size)) != size {
		return nil, &Error{Op: "map", Path: path, Err: fmt.Errorf("file too large: %d bytes", size)}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &Error{Op: "map", Path: path, Err: err}
	}
	// Segments are scanned in parallel, so ask for everything up front.
	// The advice is only a readahead hint; a failure leaves the mapping usable.
	_ = unix.Madvise(data, unix.MADV_WILLNEED)

	return &Mapping{path: path, data: data, mapped: true}, nil
}

var release = unix.Munmap
