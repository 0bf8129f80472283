package segment

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	Terminator = '\n'

	// MinChunkSize keeps tiny inputs from being split into thousands of
	// single-line segments.
	MinChunkSize = 64 * 1024
)

var ErrInvalidChunkSize = errors.New("invalid chunk size")

// Segment is the half-open byte range [Start, End) of the input.
type Segment struct {
	Start int64
	End   int64
}

func (s Segment) Len() int64 {
	return s.End - s.Start
}

func (s Segment) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// Split divides data into line-aligned segments of roughly chunkSize bytes.
// Each segment is extended forward to the first terminator at or after
// start+chunkSize, so a line longer than chunkSize grows its segment instead
// of being cut. The last segment may end without a terminator.
func Split(data []byte, chunkSize int64) ([]Segment, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, chunkSize)
	}

	length := int64(len(data))
	segments := make([]Segment, 0, length/chunkSize+1)

	var end int64
	for end < length {
		start := end
		end = nextBoundary(data, min(start+chunkSize, length))
		segments = append(segments, Segment{Start: start, End: end})
	}

	return segments, nil
}

// nextBoundary returns one past the first terminator at or after from, or
// len(data) if there is none.
func nextBoundary(data []byte, from int64) int64 {
	length := int64(len(data))
	if from >= length {
		return length
	}
	idx := bytes.IndexByte(data[from:], Terminator)
	if idx < 0 {
		return length
	}
	return from + int64(idx) + 1
}

// ChunkSizeFor picks a chunk size that splits length bytes into about parts
// segments.
func ChunkSizeFor(length int64, parts int) int64 {
	if parts < 1 {
		parts = 1
	}
	size := (length + int64(parts) - 1) / int64(parts)
	return max(size, MinChunkSize)
}
