package segment

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkPartition(t *testing.T, data []byte, segments []Segment) {
	t.Helper()

	var cursor int64
	for i, s := range segments {
		require.Equal(t, cursor, s.Start, "gap or overlap before segment %d", i)
		require.Greater(t, s.End, s.Start, "empty segment %d", i)
		if i < len(segments)-1 {
			assert.Equal(t, byte(Terminator), data[s.End-1], "segment %d not line aligned", i)
		}
		cursor = s.End
	}
	assert.Equal(t, int64(len(data)), cursor)
}

func TestSplitPartitions(t *testing.T) {
	var buf bytes.Buffer
	for i := range 500 {
		fmt.Fprintf(&buf, "station_%d;%d.%d\n", i%37, i%100, i%10)
	}
	data := buf.Bytes()

	for _, chunkSize := range []int64{1, 2, 7, 16, 100, 1024, 4096, int64(len(data)), 1 << 20} {
		t.Run(fmt.Sprintf("chunk=%d", chunkSize), func(t *testing.T) {
			segments, err := Split(data, chunkSize)
			require.NoError(t, err)
			checkPartition(t, data, segments)
		})
	}
}

func TestSplitEdgeCases(t *testing.T) {
	var tests = []struct {
		name      string
		data      string
		chunkSize int64
		expected  []Segment
	}{
		{"empty", "", 4, []Segment{}},
		{"no terminator", "abc;1.0", 2, []Segment{{0, 7}}},
		{"unterminated last line", "a;1.0\nb;2.0", 3, []Segment{{0, 6}, {6, 11}}},
		{"line longer than chunk", "abcdefghij;1.0\nb;2.0\n", 3, []Segment{{0, 15}, {15, 21}}},
		{"boundary on terminator", "a;1.0\nb;2.0\n", 5, []Segment{{0, 6}, {6, 12}}},
		{"single chunk", "a;1.0\nb;2.0\n", 100, []Segment{{0, 12}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := Split([]byte(tt.data), tt.chunkSize)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, segments)
			checkPartition(t, []byte(tt.data), segments)
		})
	}
}

func TestSplitInvalidChunkSize(t *testing.T) {
	_, err := Split([]byte("a;1.0\n"), 0)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)

	_, err = Split([]byte("a;1.0\n"), -5)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
}

func TestChunkSizeFor(t *testing.T) {
	assert.Equal(t, int64(MinChunkSize), ChunkSizeFor(10, 4))
	assert.Equal(t, int64(1<<20), ChunkSizeFor(4<<20, 4))
	assert.Equal(t, int64(1<<20)+1, ChunkSizeFor(4<<20+1, 4))
	assert.Equal(t, int64(4<<20), ChunkSizeFor(4<<20, 0))
}

func BenchmarkSplit(b *testing.B) {
	data := bytes.Repeat([]byte("Hamburg;12.0\n"), 1<<16)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Split(data, 4096)
	}
}
