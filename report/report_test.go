package report

import (
	"bytes"
	"testing"

	"onebrc/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sums = []stats.Summary{
	{Key: "A", Min: 100, Mean: 200, Max: 300, Count: 2},
	{Key: "B", Min: 205, Mean: 205, Max: 205, Count: 1},
	{Key: "Cold", Min: -999, Mean: -5, Max: 0, Count: 7},
}

func TestWrite(t *testing.T) {
	var tests = []struct {
		format   Format
		expected string
	}{
		{FormatBRC, "{A=10.0/20.0/30.0, B=20.5/20.5/20.5, Cold=-99.9/-0.5/0.0}\n"},
		{FormatLines, "A=10.0/20.0/30.0\nB=20.5/20.5/20.5\nCold=-99.9/-0.5/0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, sums, tt.format))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, FormatBRC))
	assert.Equal(t, "{}\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sums, FormatTable))

	out := buf.String()
	for _, s := range []string{"Station", "Mean", "Cold", "-99.9", "-0.5", "20.5", "7"} {
		assert.Contains(t, out, s)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatBRC, FormatLines, FormatTable} {
		parsed, err := ParseFormat(f.String())
		assert.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseFormat("csv")
	assert.Error(t, err)
	assert.Error(t, Write(&bytes.Buffer{}, sums, Format(9)))
}
