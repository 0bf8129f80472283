package measurements

import (
	"bytes"
	"testing"

	"onebrc/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	rows     int
	stations map[string]int
	minT     int64
	maxT     int64
}

func (c *counter) Fold(key []byte, tenths int64) {
	if c.rows == 0 {
		c.minT, c.maxT = tenths, tenths
	}
	c.rows++
	c.stations[string(key)]++
	c.minT = min(c.minT, tenths)
	c.maxT = max(c.maxT, tenths)
}

func TestGeneratorOutputParses(t *testing.T) {
	g, err := New(1, DefaultStations)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Write(&buf, 20_000))

	c := &counter{stations: make(map[string]int)}
	require.NoError(t, record.Scan(buf.Bytes(), 0, false, c))

	assert.Equal(t, 20_000, c.rows)
	assert.GreaterOrEqual(t, c.minT, int64(record.MinTenths))
	assert.LessOrEqual(t, c.maxT, int64(record.MaxTenths))
	assert.Less(t, c.minT, int64(0))
	assert.Greater(t, c.maxT, int64(0))

	known := make(map[string]bool)
	for _, s := range DefaultStations {
		known[s.Name] = true
	}
	for name := range c.stations {
		assert.True(t, known[name], "unexpected station %q", name)
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	g1, _ := New(42, DefaultStations)
	g2, _ := New(42, DefaultStations)
	require.NoError(t, g1.Write(&a, 1000))
	require.NoError(t, g2.Write(&b, 1000))
	assert.Equal(t, a.String(), b.String())
}

func TestGeneratorClamps(t *testing.T) {
	g, err := New(3, []Station{{"Hot", 200}, {"Cold", -200}})
	require.NoError(t, err)
	for range 100 {
		_, temp := g.Next()
		assert.True(t, temp == record.MaxTenths || temp == record.MinTenths)
	}
}

func TestGeneratorNoStations(t *testing.T) {
	_, err := New(1, nil)
	assert.Error(t, err)
}

func TestCounterStartsFromFirstObservation(t *testing.T) {
	c := &counter{stations: make(map[string]int)}
	require.NoError(t, record.Scan([]byte("A;5.0\nA;7.5\n"), 0, true, c))
	assert.Equal(t, int64(50), c.minT)
	assert.Equal(t, int64(75), c.maxT)
}
