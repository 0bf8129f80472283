package measurements

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"

	"onebrc/record"

	"github.com/pingcap/go-ycsb/pkg/generator"
)

// Standard deviation of generated temperatures around a station's mean.
const STD_DEV = 10.0

type Station struct {
	Name string
	Mean float64
}

// DefaultStations is a sample of the weather stations used by the 1brc
// measurement generator.
var DefaultStations = []Station{
	{"Abha", 18.0},
	{"Abidjan", 26.0},
	{"Accra", 26.4},
	{"Addis Ababa", 16.0},
	{"Adelaide", 17.3},
	{"Alexandria", 20.0},
	{"Almaty", 10.0},
	{"Anchorage", 2.8},
	{"Athens", 19.2},
	{"Baghdad", 22.77},
	{"Bangkok", 28.6},
	{"Bergen", 7.7},
	{"Bulawayo", 18.9},
	{"Cairo", 21.4},
	{"Cape Town", 16.2},
	{"Chongqing", 18.6},
	{"Dakar", 24.0},
	{"Dodoma", 22.7},
	{"Dubai", 26.9},
	{"Hamburg", 9.7},
	{"Honolulu", 25.4},
	{"Istanbul", 13.9},
	{"İzmir", 17.9},
	{"Jakarta", 26.7},
	{"Kampala", 20.0},
	{"Lagos", 26.8},
	{"Lhasa", 7.6},
	{"Mexico City", 17.5},
	{"Montreal", 6.8},
	{"Murmansk", 0.6},
	{"Nuuk", -1.4},
	{"Palembang", 27.3},
	{"Reykjavík", 4.3},
	{"São Paulo", 19.9},
	{"St. John's", 5.0},
	{"Tokyo", 15.4},
	{"Ürümqi", 7.4},
	{"Vostok", -55.2},
	{"Yakutsk", -8.8},
	{"Zürich", 9.3},
}

// Generator produces station;temperature records. Popular stations are
// picked far more often than others, following a scrambled Zipfian
// distribution.
type Generator struct {
	rng      *rand.Rand
	zipf     *generator.ScrambledZipfian
	stations []Station
}

func New(seed int64, stations []Station) (*Generator, error) {
	if len(stations) == 0 {
		return nil, fmt.Errorf("no stations to generate from")
	}
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		zipf:     generator.NewScrambledZipfian(0, int64(len(stations)-1), generator.ZipfianConstant),
		stations: stations,
	}, nil
}

// Next returns a station name and a temperature in tenths.
func (g *Generator) Next() (string, int64) {
	s := g.stations[g.zipf.Next(g.rng)]
	temp := math.Round((s.Mean + g.rng.NormFloat64()*STD_DEV) * 10)
	temp = max(min(temp, record.MaxTenths), record.MinTenths)
	return s.Name, int64(temp)
}

// Write emits rows newline terminated records to w.
func (g *Generator) Write(w io.Writer, rows int) error {
	bw := bufio.NewWriterSize(w, 1<<20)
	buf := make([]byte, 0, 128)

	for range rows {
		name, temp := g.Next()
		buf = append(buf[:0], name...)
		buf = append(buf, record.Delimiter)
		buf = record.AppendTenths(buf, temp)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("unable to write measurement: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("unable to flush measurements: %w", err)
	}
	return nil
}
