package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"onebrc/engine"
	"onebrc/stats"

	"github.com/fatih/color"
	"github.com/jamiealquiza/tachymeter"
	"github.com/rodaine/table"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slog"
)

var (
	filePath   string
	chunkSizes string
	runs       int
	numWorkers int
	hashName   string
)

func init() {
	flag.StringVar(&filePath, "filePath", "measurements.txt", "filepath")
	flag.StringVar(&chunkSizes, "chunkSizes", "0,1m,4m,16m,64m", "comma separated chunk sizes, k/m/g suffixes allowed")
	flag.IntVar(&runs, "runs", 5, "runs per chunk size")
	flag.IntVar(&numWorkers, "numWorkers", runtime.NumCPU(), "number of workers")
	flag.StringVar(&hashName, "hash", "xxhash", `key hash: "xxhash" or "xxh3"`)
	flag.Parse()
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	sizes, err := parseSizes(chunkSizes)
	if err != nil {
		logger.Error("invalid chunk sizes", slog.Any("err", err))
		os.Exit(2)
	}
	hasher, err := stats.HasherByName(hashName)
	if err != nil {
		logger.Error("invalid hash", slog.Any("err", err))
		os.Exit(2)
	}

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()
	tbl := table.
		New("Chunk Size", "Runs", "Keys", "Avg", "P50", "P99", "Min", "Max", "Identical").
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt)

	var reference map[string]stats.Aggregate
	for _, size := range sizes {
		e := engine.New(
			engine.WithChunkSize(size),
			engine.WithWorkers(numWorkers),
			engine.WithHasher(hasher),
			engine.WithLogger(logger),
		)

		tm := tachymeter.New(&tachymeter.Config{Size: runs})
		identical := true
		var keys int

		wall := time.Now()
		for range runs {
			start := time.Now()
			result, err := e.ProcessFile(context.Background(), filePath)
			if err != nil {
				logger.Error("run failed", slog.Int64("chunkSize", size), slog.Any("err", err))
				os.Exit(1)
			}
			tm.AddTime(time.Since(start))

			snapshot := result.Snapshot()
			keys = len(snapshot)
			if reference == nil {
				reference = snapshot
			}
			identical = identical && maps.Equal(reference, snapshot)
		}
		tm.SetWallTime(time.Since(wall))

		m := tm.Calc()
		tbl.AddRow(
			sizeLabel(size),
			runs,
			keys,
			m.Time.Avg,
			m.Time.P50,
			m.Time.P99,
			m.Time.Min,
			m.Time.Max,
			identical,
		)
	}
	tbl.Print()
}

func parseSizes(s string) ([]int64, error) {
	var sizes []int64
	for _, field := range strings.Split(s, ",") {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" {
			continue
		}

		mult := int64(1)
		switch field[len(field)-1] {
		case 'k':
			mult = 1 << 10
		case 'm':
			mult = 1 << 20
		case 'g':
			mult = 1 << 30
		}
		if mult != 1 {
			field = field[:len(field)-1]
		}

		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid chunk size %q", field)
		}
		sizes = append(sizes, n*mult)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no chunk sizes given")
	}
	return sizes, nil
}

func sizeLabel(n int64) string {
	switch {
	case n == 0:
		return "auto"
	case n%(1<<30) == 0:
		return fmt.Sprintf("%dg", n>>30)
	case n%(1<<20) == 0:
		return fmt.Sprintf("%dm", n>>20)
	case n%(1<<10) == 0:
		return fmt.Sprintf("%dk", n>>10)
	}
	return strconv.FormatInt(n, 10)
}
