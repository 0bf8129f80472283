package main

import (
	"flag"
	"os"
	"time"

	"onebrc/measurements"

	"golang.org/x/exp/slog"
)

var (
	filePath string
	rows     int
	seed     int64
)

func init() {
	flag.StringVar(&filePath, "filePath", "measurements.txt", "output filepath")
	flag.IntVar(&rows, "rows", 1_000_000, "number of measurements")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	flag.Parse()
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	g, err := measurements.New(seed, measurements.DefaultStations)
	if err != nil {
		logger.Error("unable to create generator", slog.Any("err", err))
		os.Exit(1)
	}

	f, err := os.Create(filePath)
	if err != nil {
		logger.Error("unable to create file", slog.String("path", filePath), slog.Any("err", err))
		os.Exit(1)
	}
	defer f.Close()

	t := time.Now()
	if err := g.Write(f, rows); err != nil {
		logger.Error("unable to generate measurements", slog.Any("err", err))
		os.Exit(1)
	}
	logger.Info(
		"generated measurements",
		slog.String("path", filePath),
		slog.Int("rows", rows),
		slog.Int64("seed", seed),
		slog.Duration("took", time.Since(t)),
	)
}
