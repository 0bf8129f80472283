package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"

	"onebrc/engine"
	"onebrc/report"
	"onebrc/stats"

	"golang.org/x/exp/slog"
)

var (
	filePath   string
	chunkSize  int64
	numWorkers int
	hashName   string
	formatName string
	logLevel   string
	profile    bool
)

func init() {
	flag.StringVar(&filePath, "filePath", "measurements.txt", "filepath")
	flag.Int64Var(&chunkSize, "chunkSize", 0, "target segment size in bytes (0 picks one from the file size)")
	flag.IntVar(&numWorkers, "numWorkers", runtime.NumCPU(), "number of workers")
	flag.StringVar(&hashName, "hash", "xxhash", `key hash: "xxhash" or "xxh3"`)
	flag.StringVar(&formatName, "format", "brc", `output format: "brc", "lines" or "table"`)
	flag.StringVar(&logLevel, "logLevel", "warn", "debug, info, warn or error")
	flag.BoolVar(&profile, "profile", false, "profile cpu")
	flag.Parse()
}

func main() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fmt.Fprintln(os.Stderr, "invalid log level:", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		logger.Error("run failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	hasher, err := stats.HasherByName(hashName)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	if profile {
		f, err := os.Create("cpu_profile.pprof")
		if err != nil {
			return fmt.Errorf("unable to create CPU profile: %w", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("unable to start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := engine.New(
		engine.WithChunkSize(chunkSize),
		engine.WithWorkers(numWorkers),
		engine.WithHasher(hasher),
		engine.WithLogger(logger),
	)
	table, err := e.ProcessFile(ctx, filePath)
	if err != nil {
		return err
	}

	return report.Write(os.Stdout, table.Summaries(), format)
}
