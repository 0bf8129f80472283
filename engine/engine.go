package engine

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"onebrc/mapping"
	"onebrc/record"
	"onebrc/segment"
	"onebrc/stats"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// Segments per worker when the chunk size is derived automatically.
const SEGMENTS_PER_WORKER = 4

type Phase int

const (
	Pending Phase = iota
	Running
	Joined
	Merged
	Failed
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Joined:
		return "joined"
	case Merged:
		return "merged"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Engine aggregates key;value input in parallel. Each worker owns one table
// and folds every segment it picks up into it; the worker tables are merged
// once every segment is done.
type Engine struct {
	chunkSize int64
	workers   int
	hasher    stats.Hasher
	logger    *slog.Logger
	onPhase   func(Phase)
}

func New(options ...Option) *Engine {
	e := &Engine{
		workers: runtime.GOMAXPROCS(0),
		hasher:  stats.XXHash,
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}
	for _, opt := range options {
		e = opt(e)
	}
	return e
}

// ProcessFile maps path and aggregates its content.
func (e *Engine) ProcessFile(ctx context.Context, path string) (result *stats.Table, err error) {
	m, err := mapping.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := m.Close(); cerr != nil && err == nil {
			result, err = nil, cerr
		}
	}()

	return e.Process(ctx, m.Bytes())
}

// Process aggregates data, which must not change until Process returns. The
// first failing segment aborts the run and its error is returned.
func (e *Engine) Process(ctx context.Context, data []byte) (*stats.Table, error) {
	start := time.Now()
	e.transition(Pending)

	chunkSize := e.chunkSize
	if chunkSize <= 0 {
		chunkSize = segment.ChunkSizeFor(int64(len(data)), e.workers*SEGMENTS_PER_WORKER)
	}
	segments, err := segment.Split(data, chunkSize)
	if err != nil {
		e.transition(Failed)
		return nil, fmt.Errorf("unable to split input: %w", err)
	}

	workers := min(e.workers, len(segments))
	e.logger.Debug(
		"split input",
		slog.Int("bytes", len(data)),
		slog.Int64("chunkSize", chunkSize),
		slog.Int("segments", len(segments)),
		slog.Int("workers", workers),
	)

	tables := make([]*stats.Table, workers)
	var next atomic.Int64
	g, gctx := errgroup.WithContext(ctx)

	e.transition(Running)
	for w := range workers {
		g.Go(func() error {
			t := stats.NewTable(e.hasher)
			for {
				i := int(next.Add(1) - 1)
				if i >= len(segments) {
					break
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				seg := segments[i]
				atEOF := seg.End == int64(len(data))
				if err := record.Scan(data[seg.Start:seg.End], seg.Start, atEOF, t); err != nil {
					return fmt.Errorf("unable to process segment %d %s: %w", i, seg, err)
				}
			}
			tables[w] = t
			return nil
		})
	}

	err = g.Wait()
	e.transition(Joined)
	if err != nil {
		e.transition(Failed)
		return nil, err
	}

	result := stats.MergeAll(tables)
	e.transition(Merged)
	e.logger.Info(
		"aggregated input",
		slog.Int("bytes", len(data)),
		slog.Int("segments", len(segments)),
		slog.Int("workers", workers),
		slog.Int("keys", result.Len()),
		slog.Duration("took", time.Since(start)),
	)
	return result, nil
}

func (e *Engine) transition(p Phase) {
	e.logger.Debug("phase", slog.String("phase", p.String()))
	if e.onPhase != nil {
		e.onPhase(p)
	}
}
