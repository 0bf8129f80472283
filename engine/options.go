package engine

import (
	"onebrc/stats"

	"golang.org/x/exp/slog"
)

type Option func(*Engine) *Engine

// WithChunkSize fixes the target segment size in bytes. Zero derives it
// from the input size and worker count.
func WithChunkSize(n int64) Option {
	return func(e *Engine) *Engine {
		e.chunkSize = n
		return e
	}
}

func WithWorkers(n int) Option {
	return func(e *Engine) *Engine {
		if n > 0 {
			e.workers = n
		}
		return e
	}
}

func WithHasher(h stats.Hasher) Option {
	return func(e *Engine) *Engine {
		if h != nil {
			e.hasher = h
		}
		return e
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) *Engine {
		if l != nil {
			e.logger = l
		}
		return e
	}
}

// WithPhaseHook registers f to be called on every phase transition of a run.
func WithPhaseHook(f func(Phase)) Option {
	return func(e *Engine) *Engine {
		e.onPhase = f
		return e
	}
}
