package arrayx

import "runtime"

// DefaultChunkSize is the number of elements a Finder scans per task.
const DefaultChunkSize = 4096

type options struct {
	workers   int
	chunkSize int
	logger    *Logger
}

// Option configures a Finder.
type Option func(*options)

// WithWorkers sets the maximum number of chunks scanned concurrently.
// Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithChunkSize sets how many consecutive elements a single task scans.
// Slices no longer than one chunk are scanned on the calling goroutine.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithLogger sets the logger used to report scans.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
		logger:    NoopLogger(),
	}
}
