package proc

import (
	"io"
	"time"
)

// DefaultBufferSize is the size of a single raw read.
const DefaultBufferSize = 2048

// DefaultGracePeriod is the time a solver process gets to terminate
// after its input has been closed.
const DefaultGracePeriod = time.Second

type options struct {
	bufsize int
	stderr  io.Writer
	grace   time.Duration
	dir     string
}

type Option func(o *options)

// WithBufferSize sets the maximum size of a single raw read.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufsize = n
		}
	}
}

// WithStderr captures the error output of a solver process.
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

// WithGracePeriod sets the time a closed solver process may take to
// terminate before it is killed.
func WithGracePeriod(d time.Duration) Option {
	return func(o *options) {
		o.grace = d
	}
}

// WithDir sets the working directory of a solver process.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

func evalOptions(opts ...Option) options {
	o := options{
		bufsize: DefaultBufferSize,
		grace:   DefaultGracePeriod,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
