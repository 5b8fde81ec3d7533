package proc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/mandelsoft/smt/pkg/ctxutil"
	"github.com/mandelsoft/smt/pkg/smt"
)

var ErrNotInitialized = fmt.Errorf("channel not initialized")

type chunk struct {
	data []byte
	err  error
}

// Channel exchanges SMT-LIB2 text over a pair of byte streams.
// It is intended for a single owner. Only Close may be called
// concurrently to the other methods.
type Channel struct {
	in   io.WriteCloser
	out  io.ReadCloser
	opts options

	writer  *bufio.Writer
	chunks  chan chunk
	closed  chan struct{}
	once    sync.Once
	pending []byte
	err     error
}

var _ smt.Proc = (*Channel)(nil)

// NewChannel creates a channel writing commands to in and reading
// responses from out. Init must be called before it is used.
func NewChannel(in io.WriteCloser, out io.ReadCloser, opts ...Option) *Channel {
	return newChannel(in, out, evalOptions(opts...))
}

func newChannel(in io.WriteCloser, out io.ReadCloser, opts options) *Channel {
	return &Channel{
		in:     in,
		out:    out,
		opts:   opts,
		closed: make(chan struct{}),
	}
}

// Init starts reading the output stream.
func (c *Channel) Init() error {
	if c.chunks != nil {
		return fmt.Errorf("channel already initialized")
	}
	c.writer = bufio.NewWriter(c.in)
	c.chunks = make(chan chunk)
	go c.pump()
	return nil
}

func (c *Channel) pump() {
	for {
		buf := make([]byte, c.opts.bufsize)
		n, err := c.out.Read(buf)
		if n > 0 {
			if !c.deliver(chunk{data: buf[:n]}) {
				return
			}
		}
		if err != nil {
			c.deliver(chunk{err: err})
			return
		}
	}
}

func (c *Channel) deliver(ch chunk) bool {
	select {
	case c.chunks <- ch:
		return true
	case <-c.closed:
		return false
	}
}

// Write sends the text and flushes it immediately.
func (c *Channel) Write(s string) error {
	if c.writer == nil {
		return fmt.Errorf("%w: %w", smt.ErrWrite, ErrNotInitialized)
	}
	log.Trace("sending {{command}}", "command", s)
	if _, err := c.writer.WriteString(s); err != nil {
		return fmt.Errorf("%w: %w", smt.ErrWrite, err)
	}
	if err := c.writer.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %w", smt.ErrWrite, err)
	}
	return nil
}

// Read returns the pending output or waits for the next chunk
// of at most the configured buffer size.
func (c *Channel) Read(ctx context.Context) (string, error) {
	if len(c.pending) > 0 {
		s := string(c.pending)
		c.pending = nil
		log.Trace("received {{response}}", "response", s)
		return s, nil
	}
	data, err := c.next(ctx)
	if err != nil {
		return "", err
	}
	log.Trace("received {{response}}", "response", string(data))
	return string(data), nil
}

// ReadResponse waits until one complete response is available.
// Leading blanks are dropped, any output following the response
// is kept for the next read.
func (c *Channel) ReadResponse(ctx context.Context) (string, error) {
	for {
		start, end := frame(c.pending)
		if end > 0 {
			s := string(c.pending[start:end])
			if end == len(c.pending) {
				c.pending = nil
			} else {
				c.pending = c.pending[end:]
			}
			log.Trace("received {{response}}", "response", s)
			return s, nil
		}
		data, err := c.next(ctx)
		if err != nil {
			return "", err
		}
		c.pending = append(c.pending, data...)
	}
}

func (c *Channel) next(ctx context.Context) ([]byte, error) {
	if c.chunks == nil {
		return nil, ErrNotInitialized
	}
	if c.err != nil {
		return nil, c.err
	}
	select {
	case ch := <-c.chunks:
		if ch.err != nil {
			c.err = fmt.Errorf("solver output: %w", ch.err)
			return nil, c.err
		}
		return ch.data, nil
	case <-ctx.Done():
		if ctxutil.IsTimeout(ctx.Err()) {
			log.Debug("read timed out")
			return nil, fmt.Errorf("%w: %w", smt.ErrTimeout, ctx.Err())
		}
		return nil, ctx.Err()
	}
}

// Close closes both streams and stops reading.
func (c *Channel) Close() error {
	c.once.Do(func() { close(c.closed) })
	err := c.in.Close()
	if e := c.out.Close(); err == nil {
		err = e
	}
	return err
}
