package vos

import (
	"io"
	"os"
)

// VIO holds the standard streams of a process.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// Streams is a VIO over plain readers and writers. Nil streams read as
// empty and discard writes.
type Streams struct {
	in       io.ReadCloser
	out, err io.WriteCloser
}

var _ VIO = (*Streams)(nil)

// NewStreams wraps the given streams, closing none of them on Close unless
// they already implement io.Closer.
func NewStreams(stdin io.Reader, stdout, stderr io.Writer) *Streams {
	return &Streams{
		in:  readCloser(stdin),
		out: writeCloser(stdout),
		err: writeCloser(stderr),
	}
}

// NewNullIO creates streams that read nothing and discard all output.
func NewNullIO() VIO {
	return NewStreams(nil, nil, nil)
}

// NewHostIO binds the process's own standard streams.
func NewHostIO() VIO {
	return NewStreams(os.Stdin, os.Stdout, os.Stderr)
}

// RedirectStdout returns vio with standard output replaced by w. Input and
// standard error still reach the terminal.
func RedirectStdout(vio VIO, w io.Writer) VIO {
	return &Streams{in: vio.Stdin(), out: writeCloser(w), err: vio.Stderr()}
}

func (s *Streams) Stdin() io.ReadCloser   { return s.in }
func (s *Streams) Stdout() io.WriteCloser { return s.out }
func (s *Streams) Stderr() io.WriteCloser { return s.err }

func writeCloser(w io.Writer) io.WriteCloser {
	switch v := w.(type) {
	case nil:
		return nullStream{}
	case io.WriteCloser:
		return v
	default:
		return nopWriteCloser{w}
	}
}

func readCloser(r io.Reader) io.ReadCloser {
	switch v := r.(type) {
	case nil:
		return nullStream{}
	case io.ReadCloser:
		return v
	default:
		return io.NopCloser(r)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// nullStream behaves like /dev/null.
type nullStream struct{}

func (nullStream) Read([]byte) (int, error)    { return 0, io.EOF }
func (nullStream) Write(b []byte) (int, error) { return len(b), nil }
func (nullStream) Close() error                { return nil }
