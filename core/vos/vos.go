package vos

import (
	"io"
	"time"
)

// TimeSource reports the current time.
type TimeSource = func() time.Time

// PTY describes the terminal attached to the shell.
type PTY struct {
	Width  int
	Height int
	Term   string
	IsPTY  bool
}

// VProc holds the per-process state the shell can observe and change.
type VProc interface {
	// Getwd returns the absolute path of the working directory.
	Getwd() string

	// Chdir changes the working directory.
	Chdir(dir string) error

	// Now returns the current time.
	Now() time.Time

	SetPTY(PTY)
	GetPTY() PTY
}

// VOS provides a virtual OS interface over the host primitives the shell
// consumes: files, environment, standard streams and the working directory.
type VOS interface {
	VFS
	VEnv
	VIO
	VProc
}

// ProcessFunc is a command that runs against a VOS. argv[0] holds the name
// the command was invoked with.
type ProcessFunc func(virtOS VOS, argv []string) error

// WithIO returns a view of virtOS whose standard streams are replaced by vio.
// Everything else, including the working directory, is shared.
func WithIO(virtOS VOS, vio VIO) VOS {
	return &ioOverlay{VOS: virtOS, vio: vio}
}

type ioOverlay struct {
	VOS
	vio VIO
}

var _ VOS = (*ioOverlay)(nil)

func (o *ioOverlay) Stdin() io.ReadCloser {
	return o.vio.Stdin()
}

func (o *ioOverlay) Stdout() io.WriteCloser {
	return o.vio.Stdout()
}

func (o *ioOverlay) Stderr() io.WriteCloser {
	return o.vio.Stderr()
}
