package vostest

import (
	"bytes"
	"io"
	"time"

	"github.com/mjanumpa/magicsh/core/vos"
	"github.com/spf13/afero"
)

// ReferenceTime is the fixed clock of NewDeterministicOS.
var ReferenceTime = time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)

// NewDeterministicOS creates an in-memory VOS with a fixed clock, an empty
// filesystem rooted at "/" and a small environment.
func NewDeterministicOS() *vos.VirtualOS {
	timeSource := func() time.Time {
		// Go's reference timestmap with a different value in each position.
		return ReferenceTime
	}

	env := vos.NewMapEnvFromEnvList([]string{
		"HOME=/",
		"PATH=",
		"PWD=/",
		"USER=tester",
	})

	return vos.NewVirtualOS(afero.NewMemMapFs(), env, vos.NewNullIO(), timeSource)
}

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function
	Process vos.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string
	// VOS the process runs against, it persists between runs so tests can
	// prepare files before running and inspect them afterwards.
	VOS *vos.VirtualOS

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
		VOS:     NewDeterministicOS(),
	}
}

// CombinedOutput runs the command and returns its standard output and error
// interleaved along with the error the process returned.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	err := c.Run()
	return buf.Bytes(), err
}

// Run starts the comand and waits for it to complete.
func (c *Cmd) Run() error {
	proc := vos.WithIO(c.VOS, vos.NewStreams(c.Stdin, c.Stdout, c.Stderr))
	return c.Process(proc, c.Argv)
}
