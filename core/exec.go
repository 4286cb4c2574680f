package core

import (
	"context"
	"errors"
	"io"
	"log"
	"os/exec"

	"github.com/mjanumpa/magicsh/core/shellerr"
	"github.com/mjanumpa/magicsh/core/vos"
)

// Invoker runs commands that aren't built into the shell.
type Invoker interface {
	// Run executes argv and blocks until it exits. Only a failure to start the
	// program is an error, a non-zero exit status is not.
	Run(ctx context.Context, virtOS vos.VOS, argv []string) error
}

// ExecInvoker starts programs found on the PATH of the VOS as child
// processes of the shell.
type ExecInvoker struct {
	Log *log.Logger
}

var _ Invoker = (*ExecInvoker)(nil)

// Run implements Invoker.Run.
//
// The child shares the shell's terminal and foreground process group so an
// interrupt from the keyboard reaches it directly.
func (e *ExecInvoker) Run(ctx context.Context, virtOS vos.VOS, argv []string) error {
	name := argv[0]
	execPath, err := vos.LookPath(virtOS, name)
	if err != nil {
		return &shellerr.LaunchError{Name: name, Err: err}
	}

	cmd := exec.CommandContext(ctx, execPath, argv[1:]...)
	// Multi-call binaries dispatch on the name they were invoked by.
	cmd.Args[0] = name
	cmd.Dir = virtOS.Getwd()
	cmd.Env = virtOS.Environ()
	cmd.Stdin = virtOS.Stdin()
	cmd.Stdout = virtOS.Stdout()
	cmd.Stderr = virtOS.Stderr()

	if err := cmd.Start(); err != nil {
		return &shellerr.LaunchError{Name: name, Err: err}
	}

	err = cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		e.logger().Printf("%s exited: %v", name, exitErr)
		return nil
	case err != nil:
		return err
	}
	return nil
}

func (e *ExecInvoker) logger() *log.Logger {
	if e.Log == nil {
		return log.New(io.Discard, "", 0)
	}
	return e.Log
}
