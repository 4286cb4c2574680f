package vos

import (
	"os"
	"time"

	"github.com/spf13/afero"
)

// HostOS binds a VOS to the real operating system. Relative paths resolve
// against the process working directory, which Chdir changes.
type HostOS struct {
	VFS
	HostEnv
	VIO

	pty PTY
}

var _ VOS = (*HostOS)(nil)

// NewHostOS creates a VOS backed by the local filesystem and environment
// using the given standard streams.
func NewHostOS(vio VIO) *HostOS {
	return &HostOS{
		VFS: afero.NewOsFs(),
		VIO: vio,
	}
}

// Getwd implements VProc.Getwd.
func (h *HostOS) Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		// The directory was removed out from under us, PWD is the best guess.
		return h.Getenv("PWD")
	}
	return wd
}

// Chdir implements VProc.Chdir.
func (h *HostOS) Chdir(dir string) error {
	return os.Chdir(dir)
}

// Now implements VProc.Now.
func (h *HostOS) Now() time.Time {
	return time.Now()
}

func (h *HostOS) SetPTY(pty PTY) {
	h.pty = pty
}

func (h *HostOS) GetPTY() PTY {
	return h.pty
}
