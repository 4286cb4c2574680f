package vos

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// VirtualOS is a VOS over an arbitrary filesystem and environment. It tracks
// its own working directory rather than the process's.
type VirtualOS struct {
	VFS
	VEnv
	VIO

	cwd        string
	pty        PTY
	timeSource TimeSource
}

var _ VOS = (*VirtualOS)(nil)

// NewVirtualOS creates a VOS rooted at "/" of base.
func NewVirtualOS(base VFS, env VEnv, vio VIO, timeSource TimeSource) *VirtualOS {
	v := &VirtualOS{
		VEnv:       env,
		VIO:        vio,
		cwd:        "/",
		timeSource: timeSource,
	}
	v.VFS = NewRelativeFs(base, v.Getwd)
	return v
}

// Getwd implements VProc.Getwd.
func (v *VirtualOS) Getwd() string {
	return v.cwd
}

// Chdir implements VProc.Chdir.
func (v *VirtualOS) Chdir(dir string) error {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(v.cwd, dir)
	}
	dir = filepath.Clean(dir)

	fi, err := v.Stat(dir)
	if err != nil {
		return &os.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	}
	if !fi.IsDir() {
		return &os.PathError{Op: "chdir", Path: dir, Err: fmt.Errorf("not a directory")}
	}

	v.cwd = dir
	return nil
}

// Now implements VProc.Now.
func (v *VirtualOS) Now() time.Time {
	return v.timeSource()
}

func (v *VirtualOS) SetPTY(pty PTY) {
	v.pty = pty
}

func (v *VirtualOS) GetPTY() PTY {
	return v.pty
}
