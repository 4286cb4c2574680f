package commands

import (
	"io/fs"
	"os"
	"path"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

var (
	ColorBoldBlue  = color.New(color.FgBlue, color.Bold)
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorBoldCyan  = color.New(color.FgCyan, color.Bold)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
	ColorYellow    = color.New(color.FgYellow)
	ColorPlain     = color.New(color.Reset)
)

// SetColorMode turns colored output on or off for the whole process. In
// auto mode color is used only when out is a terminal.
func SetColorMode(mode string, out *os.File) {
	switch mode {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	default:
		fd := out.Fd()
		color.NoColor = os.Getenv("TERM") == "dumb" ||
			(!isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd))
	}
}

type dirColorTest struct {
	color *color.Color
	test  func(fileInfo fs.FileInfo) bool
}

// Color listing comes from: https://askubuntu.com/a/884513
var dirColors = []dirColorTest{
	// Directories are bold blue.
	{color: ColorBoldBlue, test: fs.FileInfo.IsDir},
	// Symlinks are bold cyan.
	{color: ColorBoldCyan, test: func(fi fs.FileInfo) bool {
		return fi.Mode()&fs.ModeSymlink > 0
	}},
	// Executables are bold green.
	{color: ColorBoldGreen, test: func(fi fs.FileInfo) bool {
		return fi.Mode().Perm()&0111 > 0
	}},
	// Archives are bold red.
	{color: ColorBoldRed, test: func(fi fs.FileInfo) bool {
		switch path.Ext(fi.Name()) {
		case ".tar", ".tgz", ".zip", ".gz", ".bz2", ".deb", ".rpm", ".jar", ".rar":
			return true
		}
		return false
	}},
}

// DirColor picks the color a file is listed in.
func DirColor(fileInfo fs.FileInfo) *color.Color {
	for _, dc := range dirColors {
		if dc.test(fileInfo) {
			return dc.color
		}
	}

	return ColorPlain
}
