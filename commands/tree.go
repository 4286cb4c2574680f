package commands

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/mjanumpa/magicsh/core/vos"
	"github.com/spf13/afero"
)

const treeIndent = "    "

// Tree prints a directory listing, each level indented beyond its parent.
func Tree(virtOS vos.VOS, argv []string) error {
	cmd := &SimpleCommand{
		Use:   "tree [directory]",
		Short: "Show the directory tree, defaults to the current directory.",
	}

	return cmd.RunE(virtOS, argv, func() error {
		args := cmd.Flags().Args()
		root := "."
		switch len(args) {
		case 0:
		case 1:
			root = args[0]
		default:
			return cmd.UsageError()
		}

		if err := StatDir(virtOS, "tree", root); err != nil {
			return err
		}

		name := filepath.Base(root)
		if name == string(filepath.Separator) {
			name = ""
		}
		return printTree(virtOS, virtOS.Stdout(), root, name, 0)
	})
}

// printTree writes dir, then the files within it, then each subdirectory.
func printTree(fsys afero.Fs, w io.Writer, dir, name string, level int) error {
	fmt.Fprintf(w, "%s%s/\n", strings.Repeat(treeIndent, level), ColorBoldBlue.Sprint(name))

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	var subdirs []fs.FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry)
			continue
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(treeIndent, level+1), entry.Name())
	}

	for _, subdir := range subdirs {
		if err := printTree(fsys, w, filepath.Join(dir, subdir.Name()), subdir.Name(), level+1); err != nil {
			return err
		}
	}
	return nil
}

var _ vos.ProcessFunc = Tree

func init() {
	mustAddCommand(CommandEntry{
		Names: []string{"tree"},
		Use:   "tree [directory]",
		Short: "Show the directory tree, defaults to the current directory.",
		Proc:  Tree,
	})
}
