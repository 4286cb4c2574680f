package commands

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mjanumpa/magicsh/core/vos"
	"github.com/spf13/afero"
)

// Find prints the paths matching a glob, "**" matches any number of
// directories.
func Find(virtOS vos.VOS, argv []string) error {
	cmd := &SimpleCommand{
		Use:   "find <pattern>",
		Short: "Find files matching a glob pattern, ** matches across directories.",
	}

	return cmd.RunE(virtOS, argv, func() error {
		args := cmd.Flags().Args()
		if len(args) != 1 {
			return cmd.UsageError()
		}

		matches, err := glob(virtOS, args[0])
		if err != nil {
			return err
		}

		for _, match := range matches {
			fmt.Fprintln(virtOS.Stdout(), match)
		}
		return nil
	})
}

// glob expands pattern against the filesystem. Matches keep the directory
// prefix the pattern was written with.
func glob(virtOS vos.VOS, pattern string) ([]string, error) {
	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
	if rest == "" {
		rest = "."
	}

	root := base
	if !path.IsAbs(root) {
		root = path.Join(virtOS.Getwd(), root)
	}
	fsys := afero.NewIOFS(afero.NewBasePathFs(virtOS, root))

	matches, err := doublestar.Glob(fsys, rest)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	if base == "." {
		return matches, nil
	}
	for i, match := range matches {
		matches[i] = path.Join(base, match)
	}
	return matches, nil
}

var _ vos.ProcessFunc = Find

func init() {
	mustAddCommand(CommandEntry{
		Names: []string{"find"},
		Use:   "find <pattern>",
		Short: "Find files matching a glob pattern, ** matches across directories.",
		Proc:  Find,
	})
}
