package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/mjanumpa/magicsh/core/vos"
)

// Touch creates files or updates their modification time.
func Touch(virtOS vos.VOS, argv []string) error {
	cmd := &SimpleCommand{
		Use:   "touch <filename>...",
		Short: "Create a file or update its modification time.",
	}

	return cmd.RunE(virtOS, argv, func() error {
		paths := cmd.Flags().Args()
		if len(paths) == 0 {
			return cmd.UsageError()
		}

		now := virtOS.Now()
		for _, path := range paths {
			err := virtOS.Chtimes(path, now, now)
			if errors.Is(err, fs.ErrNotExist) {
				err = createEmpty(virtOS, path)
			}
			if err != nil {
				return fmt.Errorf("cannot touch %q: %w", path, err)
			}

			fmt.Fprintf(virtOS.Stdout(), "Created or updated: %s\n", path)
		}

		return nil
	})
}

func createEmpty(virtOS vos.VOS, path string) error {
	fd, err := virtOS.Create(path)
	if err != nil {
		return err
	}
	return fd.Close()
}

var _ vos.ProcessFunc = Touch

func init() {
	mustAddCommand(CommandEntry{
		Names: []string{"touch"},
		Use:   "touch <filename>...",
		Short: "Create a file or update its modification time.",
		Proc:  Touch,
	})
}
