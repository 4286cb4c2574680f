package commands

import (
	"fmt"

	"github.com/mjanumpa/magicsh/core/vos"
)

// Environ prints the environment in the order the OS reports it.
func Environ(virtOS vos.VOS, argv []string) error {
	cmd := &SimpleCommand{
		Use:   "environ",
		Short: "List all the environment strings.",
	}

	return cmd.RunE(virtOS, argv, func() error {
		if len(cmd.Flags().Args()) != 0 {
			return cmd.UsageError()
		}

		for _, envDef := range virtOS.Environ() {
			fmt.Fprintln(virtOS.Stdout(), envDef)
		}
		return nil
	})
}

var _ vos.ProcessFunc = Environ

func init() {
	mustAddCommand(CommandEntry{
		Names: []string{"environ"},
		Use:   "environ",
		Short: "List all the environment strings.",
		Proc:  Environ,
	})
}
