package commands

import (
	"fmt"

	"github.com/mjanumpa/magicsh/core/vos"
)

const dateLayout = "2006-01-02 15:04:05"

// Date prints the local date and time.
func Date(virtOS vos.VOS, argv []string) error {
	cmd := &SimpleCommand{
		Use:   "date",
		Short: "Show the current date and time.",
	}

	return cmd.RunE(virtOS, argv, func() error {
		if len(cmd.Flags().Args()) != 0 {
			return cmd.UsageError()
		}

		fmt.Fprintln(virtOS.Stdout(), virtOS.Now().Format(dateLayout))
		return nil
	})
}

var _ vos.ProcessFunc = Date

func init() {
	mustAddCommand(CommandEntry{
		Names: []string{"date"},
		Use:   "date",
		Short: "Show the current date and time.",
		Proc:  Date,
	})
}
