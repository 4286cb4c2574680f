package commands

import (
	"bytes"
	"fmt"

	"github.com/mjanumpa/magicsh/core/vos"
)

// Cat prints a file verbatim.
func Cat(virtOS vos.VOS, argv []string) error {
	cmd := &SimpleCommand{
		Use:   "cat <filename>",
		Short: "Print the contents of a file.",
	}

	return cmd.RunE(virtOS, argv, func() error {
		args := cmd.Flags().Args()
		if len(args) != 1 {
			return cmd.UsageError()
		}

		content, err := readFile(virtOS, args[0])
		if err != nil {
			return err
		}

		w := virtOS.Stdout()
		if _, err := w.Write(content); err != nil {
			return err
		}
		// Keep the prompt on its own line.
		if !bytes.HasSuffix(content, []byte("\n")) {
			fmt.Fprintln(w)
		}
		return nil
	})
}

var _ vos.ProcessFunc = Cat

func init() {
	mustAddCommand(CommandEntry{
		Names: []string{"cat"},
		Use:   "cat <filename>",
		Short: "Print the contents of a file.",
		Proc:  Cat,
	})
}
