package commands

import (
	"fmt"

	"github.com/mjanumpa/magicsh/core/shellerr"
	"github.com/mjanumpa/magicsh/core/vos"
)

// Assumes VT100 compatibility, erase the display then home the cursor.
const clearScreen = "\x1b[2J\x1b[H"

// Clr clears the terminal.
func Clr(virtOS vos.VOS, argv []string) error {
	if len(argv) > 1 {
		return &shellerr.UsageError{Use: "clr"}
	}

	_, err := fmt.Fprint(virtOS.Stdout(), clearScreen)
	return err
}

var _ vos.ProcessFunc = Clr

func init() {
	mustAddCommand(CommandEntry{
		Names: []string{"clr"},
		Use:   "clr",
		Short: "Clear the screen.",
		Proc:  Clr,
	})
}
