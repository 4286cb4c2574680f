package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mjanumpa/magicsh/core/vos"
)

// Grep prints the lines of a file containing a literal string.
func Grep(virtOS vos.VOS, argv []string) error {
	cmd := &SimpleCommand{
		Use:   "grep [-inv] <pattern> <file>",
		Short: "Print the lines of a file containing a pattern.",
	}

	invert := cmd.Flags().Bool('v', "select lines not containing the pattern")
	ignoreCase := cmd.Flags().Bool('i', "ignore case distinctions")
	showLineNumbers := cmd.Flags().Bool('n', "prefix each line with its line number")

	return cmd.RunE(virtOS, argv, func() error {
		args := cmd.Flags().Args()
		if len(args) != 2 {
			return cmd.UsageError()
		}

		pattern, file := args[0], args[1]
		content, err := readFile(virtOS, file)
		if err != nil {
			return err
		}

		matches := func(line string) bool {
			return strings.Contains(line, pattern)
		}
		if *ignoreCase {
			lowerPattern := strings.ToLower(pattern)
			matches = func(line string) bool {
				return strings.Contains(strings.ToLower(line), lowerPattern)
			}
		}

		w := virtOS.Stdout()
		lines := strings.SplitAfter(string(content), "\n")
		for i, line := range lines {
			if line == "" {
				// Content ended with a newline.
				continue
			}
			if matches(line) == *invert {
				continue
			}

			if *showLineNumbers {
				fmt.Fprintf(w, "%d:", i+1)
			}
			fmt.Fprintln(w, strings.TrimRightFunc(line, unicode.IsSpace))
		}

		return nil
	})
}

var _ vos.ProcessFunc = Grep

func init() {
	mustAddCommand(CommandEntry{
		Names: []string{"grep"},
		Use:   "grep [-inv] <pattern> <file>",
		Short: "Print the lines of a file containing a pattern.",
		Proc:  Grep,
	})
}
