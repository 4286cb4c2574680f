package commands

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/mjanumpa/magicsh/core/vos"
)

type wcCount struct {
	bytes int
	lines int
	chars int
	words int

	inSpace bool
}

// Write counts data, which must end on a rune boundary. Invalid bytes count
// as one character each.
func (w *wcCount) Write(data []byte) (int, error) {
	for rest := data; len(rest) > 0; {
		r, size := utf8.DecodeRune(rest)
		rest = rest[size:]

		isFirst := w.bytes == 0
		w.bytes += size
		w.chars++

		if r == '\n' {
			w.lines++
		}

		if isWordSpace(r) {
			w.inSpace = true
		} else {
			if w.inSpace || isFirst {
				w.words++
			}
			w.inSpace = false
		}
	}

	return len(data), nil
}

// isWordSpace reports Unicode white space and the ASCII information
// separators U+001C through U+001F.
func isWordSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Wc counts the newlines, words and characters of a file.
func Wc(virtOS vos.VOS, argv []string) error {
	cmd := &SimpleCommand{
		Use:   "wc <filename>",
		Short: "Count the lines, words, and characters in a file.",
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

		var count wcCount
		count.Write(content)

		fmt.Fprintf(virtOS.Stdout(), "Lines: %d, Words: %d, Characters: %d\n", count.lines, count.words, count.chars)
		return nil
	})
}

var _ vos.ProcessFunc = Wc

func init() {
	mustAddCommand(CommandEntry{
		Names: []string{"wc"},
		Use:   "wc <filename>",
		Short: "Count the lines, words, and characters in a file.",
		Proc:  Wc,
	})
}
