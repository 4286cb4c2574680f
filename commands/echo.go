package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mjanumpa/magicsh/core/vos"
)

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-8][0-8]?[0-8]?`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n", // newline
		`\r`, "\r", // carriage return
		`\t`, "\t", // horizontal tab
		`\\`, `\`, // backslash literal
		`\b`, "\b", // backspace
		`\a`, "\a", // alert
		`\f`, "\f", // form feed
		`\v`, "\v", // vertical tab
	)
)

func unescape(s string) string {
	s = unescapeReplace.Replace(s)
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 8, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 16, 8)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return s
}

// Echo prints its arguments separated by single spaces.
func Echo(virtOS vos.VOS, argv []string) error {
	args := argv[1:]

	// Only a leading -e is an option so text starting with a dash prints as is.
	escaped := len(args) > 0 && args[0] == "-e"
	if escaped {
		args = args[1:]
	}

	text := strings.Join(strings.Fields(strings.Join(args, " ")), " ")
	if escaped {
		text = unescape(text)
	}

	_, err := fmt.Fprintln(virtOS.Stdout(), text)
	return err
}

var _ vos.ProcessFunc = Echo

func init() {
	mustAddCommand(CommandEntry{
		Names: []string{"echo"},
		Use:   "echo [-e] <text>...",
		Short: "Print text collapsing runs of whitespace, -e interprets backslash escapes.",
		Proc:  Echo,
	})
}
