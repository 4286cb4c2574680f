package commands

import (
	"testing"

	"github.com/mjanumpa/magicsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	cases := []struct {
		escaped  string
		expected string
	}{
		{"not escaped", "not escaped"},
		{`newline\n`, "newline\n"},
		{`double-escape\\n`, `double-escape\n`},
		{`double-escape\\n`, `double-escape\n`},
		// Octal
		{`\07`, string(rune(7))},
		{`\011`, "\t"},
		{`\0101`, "A"},
		// Hex
		{`\x7`, string(rune(07))},
		{`\x9`, "\t"},
		{`\x4A`, "J"},
	}

	for _, tc := range cases {
		t.Run(tc.escaped, func(t *testing.T) {
			actual := unescape(tc.escaped)

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestEcho(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"no args":           {args: nil, want: "\n"},
		"separate words":    {args: []string{"a", "b"}, want: "a b\n"},
		"collapse":          {args: []string{"a   b", " c\t"}, want: "a b c\n"},
		"escapes":           {args: []string{"-e", `x\ty`}, want: "x\ty\n"},
		"escapes off":       {args: []string{`x\ty`}, want: `x\ty` + "\n"},
		"other dash option": {args: []string{"-n", "5"}, want: "-n 5\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(Echo, "echo", tc.args...)

			out, err := cmd.CombinedOutput()
			assert.Nil(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}
