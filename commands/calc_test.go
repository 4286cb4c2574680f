package commands

import (
	"strings"
	"testing"

	"github.com/mjanumpa/magicsh/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	cases := map[string]float64{
		"2 + 2 * 3":         8,
		"(2 + 2) * 3":       12,
		"2*(3+(4-1))":       12,
		"-3 + 5":            2,
		"--2":               2,
		"+4":                4,
		"7 % 3":             1,
		"-7 % 3":            2,
		"7 % -3":            -2,
		"7 / 2":             3.5,
		"8 / 2 / 2":         2,
		"10 - 4 - 3":        3,
		".5 + 1.25":         1.75,
		"2 * -3":            -6,
		"  42  ":            42,
		"1.5 * (2 - 0.5)":   2.25,
		"100 % 7 * 2 + 1":   5,
		"(((1)))":           1,
		"3 - -3":            6,
		"1000000 * 1000000": 1e12,
	}

	for expr, want := range cases {
		t.Run(expr, func(t *testing.T) {
			got, err := Evaluate(expr)
			assert.Nil(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEvaluate_errors(t *testing.T) {
	cases := []string{
		"",
		"foo(",
		"__import__('os').system('ls')",
		"1 +",
		"(1 + 2",
		"1 + 2)",
		"2 3",
		"1 / 0",
		"5 % 0",
		"1..2",
		"2 ** 3",
		"abs(-1)",
	}

	for _, expr := range cases {
		t.Run(expr, func(t *testing.T) {
			_, err := Evaluate(expr)
			assert.Error(t, err)
		})
	}
}

func TestEvaluate_depth(t *testing.T) {
	nested := strings.Repeat("(", 500) + "1" + strings.Repeat(")", 500)
	v, err := Evaluate(nested)
	assert.Nil(t, err)
	assert.Equal(t, float64(1), v)

	_, err = Evaluate(strings.Repeat("(", 3000000))
	assert.ErrorIs(t, err, errTooDeep)

	_, err = Evaluate(strings.Repeat("-", 5000) + "1")
	assert.ErrorIs(t, err, errTooDeep)
}

func TestCalc(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"precedence":   {args: []string{"2", "+", "2", "*", "3"}, want: "Result: 8\n"},
		"single token": {args: []string{"(1+2)*3"}, want: "Result: 9\n"},
		"fraction":     {args: []string{"1", "/", "4"}, want: "Result: 0.25\n"},
		"negative":     {args: []string{"0", "-", "0.5"}, want: "Result: -0.5\n"},
		"invalid":      {args: []string{"foo("}, want: "Error in calculation: invalid token \"f\" at position 1\n"},
		"zero":         {args: []string{"1/0"}, want: "Error in calculation: division by zero\n"},
		"unterminated": {args: []string{"(1"}, want: "Error in calculation: unexpected end of expression\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(Calc, "calc", tc.args...)

			out, err := cmd.CombinedOutput()
			assert.Nil(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}

func TestCalc_usage(t *testing.T) {
	_, err := vostest.Command(Calc, "calc").CombinedOutput()
	assert.EqualError(t, err, "Usage: calc <expression>")
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "8", FormatNumber(8))
	assert.Equal(t, "3.5", FormatNumber(3.5))
	assert.Equal(t, "0", FormatNumber(-1*0.0))
	assert.Equal(t, "1000000000000", FormatNumber(1e12))
}
