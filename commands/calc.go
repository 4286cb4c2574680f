package commands

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mjanumpa/magicsh/core/shellerr"
	"github.com/mjanumpa/magicsh/core/vos"
)

var (
	errDivisionByZero = errors.New("division by zero")
	errModuloByZero   = errors.New("modulo by zero")
	errTooDeep        = errors.New("expression too deeply nested")
)

// maxCalcDepth bounds nested parentheses and unary signs.
const maxCalcDepth = 1000

// Calc evaluates an arithmetic expression.
func Calc(virtOS vos.VOS, argv []string) error {
	if len(argv) < 2 {
		return &shellerr.UsageError{Use: "calc <expression>"}
	}

	result, err := Evaluate(strings.Join(argv[1:], " "))
	if err != nil {
		fmt.Fprintf(virtOS.Stdout(), "Error in calculation: %v\n", err)
		return nil
	}

	fmt.Fprintf(virtOS.Stdout(), "Result: %s\n", FormatNumber(result))
	return nil
}

// FormatNumber renders a result without trailing zeros.
func FormatNumber(v float64) string {
	if v == 0 {
		// Avoid printing negative zero.
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Evaluate computes expr as arithmetic over numbers, the binary operators
// + - * / % with the usual precedence, unary signs and parentheses. Nothing
// else is accepted.
func Evaluate(expr string) (float64, error) {
	p := &calcParser{input: expr}
	p.next()

	result, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.tok.kind != tokEOF {
		return 0, p.unexpected()
	}
	return result, nil
}

type calcTokenKind int

const (
	tokEOF calcTokenKind = iota
	tokNumber
	tokOperator
	tokInvalid
)

type calcToken struct {
	kind  calcTokenKind
	text  string
	value float64
	pos   int
}

type calcParser struct {
	input string
	pos   int
	tok   calcToken
	depth int
}

// next advances to the following token.
func (p *calcParser) next() {
	for p.pos < len(p.input) && isCalcSpace(p.input[p.pos]) {
		p.pos++
	}

	start := p.pos
	if p.pos >= len(p.input) {
		p.tok = calcToken{kind: tokEOF, pos: start}
		return
	}

	c := p.input[p.pos]
	switch {
	case strings.IndexByte("+-*/%()", c) >= 0:
		p.pos++
		p.tok = calcToken{kind: tokOperator, text: string(c), pos: start}
	case isCalcDigit(c) || c == '.':
		for p.pos < len(p.input) && (isCalcDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
			p.pos++
		}
		text := p.input[start:p.pos]
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.tok = calcToken{kind: tokInvalid, text: text, pos: start}
			return
		}
		p.tok = calcToken{kind: tokNumber, text: text, value: value, pos: start}
	default:
		p.pos++
		p.tok = calcToken{kind: tokInvalid, text: string(c), pos: start}
	}
}

func (p *calcParser) unexpected() error {
	switch p.tok.kind {
	case tokEOF:
		return errors.New("unexpected end of expression")
	case tokInvalid:
		return fmt.Errorf("invalid token %q at position %d", p.tok.text, p.tok.pos+1)
	default:
		return fmt.Errorf("unexpected %q at position %d", p.tok.text, p.tok.pos+1)
	}
}

func (p *calcParser) isOperator(ops string) bool {
	return p.tok.kind == tokOperator && strings.Contains(ops, p.tok.text)
}

// expr := term (("+" | "-") term)*
func (p *calcParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for p.isOperator("+-") {
		op := p.tok.text
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}

		if op == "+" {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

// term := unary (("*" | "/" | "%") unary)*
func (p *calcParser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	for p.isOperator("*/%") {
		op := p.tok.text
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}

		switch op {
		case "*":
			left *= right
		case "/":
			if right == 0 {
				return 0, errDivisionByZero
			}
			left /= right
		case "%":
			if right == 0 {
				return 0, errModuloByZero
			}
			left = floorMod(left, right)
		}
	}
	return left, nil
}

// unary := ("+" | "-") unary | primary
func (p *calcParser) parseUnary() (float64, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxCalcDepth {
		return 0, errTooDeep
	}

	if p.isOperator("+-") {
		negate := p.tok.text == "-"
		p.next()
		v, err := p.parseUnary()
		if negate {
			v = -v
		}
		return v, err
	}
	return p.parsePrimary()
}

// primary := number | "(" expr ")"
func (p *calcParser) parsePrimary() (float64, error) {
	switch {
	case p.tok.kind == tokNumber:
		v := p.tok.value
		p.next()
		return v, nil
	case p.isOperator("("):
		p.next()
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if !p.isOperator(")") {
			return 0, p.unexpected()
		}
		p.next()
		return v, nil
	default:
		return 0, p.unexpected()
	}
}

// floorMod takes the sign of the divisor like a mathematical modulo.
func floorMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

func isCalcDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isCalcSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

var _ vos.ProcessFunc = Calc

func init() {
	mustAddCommand(CommandEntry{
		Names: []string{"calc"},
		Use:   "calc <expression>",
		Short: "Evaluate an arithmetic expression with + - * / % and parentheses.",
		Proc:  Calc,
	})
}
