package shell

import (
	"github.com/anmitsu/go-shlex"
	"github.com/mjanumpa/magicsh/core/shellerr"
)

// Split breaks line into tokens. Single and double quotes group characters
// and backslash escapes the next one. Blank lines produce no tokens.
func Split(line string) ([]string, error) {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		return nil, &shellerr.ParseError{Line: line, Err: err}
	}
	return tokens, nil
}
