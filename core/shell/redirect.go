package shell

import (
	"errors"
	"os"

	"github.com/mjanumpa/magicsh/core/shellerr"
	"github.com/spf13/afero"
)

const (
	opRedirect = ">"
	opAppend   = ">>"
)

// Redirect sends a command's standard output to a file.
type Redirect struct {
	Path   string
	Append bool
}

// ParseRedirects removes output redirections from tokens. When several are
// present the last one wins.
func ParseRedirects(tokens []string) ([]string, *Redirect, error) {
	var (
		out      []string
		redirect *Redirect
	)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok != opRedirect && tok != opAppend {
			out = append(out, tok)
			continue
		}

		if i+1 >= len(tokens) {
			return nil, nil, &shellerr.ParseError{
				Err: errors.New("syntax error near unexpected token `newline'"),
			}
		}
		redirect = &Redirect{Path: tokens[i+1], Append: tok == opAppend}
		i++
	}

	return out, redirect, nil
}

// Open opens the redirect target for writing, truncating it unless the
// redirect appends.
func (r *Redirect) Open(fsys afero.Fs) (afero.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if r.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return fsys.OpenFile(r.Path, flags, 0644)
}
