package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"

	"github.com/mjanumpa/magicsh/core/shellerr"
	"github.com/mjanumpa/magicsh/core/vos"
	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"
)

// CommandEntry describes a built-in implemented in this package.
type CommandEntry struct {
	// Names the command can be invoked by, the first is the canonical one.
	Names []string
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
	Proc  vos.ProcessFunc
}

var allCommands = make(map[string]CommandEntry)

// mustAddCommand registers a command under each of its names.
func mustAddCommand(entry CommandEntry) {
	if len(entry.Names) == 0 {
		panic("command has no names")
	}
	for _, name := range entry.Names {
		if _, ok := allCommands[name]; ok {
			panic(fmt.Sprintf("command %q registered twice", name))
		}
		allCommands[name] = entry
	}
}

// ListBuiltinCommands returns every registered command once, ordered by its
// canonical name.
func ListBuiltinCommands() []CommandEntry {
	var out []CommandEntry
	for name, entry := range allCommands {
		if entry.Names[0] == name {
			out = append(out, entry)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Names[0] < out[j].Names[0]
	})
	return out
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when RunE() is called, then the default help flag
	// isn't added.
	ShowHelp *bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// UsageError reports a wrong invocation of the command.
func (s *SimpleCommand) UsageError() error {
	return &shellerr.UsageError{Use: s.Use}
}

// RunE parses argv, if flag parsing was successful call the callback.
func (s *SimpleCommand) RunE(virtOS vos.VOS, argv []string, callback func() error) error {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	if err := opts.Getopt(argv, nil); err != nil {
		fmt.Fprintf(virtOS.Stderr(), "error: %s\n", err)
		return s.UsageError()
	}

	if *s.ShowHelp {
		s.PrintHelp(virtOS.Stdout())
		return nil
	}

	return callback()
}

// readFile reads a whole file, translating a missing file into the error
// the shell reports for it.
func readFile(virtOS vos.VOS, path string) ([]byte, error) {
	content, err := afero.ReadFile(virtOS, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &shellerr.NotFoundError{Path: path}
	}
	return content, err
}

// StatDir checks that path names a directory, errors are attributed to op.
func StatDir(virtOS vos.VOS, op, path string) error {
	fi, err := virtOS.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &shellerr.NotFoundError{Op: op, Path: path}
	case err != nil:
		return err
	case !fi.IsDir():
		return &shellerr.NotFoundError{Op: op, Path: path, Reason: "Not a directory"}
	default:
		return nil
	}
}
