package core

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/abiosoft/readline"
	"github.com/mjanumpa/magicsh/commands"
	"github.com/mjanumpa/magicsh/core/shellerr"
	"github.com/mjanumpa/magicsh/core/vos"
	"github.com/olekukonko/tablewriter"
)

// ShellBuiltin is a command that runs inside the shell and may change the
// session.
type ShellBuiltin interface {
	Main(s *Shell, virtOS vos.VOS, argv []string) error
}

type ShellBuiltinFunc func(s *Shell, virtOS vos.VOS, argv []string) error

func (f ShellBuiltinFunc) Main(s *Shell, virtOS vos.VOS, argv []string) error {
	return f(s, virtOS, argv)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// processBuiltin runs a command that only needs the OS.
type processBuiltin vos.ProcessFunc

func (p processBuiltin) Main(_ *Shell, virtOS vos.VOS, argv []string) error {
	return p(virtOS, argv)
}

type builtinEntry struct {
	Name    string
	Use     string
	Short   string
	Builtin ShellBuiltin
}

var sessionBuiltins = []builtinEntry{
	{Name: "alias", Use: "alias [name [value...]]", Short: "List, show or set command aliases.", Builtin: ShellBuiltinFunc(Alias)},
	{Name: "cd", Use: "cd [directory]", Short: "Change the working directory or print it.", Builtin: ShellBuiltinFunc(Cd)},
	{Name: "help", Use: "help", Short: "Show the built-in commands.", Builtin: ShellBuiltinFunc(Help)},
	{Name: "history", Use: "history [-c]", Short: "Show the commands entered this session, -c clears them.", Builtin: ShellBuiltinFunc(History)},
	{Name: "pause", Use: "pause", Short: "Wait until Enter is pressed.", Builtin: ShellBuiltinFunc(Pause)},
	{Name: "quit", Use: "quit", Short: "Save aliases and to-do items then leave the shell.", Builtin: ShellBuiltinFunc(Quit)},
	{Name: "todo", Use: "todo [add <item> | remove <number>]", Short: "List, add or remove to-do items.", Builtin: ShellBuiltinFunc(Todo)},
	{Name: "unalias", Use: "unalias <name>", Short: "Remove a command alias.", Builtin: ShellBuiltinFunc(Unalias)},
}

// newBuiltins builds the table of every built-in by name.
func newBuiltins() map[string]builtinEntry {
	out := make(map[string]builtinEntry)
	for _, entry := range sessionBuiltins {
		out[entry.Name] = entry
	}

	for _, cmd := range commands.ListBuiltinCommands() {
		for _, name := range cmd.Names {
			out[name] = builtinEntry{
				Name:    name,
				Use:     cmd.Use,
				Short:   cmd.Short,
				Builtin: processBuiltin(cmd.Proc),
			}
		}
	}

	return out
}

// BuiltinNames lists the built-ins of the shell in order.
func (s *Shell) BuiltinNames() []string {
	var names []string
	for name := range s.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cd is the cd shell builtin
func Cd(s *Shell, virtOS vos.VOS, argv []string) error {
	cmd := &commands.SimpleCommand{
		Use:   "cd [directory]",
		Short: "Change the working directory, print it if no directory is given.",
	}

	return cmd.RunE(virtOS, argv, func() error {
		args := cmd.Flags().Args()
		switch len(args) {
		case 0:
			fmt.Fprintln(virtOS.Stdout(), virtOS.Getwd())
			return nil
		case 1:
		default:
			return cmd.UsageError()
		}

		dir := args[0]
		if err := commands.StatDir(virtOS, "cd", dir); err != nil {
			return err
		}
		if err := virtOS.Chdir(dir); err != nil {
			return err
		}
		return virtOS.Setenv(EnvPWD, virtOS.Getwd())
	})
}

// History prints the lines entered this session.
func History(s *Shell, virtOS vos.VOS, argv []string) error {
	cmd := &commands.SimpleCommand{
		Use:   "history [-c]",
		Short: "Display the history list with line numbers.",
	}
	clear := cmd.Flags().Bool('c', "clear the history by deleting all entries")

	return cmd.RunE(virtOS, argv, func() error {
		if len(cmd.Flags().Args()) != 0 {
			return cmd.UsageError()
		}

		if *clear {
			s.Reader.ResetHistory()
			s.history = nil
			return nil
		}

		for i, line := range s.history {
			fmt.Fprintf(virtOS.Stdout(), "%5d  %s\n", i+1, line)
		}
		return nil
	})
}

// Help lists the built-ins with their usage.
func Help(s *Shell, virtOS vos.VOS, argv []string) error {
	if len(argv) > 1 {
		return &shellerr.UsageError{Use: "help"}
	}

	w := virtOS.Stdout()
	fmt.Fprintln(w, "These commands are built into the shell:")
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, name := range s.BuiltinNames() {
		entry := s.builtins[name]
		fmt.Fprintf(tw, "  %s\t%s\n", entry.Use, entry.Short)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Anything else is run as a program from the PATH.")
	fmt.Fprintln(w, "Output can be sent to a file with '> file' or appended with '>> file'.")
	return nil
}

// Quit saves the session and ends the shell. If saving fails the shell keeps
// running so nothing is lost.
func Quit(s *Shell, virtOS vos.VOS, argv []string) error {
	if len(argv) > 1 {
		return &shellerr.UsageError{Use: "quit"}
	}

	if err := s.SaveSession(); err != nil {
		s.Log.Printf("saving session: %v", err)
		return fmt.Errorf("session not saved, the shell is still running: %w", err)
	}

	fmt.Fprintln(virtOS.Stdout(), FarewellMessage)
	s.quit = true
	return nil
}

// Pause blocks until a line is entered.
func Pause(s *Shell, virtOS vos.VOS, argv []string) error {
	if len(argv) > 1 {
		return &shellerr.UsageError{Use: "pause"}
	}

	s.Reader.SetPrompt(PausePrompt)
	_, err := s.Reader.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return nil
	default:
		return err
	}
}

// Alias lists, shows or sets aliases.
func Alias(s *Shell, virtOS vos.VOS, argv []string) error {
	w := virtOS.Stdout()
	args := argv[1:]

	switch {
	case len(args) == 0:
		names := s.aliases.Names()
		if len(names) == 0 {
			fmt.Fprintln(w, "No aliases defined.")
			return nil
		}

		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Name", "Value"})
		table.SetAutoWrapText(false)
		table.SetBorder(true)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
		for _, name := range names {
			value, _ := s.aliases.Get(name)
			table.Append([]string{name, value})
		}
		table.Render()
		return nil

	case len(args) == 1 && !strings.Contains(args[0], "="):
		name := args[0]
		value, ok := s.aliases.Get(name)
		if !ok {
			fmt.Fprintf(w, "No such alias: %s\n", name)
			return nil
		}
		fmt.Fprintf(w, "%s -> %s\n", name, value)
		return nil

	default:
		var name, value string
		if len(args) == 1 {
			// alias name=value
			name, value = splitAliasAssignment(args[0])
		} else {
			name, value = args[0], strings.Join(args[1:], " ")
		}

		if err := s.aliases.Set(name, value); err != nil {
			return err
		}
		fmt.Fprintf(w, "Alias set: %s -> %s\n", name, value)
		return nil
	}
}

func splitAliasAssignment(arg string) (name, value string) {
	idx := strings.Index(arg, "=")
	return arg[:idx], arg[idx+1:]
}

// Unalias removes an alias.
func Unalias(s *Shell, virtOS vos.VOS, argv []string) error {
	if len(argv) != 2 {
		return &shellerr.UsageError{Use: "unalias <name>"}
	}

	name := argv[1]
	if !s.aliases.Remove(name) {
		fmt.Fprintf(virtOS.Stdout(), "No such alias: %s\n", name)
		return nil
	}
	fmt.Fprintf(virtOS.Stdout(), "Alias removed: %s\n", name)
	return nil
}

// Todo manages the to-do list.
func Todo(s *Shell, virtOS vos.VOS, argv []string) error {
	w := virtOS.Stdout()
	args := argv[1:]

	switch {
	case len(args) == 0:
		items := s.todo.Items()
		if len(items) == 0 {
			fmt.Fprintln(w, "No todo items.")
			return nil
		}
		for i, item := range items {
			fmt.Fprintf(w, "%d. %s\n", i+1, item)
		}
		return nil

	case args[0] == "add":
		s.todo.Add(strings.Join(args[1:], " "))
		fmt.Fprintln(w, "Item added.")
		return nil

	case args[0] == "remove":
		if len(args) != 2 {
			fmt.Fprintln(w, "Invalid item number.")
			return nil
		}

		n, err := strconv.Atoi(args[1])
		removed, ok := s.todo.Remove(n)
		if err != nil || !ok {
			fmt.Fprintln(w, "Invalid item number.")
			return nil
		}
		fmt.Fprintf(w, "Removed: %s\n", removed)
		return nil

	default:
		return &shellerr.UsageError{Use: "todo [add <item> | remove <number>]"}
	}
}
