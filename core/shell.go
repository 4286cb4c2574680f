package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/mjanumpa/magicsh/commands"
	"github.com/mjanumpa/magicsh/core/config"
	"github.com/mjanumpa/magicsh/core/shell"
	"github.com/mjanumpa/magicsh/core/shellerr"
	"github.com/mjanumpa/magicsh/core/state"
	"github.com/mjanumpa/magicsh/core/vos"
)

const (
	EnvHome = "HOME"
	EnvPWD  = "PWD"
	EnvPath = "PATH"

	FarewellMessage = "Thank you for using Mani's Magical CLI (Shell). Goodbye!"
	InterruptHint   = "Use 'quit' to exit the shell."
	PausePrompt     = "Paused. Press Enter to continue..."
)

// LineReader reads the lines the user types.
type LineReader interface {
	SetPrompt(prompt string)
	// Readline returns readline.ErrInterrupt if the user interrupts the read
	// and io.EOF once input is closed.
	Readline() (string, error)
	// ResetHistory forgets the lines available for recall.
	ResetHistory()
}

type readlineReader struct {
	*readline.Instance
}

func (r *readlineReader) ResetHistory() {
	r.Operation.ResetHistory()
}

// NewReadline creates a LineReader on the terminal streams of virtOS.
func NewReadline(virtOS vos.VOS) (LineReader, io.Closer, error) {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(virtOS.Stdin()),
		Stdout: virtOS.Stdout(),
		Stderr: virtOS.Stderr(),

		FuncIsTerminal: func() bool {
			return virtOS.GetPTY().IsPTY
		},
	}

	// Without a known width readline measures the terminal itself.
	if virtOS.GetPTY().Width > 0 {
		cfg.FuncGetWidth = func() int {
			return virtOS.GetPTY().Width
		}
	}

	if err := cfg.Init(); err != nil {
		return nil, nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, nil, err
	}

	return &readlineReader{rl}, rl, nil
}

// Shell is an interactive session. All of its state is owned by the
// goroutine calling Run.
type Shell struct {
	VirtualOS vos.VOS
	Reader    LineReader
	Invoker   Invoker
	Store     *state.Store
	Config    *config.Configuration
	Log       *log.Logger

	aliases  *shell.AliasTable
	todo     *state.TodoList
	history  []string
	builtins map[string]builtinEntry
	quit     bool
}

// NewShell creates a shell and restores the saved session from store. An
// unreadable session is reported and replaced by an empty one. A nil logger
// discards messages.
func NewShell(virtOS vos.VOS, reader LineReader, configuration *config.Configuration, store *state.Store, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Shell{
		VirtualOS: virtOS,
		Reader:    reader,
		Invoker:   &ExecInvoker{Log: logger},
		Store:     store,
		Config:    configuration,
		Log:       logger,
		builtins:  newBuiltins(),
	}

	session, err := store.Load()
	if err != nil {
		s.Log.Printf("loading session: %v", err)
		fmt.Fprintf(virtOS.Stderr(), "%s, starting an empty session\n", shellerr.Message(err))
	}
	s.aliases = shell.NewAliasTable(session.Aliases)
	s.todo = state.NewTodoList(session.TodoItems)

	return s
}

// Prompt is the absolute working directory followed by the configured
// suffix.
func (s *Shell) Prompt() string {
	return commands.ColorBoldBlue.Sprint(s.VirtualOS.Getwd()) + s.Config.PromptSuffix
}

// Terminated reports whether quit has run.
func (s *Shell) Terminated() bool {
	return s.quit
}

// History returns a copy of the lines entered so far.
func (s *Shell) History() []string {
	return append([]string{}, s.history...)
}

// Session returns the state that quit persists.
func (s *Shell) Session() *state.SessionConfig {
	return &state.SessionConfig{
		Aliases:   s.aliases.Map(),
		TodoItems: s.todo.Items(),
	}
}

// SaveSession writes the aliases and to-do items to the store.
func (s *Shell) SaveSession() error {
	return s.Store.Save(s.Session())
}

// Run reads and executes lines until quit runs. Closing the input runs quit.
func (s *Shell) Run(ctx context.Context) error {
	w := s.VirtualOS.Stdout()
	if s.Config.Welcome != "" {
		fmt.Fprint(w, s.Config.Welcome)
	}

	for !s.quit {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.Reader.SetPrompt(s.Prompt())
		line, err := s.Reader.Readline()

		switch {
		case errors.Is(err, readline.ErrInterrupt):
			fmt.Fprintln(w, InterruptHint)

		case err != nil:
			if !errors.Is(err, io.EOF) {
				s.Log.Printf("Error readline: %v", err)
			}
			// Input closed, nothing more can be read so quit regardless.
			fmt.Fprintln(w)
			s.RunCommand(ctx, "quit")
			s.quit = true

		default:
			s.RunCommand(ctx, line)
		}
	}

	return nil
}

// RunCommand records line in the history and executes it. Failures are
// reported on the terminal and never end the session.
func (s *Shell) RunCommand(ctx context.Context, line string) {
	line = strings.TrimSpace(line)
	s.addHistory(line)

	if err := s.execute(ctx, line); err != nil {
		fmt.Fprintln(s.VirtualOS.Stdout(), shellerr.Message(err))
	}
}

func (s *Shell) addHistory(line string) {
	s.history = append(s.history, line)
	if limit := s.Config.HistoryLimit; limit > 0 && len(s.history) > limit {
		s.history = append([]string(nil), s.history[len(s.history)-limit:]...)
	}
}

func (s *Shell) execute(ctx context.Context, line string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.Log.Printf("recovered from panic running %q: %v", line, r)
			err = fmt.Errorf("%v", r)
		}
	}()

	tokens, err := shell.Split(line)
	if err != nil {
		return err
	}

	tokens, err = s.aliases.Resolve(tokens)
	if err != nil {
		return err
	}

	tokens, redirect, err := shell.ParseRedirects(tokens)
	if err != nil {
		return err
	}

	virtOS := s.VirtualOS
	if redirect != nil {
		fd, err := redirect.Open(s.VirtualOS)
		if err != nil {
			return fmt.Errorf("cannot redirect to %q: %w", redirect.Path, err)
		}
		defer fd.Close()

		virtOS = vos.WithIO(virtOS, vos.RedirectStdout(s.VirtualOS, fd))
	}

	if len(tokens) == 0 {
		return nil
	}

	return s.dispatch(ctx, virtOS, tokens)
}

// dispatch runs a built-in if one has the name, an external program
// otherwise.
func (s *Shell) dispatch(ctx context.Context, virtOS vos.VOS, argv []string) error {
	if entry, ok := s.builtins[argv[0]]; ok {
		return entry.Builtin.Main(s, virtOS, argv)
	}

	s.Log.Printf("running external command %q", argv)
	return s.Invoker.Run(ctx, virtOS, argv)
}
