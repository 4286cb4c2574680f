package core

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/mjanumpa/magicsh/core/config"
	"github.com/mjanumpa/magicsh/core/shellerr"
	"github.com/mjanumpa/magicsh/core/state"
	"github.com/mjanumpa/magicsh/core/vos"
	"github.com/mjanumpa/magicsh/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type readStep struct {
	line string
	err  error
}

// scriptedReader plays back lines then reports io.EOF.
type scriptedReader struct {
	steps   []readStep
	prompts []string
	resets  int
}

var _ LineReader = (*scriptedReader)(nil)

func newScriptedReader(lines ...string) *scriptedReader {
	r := &scriptedReader{}
	for _, line := range lines {
		r.steps = append(r.steps, readStep{line: line})
	}
	return r
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.steps) == 0 {
		return "", io.EOF
	}

	step := r.steps[0]
	r.steps = r.steps[1:]
	return step.line, step.err
}

func (r *scriptedReader) ResetHistory() {
	r.resets++
}

// recordingInvoker stands in for external programs.
type recordingInvoker struct {
	calls [][]string
	err   error
}

func (r *recordingInvoker) Run(ctx context.Context, virtOS vos.VOS, argv []string) error {
	r.calls = append(r.calls, argv)
	return r.err
}

type testShell struct {
	*Shell
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	reader  *scriptedReader
	invoker *recordingInvoker
	virtOS  *vos.VirtualOS
}

const testStatePath = "/shell_config.json"

func newTestShellOn(t *testing.T, virtOS *vos.VirtualOS, lines ...string) *testShell {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	virtOS.VIO = vos.NewStreams(strings.NewReader(""), out, errOut)

	cfg := config.Default()
	cfg.Welcome = ""

	reader := newScriptedReader(lines...)
	s := NewShell(virtOS, reader, cfg, state.NewStore(virtOS, testStatePath), nil)
	invoker := &recordingInvoker{}
	s.Invoker = invoker

	return &testShell{
		Shell:   s,
		out:     out,
		errOut:  errOut,
		reader:  reader,
		invoker: invoker,
		virtOS:  virtOS,
	}
}

func newTestShell(t *testing.T, lines ...string) *testShell {
	t.Helper()
	return newTestShellOn(t, vostest.NewDeterministicOS(), lines...)
}

// run executes each line and returns what was printed.
func (ts *testShell) run(lines ...string) string {
	ts.out.Reset()
	for _, line := range lines {
		ts.RunCommand(context.Background(), line)
	}
	return ts.out.String()
}

func TestShell_todo(t *testing.T) {
	ts := newTestShell(t)

	assert.Equal(t, "Item added.\n", ts.run(`todo add "buy milk"`))
	assert.Equal(t, "1. buy milk\n", ts.run("todo"))
	assert.Equal(t, "Removed: buy milk\n", ts.run("todo remove 1"))
	assert.Equal(t, "No todo items.\n", ts.run("todo"))
}

func TestShell_echoCollapsesWhitespace(t *testing.T) {
	ts := newTestShell(t)

	assert.Equal(t, "a b\n", ts.run("echo   a   b"))
	assert.Equal(t, "a b\n", ts.run(`echo "a   b"`))
}

func TestShell_catMissing(t *testing.T) {
	ts := newTestShell(t)

	assert.Equal(t, "File not found: missing.txt\n", ts.run("cat missing.txt"))
	assert.Len(t, ts.History(), 1)

	ts.run("echo ok")
	assert.Equal(t, []string{"cat missing.txt", "echo ok"}, ts.History())
}

func TestShell_sessionRoundTrip(t *testing.T) {
	virtOS := vostest.NewDeterministicOS()

	first := newTestShellOn(t, virtOS,
		"alias ll ls -la",
		"todo add first item",
		"todo add second item",
		"quit",
		"echo never read",
	)
	require.Nil(t, first.Run(context.Background()))
	assert.True(t, first.Terminated())
	assert.Contains(t, first.out.String(), FarewellMessage+"\n")
	assert.NotContains(t, first.out.String(), "never read")

	second := newTestShellOn(t, virtOS)
	assert.Equal(t, "ll -> ls -la\n", second.run("alias ll"))
	assert.Equal(t, "1. first item\n2. second item\n", second.run("todo"))
	assert.Equal(t, &state.SessionConfig{
		Aliases:   map[string]string{"ll": "ls -la"},
		TodoItems: []string{"first item", "second item"},
	}, second.Session())

	listing := second.run("alias")
	assert.Contains(t, listing, "ll")
	assert.Contains(t, listing, "ls -la")
}

func TestShell_calc(t *testing.T) {
	ts := newTestShell(t)

	assert.Equal(t, "Result: 8\n", ts.run("calc 2 + 2 * 3"))
	assert.True(t, strings.HasPrefix(ts.run("calc foo("), "Error in calculation: "))
	assert.Empty(t, ts.invoker.calls, "nothing was executed")
}

func TestShell_unrecognizedCommand(t *testing.T) {
	ts := newTestShell(t)
	ts.Invoker = &ExecInvoker{}

	assert.Equal(t,
		"'zzznotacommand' is not recognized as an internal or external command\n",
		ts.run("zzznotacommand"))
	assert.Equal(t, "still here\n", ts.run("echo still here"))
	assert.False(t, ts.Terminated())
}

func TestShell_aliasSingleStep(t *testing.T) {
	ts := newTestShell(t)
	ts.run("alias a b", "alias b a")

	ts.run("a x")
	assert.Equal(t, [][]string{{"b", "x"}}, ts.invoker.calls)

	ts.run("b y")
	assert.Equal(t, [][]string{{"b", "x"}, {"a", "y"}}, ts.invoker.calls)
}

func TestShell_aliasToBuiltin(t *testing.T) {
	ts := newTestShell(t)

	assert.Equal(t, "Alias set: greet -> echo hello\n", ts.run("alias greet echo hello"))
	assert.Equal(t, "hello world\n", ts.run("greet world"))
}

func TestShell_externalCommand(t *testing.T) {
	ts := newTestShell(t)

	assert.Equal(t, "", ts.run("ls-like -l 'two words'"))
	assert.Equal(t, [][]string{{"ls-like", "-l", "two words"}}, ts.invoker.calls)
}

func TestShell_parseError(t *testing.T) {
	ts := newTestShell(t)

	assert.True(t, strings.HasPrefix(ts.run(`echo "unterminated`), "Parse error: "))
	assert.Len(t, ts.History(), 1, "malformed lines are still recorded")
}

func TestShell_panicRecovered(t *testing.T) {
	ts := newTestShell(t)
	ts.Invoker = panicInvoker{}

	assert.Equal(t, "An error occurred: boom\n", ts.run("explode"))
	assert.Equal(t, "after\n", ts.run("echo after"))
}

type panicInvoker struct{}

func (panicInvoker) Run(context.Context, vos.VOS, []string) error {
	panic("boom")
}

func TestShell_emptyLineRecorded(t *testing.T) {
	ts := newTestShell(t)

	assert.Equal(t, "", ts.run("", "   "))
	assert.Equal(t, []string{"", ""}, ts.History())
	assert.Empty(t, ts.invoker.calls)
}

func TestShell_historyLimit(t *testing.T) {
	ts := newTestShell(t)
	ts.Config.HistoryLimit = 2

	ts.run("echo 1", "echo 2", "echo 3")
	assert.Equal(t, []string{"echo 2", "echo 3"}, ts.History())
}

func TestShell_redirect(t *testing.T) {
	ts := newTestShell(t)

	assert.Equal(t, "", ts.run("echo hi > out.txt"))
	assert.Equal(t, "", ts.run("echo   again >> out.txt"))

	contents, err := afero.ReadFile(ts.virtOS, "/out.txt")
	require.Nil(t, err)
	assert.Equal(t, "hi\nagain\n", string(contents))

	ts.run("echo replaced > out.txt")
	contents, err = afero.ReadFile(ts.virtOS, "/out.txt")
	require.Nil(t, err)
	assert.Equal(t, "replaced\n", string(contents))
}

func TestShell_redirectErrorsStayOnTerminal(t *testing.T) {
	ts := newTestShell(t)

	assert.Equal(t, "File not found: nope.txt\n", ts.run("cat nope.txt > out.txt"))

	contents, err := afero.ReadFile(ts.virtOS, "/out.txt")
	require.Nil(t, err)
	assert.Empty(t, contents)
}

func TestShell_redirectWithoutCommand(t *testing.T) {
	ts := newTestShell(t)

	assert.Equal(t, "", ts.run("> empty.txt"))
	exists, err := afero.Exists(ts.virtOS, "/empty.txt")
	assert.Nil(t, err)
	assert.True(t, exists)

	assert.True(t, strings.HasPrefix(ts.run("echo x >"), "Parse error: "))
}

func TestShell_prompt(t *testing.T) {
	ts := newTestShell(t)
	require.Nil(t, ts.virtOS.Mkdir("/home", 0755))

	assert.Equal(t, "/ --> ", ts.Prompt())
	ts.run("cd /home")
	assert.Equal(t, "/home --> ", ts.Prompt())
}

func TestShell_Run_interrupt(t *testing.T) {
	ts := newTestShell(t)
	ts.reader.steps = []readStep{
		{err: readline.ErrInterrupt},
		{line: "echo after interrupt"},
	}

	require.Nil(t, ts.Run(context.Background()))

	out := ts.out.String()
	assert.Contains(t, out, InterruptHint+"\n")
	assert.Contains(t, out, "after interrupt\n")
	assert.Equal(t, []string{"echo after interrupt", "quit"}, ts.History())
}

func TestShell_Run_eofSaves(t *testing.T) {
	ts := newTestShell(t, "todo add persisted")

	require.Nil(t, ts.Run(context.Background()))
	assert.True(t, ts.Terminated())
	assert.Contains(t, ts.out.String(), FarewellMessage)

	saved, err := state.NewStore(ts.virtOS, testStatePath).Load()
	require.Nil(t, err)
	assert.Equal(t, []string{"persisted"}, saved.TodoItems)
}

func TestShell_Run_prompts(t *testing.T) {
	ts := newTestShell(t, "echo one")

	require.Nil(t, ts.Run(context.Background()))
	assert.Equal(t, []string{"/ --> ", "/ --> "}, ts.reader.prompts)
}

func TestShell_Run_welcome(t *testing.T) {
	ts := newTestShell(t)
	ts.Config.Welcome = "Hello!\n"

	require.Nil(t, ts.Run(context.Background()))
	assert.True(t, strings.HasPrefix(ts.out.String(), "Hello!\n"))
}

func TestShell_Run_canceled(t *testing.T) {
	ts := newTestShell(t, "echo one")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ts.Run(ctx), context.Canceled)
}

func TestShell_quitSaveFailure(t *testing.T) {
	memFs := afero.NewMemMapFs()
	virtOS := vos.NewVirtualOS(afero.NewReadOnlyFs(memFs), vos.NewMapEnv(), vos.NewNullIO(), vostest.NewDeterministicOS().Now)
	ts := newTestShellOn(t, virtOS)

	out := ts.run("quit")
	assert.True(t, strings.HasPrefix(out, "An error occurred: session not saved"), out)
	assert.NotContains(t, out, FarewellMessage)
	assert.False(t, ts.Terminated())

	// Closed input still ends the session.
	require.Nil(t, ts.Run(context.Background()))
	assert.True(t, ts.Terminated())
}

func TestNewShell_corruptState(t *testing.T) {
	virtOS := vostest.NewDeterministicOS()
	require.Nil(t, afero.WriteFile(virtOS, testStatePath, []byte("{{{"), 0644))

	ts := newTestShellOn(t, virtOS)
	assert.Contains(t, ts.errOut.String(), "starting an empty session")
	assert.Equal(t, "No aliases defined.\n", ts.run("alias"))
	assert.Equal(t, "No todo items.\n", ts.run("todo"))
}

func TestShell_errorMessages(t *testing.T) {
	ts := newTestShell(t)
	ts.invoker.err = &shellerr.LaunchError{Name: "prog"}

	assert.Equal(t, "'prog' is not recognized as an internal or external command\n", ts.run("prog"))
}
