package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	loggedIn bool
	calls    []string
	keywords []string
	sortArgs [][]string
}

func (s *stubExec) record(name string) error { s.calls = append(s.calls, name); return nil }

func (s *stubExec) isLoggedIn() bool                        { return s.loggedIn }
func (s *stubExec) Login(ctx context.Context) error         { return s.record("login") }
func (s *stubExec) Register(ctx context.Context) error      { return s.record("register") }
func (s *stubExec) ResetPassword(ctx context.Context) error { return s.record("resetpw") }
func (s *stubExec) ChangePassword(ctx context.Context) error {
	return s.record("changepw")
}
func (s *stubExec) Logout(ctx context.Context) error { return s.record("logout") }
func (s *stubExec) List(ctx context.Context) error   { return s.record("list") }
func (s *stubExec) Add(ctx context.Context) error    { return s.record("add") }
func (s *stubExec) Edit(ctx context.Context) error   { return s.record("edit") }
func (s *stubExec) Delete(ctx context.Context) error { return s.record("del") }
func (s *stubExec) Search(ctx context.Context, keyword string) error {
	s.keywords = append(s.keywords, keyword)
	return s.record("search")
}
func (s *stubExec) Sort(ctx context.Context, args []string) error {
	s.sortArgs = append(s.sortArgs, args)
	return s.record("sort")
}
func (s *stubExec) ImportSample(ctx context.Context) error { return s.record("import") }
func (s *stubExec) Backup(ctx context.Context) error       { return s.record("backup") }

func runScript(t *testing.T, stub *stubExec, script string) []string {
	t.Helper()

	var lines []string
	old := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	defer func() { printlnFn = old }()

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, func() string { return "test" }, scanner)
	return lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stub := &stubExec{loggedIn: true}

	runScript(t, stub, "list\nadd\nsearch rose lane\nsort name desc\nimport\nbackup\nlogout\nexit\n")

	assert.Equal(t, []string{"list", "add", "search", "sort", "import", "backup", "logout"}, stub.calls)
	assert.Equal(t, []string{"rose lane"}, stub.keywords)
	assert.Equal(t, [][]string{{"name", "desc"}}, stub.sortArgs)
}

func TestRunREPL_ExitsOnQuitAndEOF(t *testing.T) {
	stub := &stubExec{}
	runScript(t, stub, "quit\nlogin\n")
	assert.Empty(t, stub.calls, "nothing after quit should run")

	stub = &stubExec{}
	runScript(t, stub, "login")
	assert.Equal(t, []string{"login"}, stub.calls)
}

func TestRunREPL_UnknownAndEmptyLines(t *testing.T) {
	stub := &stubExec{}
	lines := runScript(t, stub, "\n\nfly\nexit\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, lines, "Unknown command: fly")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	anon := runScript(t, &stubExec{}, "help\nexit\n")
	assert.Contains(t, strings.Join(anon, "\n"), "login, register, resetpw")

	authed := runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, strings.Join(authed, "\n"), "changepw, logout")
}
