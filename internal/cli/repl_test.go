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
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Register(ctx context.Context) error { s.calls = append(s.calls, "register"); return nil }
func (s *stubExec) Login(ctx context.Context) error    { s.calls = append(s.calls, "login"); return nil }
func (s *stubExec) Logout(ctx context.Context) error   { s.calls = append(s.calls, "logout"); return nil }
func (s *stubExec) Profile(ctx context.Context) error  { s.calls = append(s.calls, "profile"); return nil }
func (s *stubExec) Record(ctx context.Context) error   { s.calls = append(s.calls, "record"); return nil }
func (s *stubExec) StopRecording(ctx context.Context) error {
	s.calls = append(s.calls, "stop")
	return nil
}

func (s *stubExec) List(ctx context.Context, query string) error {
	s.calls = append(s.calls, "list:"+query)
	return nil
}

func (s *stubExec) Play(ctx context.Context, arg string) error {
	s.calls = append(s.calls, "play:"+arg)
	return nil
}

func (s *stubExec) Delete(ctx context.Context, arg string) error {
	s.calls = append(s.calls, "delete:"+arg)
	return nil
}

func (s *stubExec) Share(ctx context.Context, arg string) error {
	s.calls = append(s.calls, "share:"+arg)
	return nil
}

func run(t *testing.T, stub *stubExec, input string) []string {
	t.Helper()

	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				lines = append(lines, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), stub, func() string { return "test" }, scanner)
	return lines
}

func TestREPL_DispatchesCommands(t *testing.T) {
	stub := &stubExec{loggedIn: true}

	run(t, stub, "record\nstop\nlist standup notes\nplay 2\ndelete 1\nshare 3\nprofile\nlogout\nexit\n")

	assert.Equal(t, []string{
		"record", "stop", "list:standup notes", "play:2", "delete:1", "share:3", "profile", "logout",
	}, stub.calls)
}

func TestREPL_ShortAliases(t *testing.T) {
	stub := &stubExec{loggedIn: true}

	run(t, stub, "rec\nl\nquit\n")

	assert.Equal(t, []string{"record", "list:"}, stub.calls)
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	stub := &stubExec{}

	lines := run(t, stub, "frobnicate\nexit\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, lines, "Unknown command:")
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	out := run(t, &stubExec{loggedIn: false}, "help\nexit\n")
	joined := strings.Join(out, "\n")
	assert.Contains(t, joined, "register, login")

	out = run(t, &stubExec{loggedIn: true}, "help\nexit\n")
	joined = strings.Join(out, "\n")
	assert.Contains(t, joined, "record")
}

func TestREPL_EmptyLinesSkippedAndEOFExits(t *testing.T) {
	stub := &stubExec{loggedIn: true}

	run(t, stub, "\n\nrecord\n")

	assert.Equal(t, []string{"record"}, stub.calls)
}
