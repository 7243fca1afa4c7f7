package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Ping(ctx context.Context) error {
	f.calls = append(f.calls, "ping")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"register",
		"login",
		"help",
		"whoami",
		"ping",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"register", "login", "whoami", "ping"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("unexpected calls: %+v", exec.calls)
	}
	for i, c := range wantOrder {
		if exec.calls[i] != c {
			t.Fatalf("commands order mismatch: got %v, want %v", exec.calls, wantOrder)
		}
	}
}

func TestRunREPL_EmptyLinesAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
