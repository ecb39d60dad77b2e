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
	paths []string
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
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Open(ctx context.Context, path string) error {
	f.calls = append(f.calls, "open")
	f.paths = append(f.paths, path)
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"scan",
		"shop",
		"makeup",
		"consult",
		"profile",
		"dashboard",
		"go /shop",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantPaths := []string{"/scan", "/shop", "/makeup", "/consult", "/profile", "/dashboard", "/shop"}
	if len(exec.paths) != len(wantPaths) {
		t.Fatalf("paths mismatch: got %v, want %v", exec.paths, wantPaths)
	}
	for i, p := range wantPaths {
		if exec.paths[i] != p {
			t.Fatalf("paths mismatch at %d: got %v, want %v", i, exec.paths, wantPaths)
		}
	}

	if exec.calls[0] != "login" {
		t.Fatalf("expected login first, got %v", exec.calls)
	}
	if exec.calls[len(exec.calls)-1] != "logout" {
		t.Fatalf("expected logout last, got %v", exec.calls)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("go\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
