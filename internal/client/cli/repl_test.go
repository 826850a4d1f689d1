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
	arg   string
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
func (f *fakeExec) OpenEntry(ctx context.Context, date string) error {
	f.calls = append(f.calls, "open")
	f.arg = date
	return nil
}
func (f *fakeExec) List(ctx context.Context, limit string) error {
	f.calls = append(f.calls, "list")
	f.arg = limit
	return nil
}
func (f *fakeExec) Search(ctx context.Context, query string) error {
	f.calls = append(f.calls, "search")
	f.arg = query
	return nil
}
func (f *fakeExec) PartnerEntries(ctx context.Context, limit string) error {
	f.calls = append(f.calls, "partner")
	return nil
}
func (f *fakeExec) DeleteEntry(ctx context.Context, date string) error {
	f.calls = append(f.calls, "delete")
	f.arg = date
	return nil
}
func (f *fakeExec) ShowAppearance(ctx context.Context) error {
	f.calls = append(f.calls, "look")
	return nil
}
func (f *fakeExec) ListThemes(ctx context.Context) error {
	f.calls = append(f.calls, "themes")
	return nil
}
func (f *fakeExec) SetTheme(ctx context.Context, key string) error {
	f.calls = append(f.calls, "theme")
	f.arg = key
	return nil
}
func (f *fakeExec) SetColor(ctx context.Context, target, value string) error {
	f.calls = append(f.calls, "color")
	f.arg = target + "=" + value
	return nil
}
func (f *fakeExec) SetFont(ctx context.Context, target, value string) error {
	f.calls = append(f.calls, "font")
	f.arg = target + "=" + value
	return nil
}
func (f *fakeExec) SetBackground(ctx context.Context, kind, value string) error {
	f.calls = append(f.calls, "bg")
	f.arg = kind + "=" + value
	return nil
}
func (f *fakeExec) ResetAppearance(ctx context.Context) error {
	f.calls = append(f.calls, "resetlook")
	return nil
}
func (f *fakeExec) ExportCSS(ctx context.Context, name string) error {
	f.calls = append(f.calls, "exportcss")
	f.arg = name
	return nil
}
func (f *fakeExec) CreateInvite(ctx context.Context) error {
	f.calls = append(f.calls, "invite")
	return nil
}
func (f *fakeExec) AcceptInvite(ctx context.Context, code string) error {
	f.calls = append(f.calls, "accept")
	f.arg = code
	return nil
}
func (f *fakeExec) Unpair(ctx context.Context) error {
	f.calls = append(f.calls, "unpair")
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
		"open 2026-08-28",
		"list 5",
		"search rainy morning",
		"theme forest",
		"invite",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "open", "list", "search", "theme", "invite"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_MultiWordSearchQuery(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("search long rainy walk\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if exec.arg != "long rainy walk" {
		t.Fatalf("query not joined: %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("open\nsearch\ndelete\ntheme\ncolor primary\naccept\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
