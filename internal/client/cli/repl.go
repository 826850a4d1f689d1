package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	OpenEntry(ctx context.Context, date string) error
	List(ctx context.Context, limit string) error
	Search(ctx context.Context, query string) error
	PartnerEntries(ctx context.Context, limit string) error
	DeleteEntry(ctx context.Context, date string) error
	ShowAppearance(ctx context.Context) error
	ListThemes(ctx context.Context) error
	SetTheme(ctx context.Context, key string) error
	SetColor(ctx context.Context, target, value string) error
	SetFont(ctx context.Context, target, value string) error
	SetBackground(ctx context.Context, kind, value string) error
	ResetAppearance(ctx context.Context) error
	ExportCSS(ctx context.Context, name string) error
	CreateInvite(ctx context.Context) error
	AcceptInvite(ctx context.Context, code string) error
	Unpair(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Daybook CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help              — show available commands
//	  - register          — create an account
//	  - login             — authenticate
//	  - exit | quit       — leave the program
//
//	Logged in:
//	  - open <date>       — open the entry for a day (YYYY-MM-DD)
//	  - today             — open today's entry
//	  - list [n]          — list recent entries
//	  - search <text>     — full-text search over entries
//	  - partner [n]       — list the paired partner's entries
//	  - delete <date>     — delete the entry for a day
//	  - look              — show current appearance settings
//	  - themes            — list available themes
//	  - theme <key>       — switch theme
//	  - color <t> <v>     — set primary/accent/background color
//	  - font <t> <v>      — set font family/size
//	  - bg <kind> <v>     — set background (solid/gradient/pattern/image/blur)
//	  - resetlook         — reset appearance to defaults
//	  - exportcss [file]  — export the current style as a CSS file
//	  - invite            — create a partner pairing code
//	  - accept <code>     — accept a pairing code
//	  - unpair            — remove the partner link
//	  - logout            — log out
//	  - exit | quit       — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("daybook %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Entries: open <date>, today, (l)ist [n], search <text>, partner [n], delete <date>")
				printlnFn("Appearance: look, themes, theme <key>, color <target> <value>, font <target> <value>, bg <kind> <value>, resetlook, exportcss [file]")
				printlnFn("Pairing: invite, accept <code>, unpair")
				printlnFn("Session: logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <YYYY-MM-DD>")
				continue
			}
			_ = a.OpenEntry(ctx, args[0])

		case "today":
			_ = a.OpenEntry(ctx, "")

		case "l", "list":
			limit := ""
			if len(args) > 0 {
				limit = args[0]
			}
			_ = a.List(ctx, limit)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <text>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "partner":
			limit := ""
			if len(args) > 0 {
				limit = args[0]
			}
			_ = a.PartnerEntries(ctx, limit)

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <YYYY-MM-DD>")
				continue
			}
			_ = a.DeleteEntry(ctx, args[0])

		case "look":
			_ = a.ShowAppearance(ctx)

		case "themes":
			_ = a.ListThemes(ctx)

		case "theme":
			if len(args) == 0 {
				printlnFn("Usage: theme <key>")
				continue
			}
			_ = a.SetTheme(ctx, args[0])

		case "color":
			if len(args) < 2 {
				printlnFn("Usage: color <primary|accent|background> <value>")
				continue
			}
			_ = a.SetColor(ctx, args[0], args[1])

		case "font":
			if len(args) < 2 {
				printlnFn("Usage: font <family|size> <value>")
				continue
			}
			_ = a.SetFont(ctx, args[0], args[1])

		case "bg":
			if len(args) < 2 {
				printlnFn("Usage: bg <solid|gradient|pattern|image|blur> <value>")
				continue
			}
			_ = a.SetBackground(ctx, args[0], args[1])

		case "resetlook":
			_ = a.ResetAppearance(ctx)

		case "exportcss":
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			_ = a.ExportCSS(ctx, name)

		case "invite":
			_ = a.CreateInvite(ctx)

		case "accept":
			if len(args) == 0 {
				printlnFn("Usage: accept <code>")
				continue
			}
			_ = a.AcceptInvite(ctx, args[0])

		case "unpair":
			_ = a.Unpair(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
