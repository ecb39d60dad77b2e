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
	Open(ctx context.Context, path string) error
}

// runREPL starts a simple read–eval–print loop for the Beauty Ease CLI.
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
//	Not signed in:
//	  - help           - show available commands
//	  - register       - create an account
//	  - login          - sign in
//	  - exit | quit    - leave the program
//
//	Signed in:
//	  - help           - show available commands
//	  - dashboard      - overview of your skin journey
//	  - scan           - run a skin scan
//	  - shop           - browse and filter products
//	  - makeup         - browse makeup tutorials
//	  - consult        - book a specialist consultation
//	  - profile        - view and edit your profile
//	  - logout         - sign out
//	  - exit | quit    - leave the program
//
// View commands are also reachable by path, e.g. "go /shop". Errors
// returned by command handlers are not propagated; handlers report their
// own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("be> %s > ", statusFn()))
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
				printlnFn("Available commands: dashboard, scan, shop, makeup, consult, profile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "dashboard", "home":
			_ = a.Open(ctx, "/dashboard")

		case "scan":
			_ = a.Open(ctx, "/scan")

		case "shop":
			_ = a.Open(ctx, "/shop")

		case "makeup":
			_ = a.Open(ctx, "/makeup")

		case "consult":
			_ = a.Open(ctx, "/consult")

		case "profile":
			_ = a.Open(ctx, "/profile")

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
