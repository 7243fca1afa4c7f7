package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
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
	Whoami(ctx context.Context) error
	Ping(ctx context.Context) error
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Root(ctx context.Context) {
	printlnFn("AuthKeeper admin CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// runREPL starts a simple read–eval–print loop for the admin CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help           — show available commands
//	register       — create an account
//	login          — authenticate and obtain an access token
//	whoami         — show the identity behind the current token
//	ping           — check server availability
//	exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ak> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, ping, exit")
			} else {
				printlnFn("Available commands: register, login, ping, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
