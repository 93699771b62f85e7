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
	isSignedIn() bool
	Login(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
	Update(ctx context.Context) error
	Passwd(ctx context.Context) error
	Delete(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the account console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Command prompts share the same reader so
// no input is lost between the loop and the commands. The loop exits on EOF
// or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Signed out:
//	  - help           : show available commands
//	  - login          : sign in with an auth token
//	  - exit | quit    : leave the program
//
//	Signed in:
//	  - help           : show available commands
//	  - whoami         : show the current profile
//	  - refresh        : re-fetch the profile from the server
//	  - update         : edit full name, short name and email
//	  - passwd         : change the password
//	  - delete         : delete the account and sign out
//	  - logout         : forget the token and the profile
//	  - exit | quit    : leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sat %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !a.isSignedIn() && signedInOnly(cmd) {
			printlnFn("Not signed in, use 'login' first")
			continue
		}

		switch cmd {
		case "help":
			if a.isSignedIn() {
				printlnFn("Available commands: whoami, refresh, update, passwd, delete, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "update":
			_ = a.Update(ctx)

		case "passwd":
			_ = a.Passwd(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func signedInOnly(cmd string) bool {
	switch cmd {
	case "whoami", "refresh", "update", "passwd", "delete", "logout":
		return true
	}
	return false
}
