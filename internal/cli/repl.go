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
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Search(ctx context.Context, keyword string) error
	Sort(ctx context.Context, args []string) error
	ImportSample(ctx context.Context) error
	Backup(ctx context.Context) error
}

// runREPL starts a read–eval–print loop over the engine operations.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while anonymous: help, login, register, resetpw, exit.
// Commands while logged in: help, list, add, edit, del, search, sort,
// import, backup, changepw, logout, exit.
//
// Errors returned by command handlers are ignored here; handlers print
// their own outcome messages. This keeps the loop resilient and focused on
// I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rk> %s > ", statusFn()))
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
				printlnFn("Available commands: list, add, edit, del, search <keyword>, sort <column> [desc], import, backup, changepw, logout, exit")
			} else {
				printlnFn("Available commands: login, register, resetpw, exit")
			}
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "resetpw":
			_ = a.ResetPassword(ctx)
		case "changepw":
			_ = a.ChangePassword(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "list", "l":
			_ = a.List(ctx)
		case "add":
			_ = a.Add(ctx)
		case "edit":
			_ = a.Edit(ctx)
		case "del":
			_ = a.Delete(ctx)
		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))
		case "sort":
			_ = a.Sort(ctx, args)
		case "import":
			_ = a.ImportSample(ctx)
		case "backup":
			_ = a.Backup(ctx)
		case "exit", "quit":
			return
		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
