package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Record(ctx context.Context) error
	StopRecording(ctx context.Context) error
	List(ctx context.Context, query string) error
	Play(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	Share(ctx context.Context, arg string) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are
// reported back. The loop exits on scanner EOF or on "exit"/"quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own notices. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vn> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: record, stop, (l)ist [query], play N, delete N, share N, profile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "record", "rec":
			_ = a.Record(ctx)

		case "stop":
			_ = a.StopRecording(ctx)

		case "l", "list":
			_ = a.List(ctx, arg)

		case "play":
			_ = a.Play(ctx, arg)

		case "delete":
			_ = a.Delete(ctx, arg)

		case "share":
			_ = a.Share(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
