package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printfFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printfFn  = fmt.Printf
)

// execIface is the minimal command surface the REPL needs. App satisfies
// it; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn() bool
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	Flights(ctx context.Context) error
	AddFlight(ctx context.Context) error
	Export(ctx context.Context) error
	Certs(ctx context.Context) error
	AddCert(ctx context.Context) error
	DelCert(ctx context.Context) error
	Avail(ctx context.Context) error
	AddAvail(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL reads a line from the scanner, takes the first token as the
// command and dispatches to a. Unknown commands are reported to the user.
// The loop exits on scanner EOF or on "exit"/"quit".
//
// Handlers report their own errors; the loop ignores their return values
// and stays up.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("pilotdeck (type 'help' for commands)")

	for {
		status := statusFn()
		if status != "" {
			status = "(" + status + ") "
		}
		printfFn("pd %s> ", status)
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isSignedIn() {
				printlnFn("Available commands: flights, addflight, export, certs, addcert, delcert, avail, addavail, stats, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup":
			_ = a.SignUp(ctx)

		case "login":
			_ = a.SignIn(ctx)

		case "logout":
			_ = a.SignOut(ctx)

		case "flights":
			_ = a.Flights(ctx)

		case "addflight":
			_ = a.AddFlight(ctx)

		case "export":
			_ = a.Export(ctx)

		case "certs":
			_ = a.Certs(ctx)

		case "addcert":
			_ = a.AddCert(ctx)

		case "delcert":
			_ = a.DelCert(ctx)

		case "avail":
			_ = a.Avail(ctx)

		case "addavail":
			_ = a.AddAvail(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}
