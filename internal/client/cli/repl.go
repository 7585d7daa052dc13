package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/payforms/internal/client/forms"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Open(ctx context.Context, screen string) error
	Status(ctx context.Context) error
	Logout(ctx context.Context) error
}

var screenCommands = map[string]string{
	"login":     forms.ScreenLogin,
	"register":  forms.ScreenRegister,
	"dashboard": forms.ScreenDashboard,
	"card":      forms.ScreenCard,
	"ach":       forms.ScreenACH,
	"wire":      forms.ScreenWire,
	"crypto":    forms.ScreenCrypto,
}

// runREPL reads one command per line from r and dispatches it to a.
//
//	help                 show available commands
//	register | login     authenticate
//	dashboard            load the dashboard (bearer token attached)
//	card | ach | wire    payment screens
//	crypto               fiat to crypto conversion
//	status               show the session
//	logout               end the session
//	exit | quit          leave the program
//
// Handler errors are printed and the loop continues. The loop exits on end
// of input, on exit/quit, or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for ctx.Err() == nil {
		fmt.Fprintf(w, "pf (%s)> ", statusFn())

		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: dashboard, card, ach, wire, crypto, status, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, card, ach, wire, crypto, status, exit")
			}

		case "status":
			cmdErr = a.Status(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			screen, ok := screenCommands[cmd]
			if !ok {
				fmt.Fprintln(w, "Unknown command:", cmd)
				continue
			}
			cmdErr = a.Open(ctx, screen)
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "error:", cmdErr)
		}
	}
}
