package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/payforms/internal/client/config"
	"github.com/dmitrijs2005/payforms/internal/client/forms"
	"github.com/dmitrijs2005/payforms/internal/client/services"
	"github.com/dmitrijs2005/payforms/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	sender      forms.Sender
	specs       []forms.Spec
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp wires the REPL. Login results are stored through auth.
func NewApp(c *config.Config, auth services.AuthService, sender forms.Sender, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:      c,
		authService: auth,
		sender:      sender,
		specs:       forms.Catalog(auth),
		log:         log,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Run blocks in the REPL until exit or end of input.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "Welcome to payforms, server %s (type 'help' for commands)\n", a.config.ServerBaseURL)
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.authService.LoggedIn()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "guest"
	}
	return a.authService.Status(time.Now())
}
