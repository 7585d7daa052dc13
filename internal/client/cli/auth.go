package cli

import (
	"context"
	"fmt"
	"time"
)

// Logout ends the session. Later requests carry no Authorization header.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed")
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Status prints the session line.
func (a *App) Status(context.Context) error {
	fmt.Fprintln(a.out, a.authService.Status(time.Now()))
	return nil
}
