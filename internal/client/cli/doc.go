// Package cli provides the interactive line-oriented payforms client.
//
// Each screen of the form catalog is a REPL command. Running a command
// prompts for every field of the screen (secrets without echo), submits the
// form once and prints the rendered result or the screen's failure message.
// After a successful submission the command follows the screen's Next link,
// so login lands on the dashboard and register continues with login.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or the input ends.
package cli
