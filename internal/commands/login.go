package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
)

func init() {
	Register(&LoginCmd{})
	Register(&SignupCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	username string
	password string
}

// SetCredentials sets the credentials (for testing).
func (c *LoginCmd) SetCredentials(username, password string) {
	c.username, c.password = username, password
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Log in to the task API" }
func (c *LoginCmd) Usage() string {
	return "taskdeck login [common flags] --username <u> --password <p>"
}
func (c *LoginCmd) NeedsAuth() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.username, "username", "", "")
	fs.StringVar(&c.username, "u", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

// Run submits the credentials once, as given. The API decides whether empty
// values are acceptable.
func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}

	sess, err := svc.Login(ctx, c.username, c.password)
	if err != nil {
		return report(errOut, "login failed", err)
	}

	if !cfg.Quiet {
		if sess.Username != "" {
			fmt.Fprintf(out, "ok (logged in as %s)\n", sess.Username)
		} else {
			fmt.Fprintln(out, "ok")
		}
	}
	return exitcode.Success
}

// SignupCmd implements the signup command. It does not log in.
type SignupCmd struct {
	username string
	password string
}

// SetCredentials sets the credentials (for testing).
func (c *SignupCmd) SetCredentials(username, password string) {
	c.username, c.password = username, password
}

func (c *SignupCmd) Name() string      { return "signup" }
func (c *SignupCmd) Aliases() []string { return []string{"register"} }
func (c *SignupCmd) Synopsis() string  { return "Create an account" }
func (c *SignupCmd) Usage() string {
	return "taskdeck signup [common flags] --username <u> --password <p>"
}
func (c *SignupCmd) NeedsAuth() bool { return false }

func (c *SignupCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.username, "username", "", "")
	fs.StringVar(&c.username, "u", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *SignupCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := svc.Signup(ctx, c.username, c.password); err != nil {
		return report(errOut, "signup failed", err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok (run: taskdeck login)")
	}
	return exitcode.Success
}
