package commands

import (
	"errors"
	"fmt"
	"io"

	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

// report prints a failed service call and returns its exit code.
func report(errOut io.Writer, what string, err error) int {
	if errors.Is(err, session.ErrNoSession) {
		fmt.Fprintln(errOut, "error: not logged in (run: taskdeck login)")
		return exitcode.AuthError
	}

	switch service.KindOf(err) {
	case service.KindUnauthorized:
		fmt.Fprintf(errOut, "error: %s: %v\n", what, err)
		return exitcode.AuthError
	case service.KindNotFound, service.KindInvalid:
		fmt.Fprintf(errOut, "error: %s: %v\n", what, err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %s: %v\n", what, err)
		return exitcode.BackendError
	}
}
