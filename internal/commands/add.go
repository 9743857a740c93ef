package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/service"
)

func init() {
	Register(&AddCmd{})
	Register(&StatusCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "taskdeck add [common flags] <title...>" }
func (c *AddCmd) NeedsAuth() bool   { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

// Run creates one task from the joined arguments with an empty description.
// Like the web form, the title is not validated.
func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.Join(args, " ")

	task, err := svc.CreateTask(ctx, service.NewTask{Title: title, Description: ""})
	if err != nil {
		return report(errOut, "failed to create task", err)
	}

	if !cfg.Quiet {
		if task.ID != "" {
			fmt.Fprintf(out, "ok (%s)\n", task.ID)
		} else {
			fmt.Fprintln(out, "ok")
		}
	}
	return exitcode.Success
}

// StatusCmd implements the status command.
type StatusCmd struct{}

func (c *StatusCmd) Name() string      { return "status" }
func (c *StatusCmd) Aliases() []string { return nil }
func (c *StatusCmd) Synopsis() string  { return "Set the status of a task" }
func (c *StatusCmd) Usage() string     { return "taskdeck status [common flags] <id> <status>" }
func (c *StatusCmd) NeedsAuth() bool   { return false }

func (c *StatusCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatusCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: usage: taskdeck status <id> <status>")
		return exitcode.UserError
	}
	id, status := service.TaskID(args[0]), args[1]

	if err := svc.UpdateTaskStatus(ctx, id, status); err != nil {
		if service.IsKind(err, service.KindNotFound) {
			fmt.Fprintf(errOut, "error: task not found: %s\n", id)
			return exitcode.UserError
		}
		return report(errOut, "failed to update task", err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
