package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/output"
	"taskdeck/internal/service"
)

func init() {
	Register(&SuggestCmd{})
	Register(&WatchCmd{})
}

// SuggestCmd asks the API to break a task description into subtasks.
type SuggestCmd struct{}

func (c *SuggestCmd) Name() string      { return "suggest" }
func (c *SuggestCmd) Aliases() []string { return nil }
func (c *SuggestCmd) Synopsis() string  { return "Suggest subtasks for a task" }
func (c *SuggestCmd) Usage() string     { return "taskdeck suggest [common flags] <description...>" }
func (c *SuggestCmd) NeedsAuth() bool   { return false }

func (c *SuggestCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SuggestCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}

	suggestions, err := svc.SuggestSubtasks(ctx, description)
	if err != nil {
		return report(errOut, "failed to get suggestions", err)
	}

	if len(suggestions) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no suggestions")
		}
		return exitcode.Success
	}
	for i, s := range suggestions {
		output.FormatSuggestion(out, i+1, s)
	}
	return exitcode.Success
}

// WatchCmd prints tasks broadcast by the API until interrupted.
type WatchCmd struct{}

func (c *WatchCmd) Name() string      { return "watch" }
func (c *WatchCmd) Aliases() []string { return nil }
func (c *WatchCmd) Synopsis() string  { return "Print tasks as they are created" }
func (c *WatchCmd) Usage() string     { return "taskdeck watch [common flags]" }
func (c *WatchCmd) NeedsAuth() bool   { return false }

func (c *WatchCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WatchCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	err := svc.WatchTasks(ctx, func(task service.Task) {
		output.FormatFeedTask(out, task)
	})
	if err != nil {
		return report(errOut, "task feed closed", err)
	}
	return exitcode.Success
}
