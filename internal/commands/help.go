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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskdeck help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }
func (c *HelpCmd) Offline() bool     { return true }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskdeck                                           List all tasks
  taskdeck list [common flags]                       List all tasks
  taskdeck add [common flags] <title...>             Create a task
  taskdeck status [common flags] <id> <status>       Set the status of a task
  taskdeck suggest [common flags] <description...>   Suggest subtasks
  taskdeck watch [common flags]                      Print tasks as they are created
  taskdeck login [common flags] --username <u> --password <p>
  taskdeck signup [common flags] --username <u> --password <p>
  taskdeck logout [common flags]
  taskdeck whoami [common flags]
  taskdeck serve [common flags] [--addr <addr>]      Run the web client
  taskdeck help
  taskdeck version

Common flags:
  --config <dir>     Override config directory
  --api-url <url>    Task API base URL (default $API_URL or http://localhost:8080)
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr
`
