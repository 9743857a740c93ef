package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taskdeck/internal/config"
	"taskdeck/internal/exitcode"
	"taskdeck/internal/logging"
	"taskdeck/internal/service"
	"taskdeck/internal/web"
)

func init() {
	Register(&ServeCmd{})
}

// ServeCmd runs the web client.
type ServeCmd struct {
	addr string
}

func (c *ServeCmd) Name() string      { return "serve" }
func (c *ServeCmd) Aliases() []string { return nil }
func (c *ServeCmd) Synopsis() string  { return "Run the web client" }
func (c *ServeCmd) Usage() string     { return "taskdeck serve [common flags] [--addr <addr>]" }
func (c *ServeCmd) NeedsAuth() bool   { return false }

func (c *ServeCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.addr, "addr", "", "")
}

// Run serves until ctx is cancelled. Request logs go to errOut at info level
// unless --quiet is set.
func (c *ServeCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	addr := c.addr
	if addr == "" {
		addr = cfg.ListenAddr
	}
	if addr == "" {
		addr = config.DefaultListenAddr
	}

	logger := logging.New(cfg.Debug, errOut)
	if cfg.Quiet && !cfg.Debug {
		logger = logging.NewWithLevel(false, errOut, zapcore.WarnLevel)
	}
	defer logger.Sync()

	logger = logger.With(zap.String("api_url", cfg.APIURL))
	logger.Debug("starting web client", zap.Bool("stored_session", cfg.HasSession()))

	server, err := web.NewServer(svc, logger)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}

	if err := server.ListenAndServe(ctx, addr); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
