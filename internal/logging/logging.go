// Package logging builds the zap loggers used by the CLI and the web client.
package logging

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taskdeck/internal/reqid"
)

// New returns a JSON logger writing to w at info level, or a console logger
// at debug level when debug is set.
func New(debug bool, w io.Writer) *zap.Logger {
	return NewWithLevel(debug, w, zapcore.InfoLevel)
}

// NewWithLevel is like New but lets the caller pick the non-debug level.
// The CLI uses warn so command output is not interleaved with info lines.
func NewWithLevel(debug bool, w io.Writer, level zapcore.Level) *zap.Logger {
	var enc zapcore.Encoder
	if debug {
		level = zapcore.DebugLevel
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core)
}

// WithRequest returns logger annotated with the request id carried by ctx.
func WithRequest(ctx context.Context, logger *zap.Logger) *zap.Logger {
	if id := reqid.FromContext(ctx); id != "" {
		return logger.With(zap.String("request_id", id))
	}
	return logger
}
