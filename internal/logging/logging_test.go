package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"taskdeck/internal/logging"
	"taskdeck/internal/reqid"
)

func TestNew_JSONWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(false, &buf)

	ctx := reqid.WithContext(context.Background(), "req-123")
	logging.WithRequest(ctx, logger).Info("hello")
	_ = logger.Sync()

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "hello" {
		t.Errorf("expected msg hello, got %v", entry["msg"])
	}
	if entry["request_id"] != "req-123" {
		t.Errorf("expected request_id req-123, got %v", entry["request_id"])
	}
}

func TestNewWithLevel_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithLevel(false, &buf, zapcore.WarnLevel)

	logger.Info("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn line should be written")
	}
}

func TestNew_DebugEnablesDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithLevel(true, &buf, zapcore.WarnLevel)

	logger.Debug("verbose")
	_ = logger.Sync()

	if !strings.Contains(buf.String(), "verbose") {
		t.Errorf("expected debug line, got %q", buf.String())
	}
}

func TestWithRequest_NoID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(false, &buf)

	logging.WithRequest(context.Background(), logger).Info("plain")
	_ = logger.Sync()

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("expected no request_id field, got %q", buf.String())
	}
}
