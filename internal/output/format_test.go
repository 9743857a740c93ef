package output_test

import (
	"bytes"
	"testing"

	"taskdeck/internal/output"
	"taskdeck/internal/service"
	"taskdeck/internal/testutil"
)

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 1, service.Task{ID: "1", Title: "A", Status: "pending"})
	output.FormatTask(&buf, 2, service.Task{ID: "65f0", Title: "multi\nline", Status: "done"})
	output.FormatTask(&buf, 10, service.Task{Title: "   "})

	testutil.GoldenString(t, "tasks", buf.String())
}

func TestFormatFeedTask(t *testing.T) {
	var buf bytes.Buffer
	output.FormatFeedTask(&buf, service.Task{ID: "9", Title: "Broadcast", Status: "pending"})

	want := "+ Broadcast - pending  (9)\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatSuggestion(t *testing.T) {
	var buf bytes.Buffer
	output.FormatSuggestion(&buf, 1, "Book flights\n  compare prices\n\nthen pay  \n")

	testutil.GoldenString(t, "suggestion", buf.String())
}

func TestFormatTask_Priority(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, 3, service.Task{ID: "7", Title: "Pay rent", Status: "pending", Priority: "High.\nBecause it is due"})

	want := "   3  Pay rent - pending [High]  (7)\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
