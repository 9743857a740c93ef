package service_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"taskdeck/internal/service"
)

func TestTask_DecodeIDForms(t *testing.T) {
	body := `[
		{"id": 1, "title": "A", "status": "pending"},
		{"id": "65f0c2", "title": "B", "description": "desc", "status": "done", "priority": "High"},
		{"id": null, "title": "C"}
	]`

	var tasks []service.Task
	if err := json.Unmarshal([]byte(body), &tasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "1" {
		t.Errorf("expected numeric id decoded as \"1\", got %q", tasks[0].ID)
	}
	if tasks[0].Description != "" {
		t.Errorf("missing description should default to empty, got %q", tasks[0].Description)
	}
	if tasks[1].ID != "65f0c2" || tasks[1].Priority != "High" {
		t.Errorf("unexpected second task: %+v", tasks[1])
	}
	if tasks[2].ID != "" {
		t.Errorf("null id should decode empty, got %q", tasks[2].ID)
	}
}

func TestTask_DecodeOtherIDShapesKeepsRawJSON(t *testing.T) {
	tests := map[string]service.TaskID{
		`{"id":true}`:             "true",
		`{"id":{"$oid":"b2"}}`:    `{"$oid":"b2"}`,
		`{"id":["x",1]}`:          `["x",1]`,
		`{"id":"quoted \"id\""}`: `quoted "id"`,
	}
	for in, want := range tests {
		var task service.Task
		if err := json.Unmarshal([]byte(in), &task); err != nil {
			t.Errorf("Unmarshal(%s) failed: %v", in, err)
			continue
		}
		if task.ID != want {
			t.Errorf("Unmarshal(%s) id = %q, want %q", in, task.ID, want)
		}
	}
}

func TestNewTask_AlwaysSendsDescription(t *testing.T) {
	data, err := json.Marshal(service.NewTask{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"title":"Buy milk","description":""}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestTask_ShortPriority(t *testing.T) {
	tests := map[string]string{
		"High":                      "High",
		"High.\n":                   "High",
		"  Medium priority because": "Medium",
		"":                          "",
	}
	for in, want := range tests {
		got := service.Task{Priority: in}.ShortPriority()
		if got != want {
			t.Errorf("ShortPriority(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestError_KindOf(t *testing.T) {
	base := &service.Error{Op: "login", Kind: service.KindUnauthorized, Status: 401, Message: "Invalid credentials"}
	wrapped := fmt.Errorf("page: %w", base)

	if service.KindOf(wrapped) != service.KindUnauthorized {
		t.Errorf("expected unauthorized, got %v", service.KindOf(wrapped))
	}
	if !service.IsKind(wrapped, service.KindUnauthorized) {
		t.Error("IsKind should see through wrapping")
	}
	if service.KindOf(errors.New("plain")) != service.KindUnknown {
		t.Error("plain errors should be unknown kind")
	}
	if service.IsKind(nil, service.KindUnknown) {
		t.Error("nil is never of any kind")
	}

	want := "login: Invalid credentials (status 401)"
	if base.Error() != want {
		t.Errorf("expected %q, got %q", want, base.Error())
	}
}

func TestError_MessageFallbacks(t *testing.T) {
	cause := errors.New("connection refused")
	e := &service.Error{Op: "list tasks", Kind: service.KindNetwork, Err: cause}

	if e.Error() != "list tasks: connection refused" {
		t.Errorf("unexpected message %q", e.Error())
	}
	if !errors.Is(e, cause) {
		t.Error("Error should unwrap to its cause")
	}

	bare := &service.Error{Op: "signup", Kind: service.KindServer, Status: 500}
	if bare.Error() != "signup: server (status 500)" {
		t.Errorf("unexpected message %q", bare.Error())
	}
}
