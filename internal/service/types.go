// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Task statuses used by the client. The API may return others.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// TaskID is the server-assigned task identifier.
// Strings and numbers are kept as their text; any other JSON value (an
// object id such as {"$oid":"..."}, a bool) is kept as its raw JSON.
type TaskID string

// UnmarshalJSON implements json.Unmarshaler. It never fails, so one odd id
// cannot drop a whole task list.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = TaskID(n.String())
		return nil
	}
	*id = TaskID(data)
	return nil
}

// String returns the id text.
func (id TaskID) String() string {
	return string(id)
}

// Task represents a single task item.
type Task struct {
	ID          TaskID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority,omitempty"`
	AssignedTo  string `json:"assignedTo,omitempty"`
}

// NewTask is the payload for creating a task.
// Description is always sent, even when empty.
type NewTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ShortPriority returns the task priority cut to its first word. The API
// fills priority from free text, so "High.\n" becomes "High".
func (t Task) ShortPriority() string {
	p := strings.TrimSpace(t.Priority)
	if i := strings.IndexAny(p, " \n\t.,:"); i > 0 {
		p = p[:i]
	}
	return p
}
