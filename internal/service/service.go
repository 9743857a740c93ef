// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"

	"taskdeck/internal/session"
)

// AuthService covers account and session operations.
// All task API auth calls go through this interface.
type AuthService interface {
	// Login exchanges credentials for a session token and persists it.
	// Credentials are forwarded as given, empty strings included.
	// Nothing is persisted on failure.
	Login(ctx context.Context, username, password string) (session.Session, error)

	// Signup creates an account. It does not log in.
	Signup(ctx context.Context, username, password string) error

	// Logout clears the stored session. Logging out twice is not an error.
	Logout(ctx context.Context) error

	// CurrentSession returns the stored session or session.ErrNoSession.
	CurrentSession(ctx context.Context) (session.Session, error)
}

// TaskService covers task operations.
type TaskService interface {
	// ListTasks returns tasks in API order.
	// On failure it returns an empty, non-nil slice together with the error.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns it as echoed by the API.
	// The returned Task is zero when the API does not echo one.
	CreateTask(ctx context.Context, t NewTask) (Task, error)

	// UpdateTaskStatus sets the status label of a task.
	UpdateTaskStatus(ctx context.Context, id TaskID, status string) error

	// SuggestSubtasks asks the API for subtask suggestions for a description.
	SuggestSubtasks(ctx context.Context, description string) ([]string, error)
}

// TaskFeed streams tasks broadcast by the API.
type TaskFeed interface {
	// WatchTasks calls fn for every broadcast task until ctx is done or the
	// connection fails. It returns nil when ctx was cancelled.
	WatchTasks(ctx context.Context, fn func(Task)) error
}

// Service is everything the front ends need.
type Service interface {
	AuthService
	TaskService
	TaskFeed
}
