// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"strconv"
	"sync"

	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

// ErrBadCredentials is what the fake returns for a wrong password.
var ErrBadCredentials = &service.Error{Op: "login", Kind: service.KindUnauthorized, Status: 401, Message: "Invalid credentials"}

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu      sync.RWMutex
	users   map[string]string // username -> password
	tasks   []service.Task
	nextID  int
	session *session.Session
	feed    []service.Task

	// Calls made, for assertions
	LoginCalls  int
	SignupCalls int
	ListCalls   int
	Created     []service.NewTask
	Updates     map[service.TaskID]string

	// Error injection for testing
	LoginErr    error
	SignupErr   error
	LogoutErr   error
	ListErr     error
	CreateErr   error
	UpdateErr   error
	SuggestErr  error
	WatchErr    error
	Suggestions []string
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		users:   make(map[string]string),
		nextID:  1,
		Updates: make(map[service.TaskID]string),
	}
}

// AddUser registers an account.
func (f *FakeService) AddUser(username, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[username] = password
}

// AddTask adds a task with the given id, title and status.
func (f *FakeService) AddTask(id, title, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{ID: service.TaskID(id), Title: title, Status: status})
}

// SetSession installs a session as if the user had logged in.
func (f *FakeService) SetSession(s session.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = &s
}

// Broadcast queues tasks to be delivered by WatchTasks.
func (f *FakeService) Broadcast(tasks ...service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feed = append(f.feed, tasks...)
}

// HasSession reports whether a session is stored.
func (f *FakeService) HasSession() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.session != nil
}

// Login implements service.AuthService.
func (f *FakeService) Login(ctx context.Context, username, password string) (session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++

	if f.LoginErr != nil {
		return session.Session{}, f.LoginErr
	}
	if pw, ok := f.users[username]; !ok || pw != password {
		return session.Session{}, ErrBadCredentials
	}

	s := session.Session{Token: "token-" + username, Username: username}
	f.session = &s
	return s, nil
}

// Signup implements service.AuthService.
func (f *FakeService) Signup(ctx context.Context, username, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignupCalls++

	if f.SignupErr != nil {
		return f.SignupErr
	}
	f.users[username] = password
	return nil
}

// Logout implements service.AuthService.
func (f *FakeService) Logout(ctx context.Context) error {
	if f.LogoutErr != nil {
		return f.LogoutErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = nil
	return nil
}

// CurrentSession implements service.AuthService.
func (f *FakeService) CurrentSession(ctx context.Context) (session.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.session == nil {
		return session.Session{}, session.ErrNoSession
	}
	return *f.session, nil
}

// ListTasks implements service.TaskService.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++

	if f.ListErr != nil {
		return []service.Task{}, f.ListErr
	}
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// CreateTask implements service.TaskService.
func (f *FakeService) CreateTask(ctx context.Context, t service.NewTask) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Created = append(f.Created, t)

	if f.CreateErr != nil {
		return service.Task{}, f.CreateErr
	}

	task := service.Task{
		ID:          service.TaskID("new-" + strconv.Itoa(f.nextID)),
		Title:       t.Title,
		Description: t.Description,
		Status:      service.StatusPending,
	}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTaskStatus implements service.TaskService.
func (f *FakeService) UpdateTaskStatus(ctx context.Context, id service.TaskID, status string) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Status = status
			f.Updates[id] = status
			return nil
		}
	}
	return &service.Error{Op: "update task", Kind: service.KindNotFound, Status: 404}
}

// SuggestSubtasks implements service.TaskService.
func (f *FakeService) SuggestSubtasks(ctx context.Context, description string) ([]string, error) {
	if f.SuggestErr != nil {
		return nil, f.SuggestErr
	}
	return f.Suggestions, nil
}

// WatchTasks implements service.TaskFeed. It delivers the queued broadcasts
// and returns, or returns WatchErr after delivering them.
func (f *FakeService) WatchTasks(ctx context.Context, fn func(service.Task)) error {
	f.mu.RLock()
	feed := make([]service.Task, len(f.feed))
	copy(feed, f.feed)
	f.mu.RUnlock()

	for _, t := range feed {
		if ctx.Err() != nil {
			return nil
		}
		fn(t)
	}
	if f.WatchErr != nil {
		return f.WatchErr
	}
	return nil
}

var _ service.Service = (*FakeService)(nil)

