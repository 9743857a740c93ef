package web

import (
	"net/http"

	"taskdeck/internal/service"
)

// LoginForm is the payload of the login form.
type LoginForm struct {
	Username string
	Password string
}

// SignupForm is the payload of the signup form.
type SignupForm struct {
	Username string
	Password string
}

// TaskForm is the payload of the task form. It has a single title field;
// the description is always sent empty.
type TaskForm struct {
	Title string
}

// StatusForm is the payload of a task list item's status button.
type StatusForm struct {
	Status string
}

// No client-side validation: empty values are forwarded as they are.

func parseLoginForm(r *http.Request) (LoginForm, error) {
	if err := r.ParseForm(); err != nil {
		return LoginForm{}, err
	}
	return LoginForm{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}, nil
}

func parseSignupForm(r *http.Request) (SignupForm, error) {
	if err := r.ParseForm(); err != nil {
		return SignupForm{}, err
	}
	return SignupForm{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	}, nil
}

func parseTaskForm(r *http.Request) (TaskForm, error) {
	if err := r.ParseForm(); err != nil {
		return TaskForm{}, err
	}
	return TaskForm{Title: r.PostForm.Get("title")}, nil
}

func parseStatusForm(r *http.Request) (StatusForm, error) {
	if err := r.ParseForm(); err != nil {
		return StatusForm{}, err
	}
	status := r.PostForm.Get("status")
	if status == "" {
		status = service.StatusDone
	}
	return StatusForm{Status: status}, nil
}

// NewTask converts the form into the create payload.
func (f TaskForm) NewTask() service.NewTask {
	return service.NewTask{Title: f.Title, Description: ""}
}
