package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"taskdeck/internal/logging"
	"taskdeck/internal/metrics"
	"taskdeck/internal/service"
)

// home renders the task form above the task list. Tasks are fetched once
// per render; a failed fetch shows an empty list.
func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	s.renderHome(w, r, http.StatusOK, TaskForm{}, "")
}

func (s *Server) renderHome(w http.ResponseWriter, r *http.Request, status int, form TaskForm, alert string) {
	data := pageData{Title: "Tasks", Alert: alert}

	tasks, err := s.svc.ListTasks(r.Context())
	if err != nil {
		logging.WithRequest(r.Context(), s.logger).Warn("failed to load tasks", zap.Error(err))
		data.Notice = "Could not load tasks."
	}
	if tasks == nil {
		tasks = []service.Task{}
	}

	data.Page = homePage{Form: form, Tasks: tasks}
	s.render(w, r, status, pageHome, data)
}

// createTask submits the task form. The list is refreshed only after the
// backend confirmed the create; on failure the title is kept for a retry.
func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	form, err := parseTaskForm(r)
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	log := logging.WithRequest(r.Context(), s.logger)
	task, err := s.svc.CreateTask(r.Context(), form.NewTask())
	if err != nil {
		metrics.IncrementTaskSubmission("failed")
		log.Warn("failed to create task", zap.Error(err))
		s.renderHome(w, r, http.StatusOK, form, alertText("Could not add task", err))
		return
	}

	metrics.IncrementTaskSubmission("created")
	log.Debug("created task", zap.String("id", task.ID.String()))
	seeOther(w, r, "/")
}

// updateStatus handles a task list item's "Mark done" button.
func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := service.TaskID(mux.Vars(r)["id"])
	form, err := parseStatusForm(r)
	if err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	if err := s.svc.UpdateTaskStatus(r.Context(), id, form.Status); err != nil {
		logging.WithRequest(r.Context(), s.logger).Warn("failed to update task",
			zap.String("id", id.String()), zap.Error(err))
		s.renderHome(w, r, http.StatusOK, TaskForm{}, alertText("Could not update task", err))
		return
	}
	seeOther(w, r, "/")
}
