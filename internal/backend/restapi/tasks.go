package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"taskdeck/internal/logging"
	"taskdeck/internal/service"
)

// ListTasks implements service.TaskService.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	const op = "list tasks"

	body, err := c.call(ctx, op, http.MethodGet, "/tasks", nil)
	if err == nil {
		var tasks []service.Task
		if err = decode(op, body, &tasks); err == nil {
			if tasks == nil {
				tasks = []service.Task{}
			}
			return tasks, nil
		}
	}

	logging.WithRequest(ctx, c.logger).Warn("failed to fetch tasks", zap.Error(err))
	return []service.Task{}, err
}

// CreateTask implements service.TaskService.
func (c *Client) CreateTask(ctx context.Context, t service.NewTask) (service.Task, error) {
	body, err := c.call(ctx, "create task", http.MethodPost, "/tasks", t)
	if err != nil {
		return service.Task{}, err
	}

	// The API echoes the stored task; an unusable echo is not a failure.
	var created service.Task
	if len(body) > 0 {
		if err := json.Unmarshal(body, &created); err != nil {
			logging.WithRequest(ctx, c.logger).Debug("ignoring create task reply", zap.Error(err))
			created = service.Task{}
		}
	}
	return created, nil
}

type statusUpdate struct {
	Status string `json:"status"`
}

// UpdateTaskStatus implements service.TaskService.
func (c *Client) UpdateTaskStatus(ctx context.Context, id service.TaskID, status string) error {
	path := "/tasks/" + url.PathEscape(id.String())
	_, err := c.call(ctx, "update task", http.MethodPut, path, statusUpdate{Status: status})
	return err
}

type suggestionRequest struct {
	Description string `json:"description"`
}

type suggestionReply struct {
	Suggestions []string `json:"suggestions"`
}

// SuggestSubtasks implements service.TaskService.
func (c *Client) SuggestSubtasks(ctx context.Context, description string) ([]string, error) {
	const op = "suggest subtasks"

	body, err := c.call(ctx, op, http.MethodPost, "/ai-task-suggestions", suggestionRequest{Description: description})
	if err != nil {
		return nil, err
	}

	var reply suggestionReply
	if err := decode(op, body, &reply); err != nil {
		return nil, err
	}
	return reply.Suggestions, nil
}
