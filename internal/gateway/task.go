package gateway

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/orgdesk/orgdesk/internal/model"
)

// Tasks lists an organization's tasks. GET /organizations/{id}/tasks.
func (c *Client) Tasks(ctx context.Context, orgID int64) ([]model.Task, error) {
	const op = "tasks"

	resp, err := c.newRequest(ctx).
		Get("/organizations/" + strconv.FormatInt(orgID, 10) + "/tasks")
	if err != nil {
		return nil, netErr(op, err)
	}

	var tasks []model.Task
	if err := decode(op, resp, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// AddTask creates a task in the organization. POST /organizations/{id}/tasks.
func (c *Client) AddTask(ctx context.Context, orgID int64, title, description string) (string, error) {
	const op = "add task"

	resp, err := c.newRequest(ctx).
		SetBody(map[string]string{"title": title, "description": description}).
		Post("/organizations/" + strconv.FormatInt(orgID, 10) + "/tasks")
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusCreated)
}

// CompleteTask marks a task completed, stamping it with today's date in the
// service's expected layout. PUT /complete-task/{id}.
func (c *Client) CompleteTask(ctx context.Context, taskID int64) (string, error) {
	const op = "complete task"

	resp, err := c.newRequest(ctx).
		SetBody(map[string]string{"date": time.Now().Format(model.CompletionDateLayout)}).
		Put("/complete-task/" + strconv.FormatInt(taskID, 10))
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusOK)
}

// UncheckTask clears a task's completion. PUT /uncheck-task/{id}.
func (c *Client) UncheckTask(ctx context.Context, taskID int64) (string, error) {
	const op = "uncheck task"

	resp, err := c.newRequest(ctx).
		Put("/uncheck-task/" + strconv.FormatInt(taskID, 10))
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusOK)
}

// DeleteTask deletes a task outright. DELETE /delete-task/{id}.
func (c *Client) DeleteTask(ctx context.Context, taskID int64) (string, error) {
	const op = "delete task"

	resp, err := c.newRequest(ctx).
		Delete("/delete-task/" + strconv.FormatInt(taskID, 10))
	if err != nil {
		return "", netErr(op, err)
	}
	return confirm(op, resp, http.StatusOK)
}
