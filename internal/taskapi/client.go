package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"task-allocation/internal/domain/task"
	"task-allocation/internal/domain/user"
)

// Client talks to the external task-allocation REST service. Task and skill
// persistence, matching and assignment all live there; this client only
// exchanges JSON over HTTP.
type Client interface {
	ListTasks(ctx context.Context, userID string, role user.Role) ([]task.Task, error)
	CreateTask(ctx context.Context, in CreateTaskInput) (task.Task, error)
	UpdateTaskDescription(ctx context.Context, taskID, description string) (task.Task, error)
	ListSkills(ctx context.Context, userID string) ([]task.Skill, error)
}

type CreateTaskInput struct {
	SupervisorID   string
	Description    string
	RequiredSkills []string
	StartDate      string
	DueDate        string
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) (Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("empty task API base URL")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

func (c *httpClient) ListTasks(ctx context.Context, userID string, role user.Role) ([]task.Task, error) {
	endpoint := fmt.Sprintf("%s/tasks/?user_id=%s&role=%s",
		c.baseURL, url.QueryEscape(userID), url.QueryEscape(string(role)))

	var payloads []taskPayload
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &payloads); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]task.Task, 0, len(payloads))
	for _, p := range payloads {
		tasks = append(tasks, taskFromPayload(p))
	}
	return tasks, nil
}

func (c *httpClient) CreateTask(ctx context.Context, in CreateTaskInput) (task.Task, error) {
	body := createTaskPayload{
		SupervisorID:   in.SupervisorID,
		Description:    in.Description,
		RequiredSkills: in.RequiredSkills,
		DueDate:        in.DueDate,
		StartDate:      in.StartDate,
		AssignedTo:     nil,
		Status:         task.StatusPending,
	}

	var created taskPayload
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/tasks/", body, &created); err != nil {
		return task.Task{}, fmt.Errorf("create task: %w", err)
	}
	return taskFromPayload(created), nil
}

func (c *httpClient) UpdateTaskDescription(ctx context.Context, taskID, description string) (task.Task, error) {
	endpoint := c.baseURL + "/tasks/" + url.PathEscape(taskID)

	var patched taskPayload
	if err := c.do(ctx, http.MethodPatch, endpoint, updateTaskPayload{Description: description}, &patched); err != nil {
		return task.Task{}, fmt.Errorf("update task %s: %w", taskID, err)
	}
	return taskFromPayload(patched), nil
}

func (c *httpClient) ListSkills(ctx context.Context, userID string) ([]task.Skill, error) {
	endpoint := c.baseURL + "/skills/" + url.PathEscape(userID)

	var payloads []skillPayload
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &payloads); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	skills := make([]task.Skill, 0, len(payloads))
	for _, p := range payloads {
		skills = append(skills, skillFromPayload(p))
	}
	return skills, nil
}

func (c *httpClient) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := errorFromResponse(resp)
		if c.logger != nil {
			c.logger.Printf("[TaskAPI] %s %s failed: %v", method, endpoint, err)
		}
		return err
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// errorFromResponse prefers the backend's "detail" message over the bare
// status text.
func errorFromResponse(resp *http.Response) error {
	rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var errBody struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(rb, &errBody) == nil && strings.TrimSpace(errBody.Detail) != "" {
		return fmt.Errorf("status %d: %s", resp.StatusCode, errBody.Detail)
	}

	text := http.StatusText(resp.StatusCode)
	if text == "" {
		text = "request failed"
	}
	return fmt.Errorf("status %d: %s", resp.StatusCode, text)
}
