// Package resttasks implements the service.Service interface against the
// Sync To-Do REST API.
package resttasks

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"syncdo/internal/service"
)

// maxErrorBody caps how much of a non-success response body is read
// while looking for a message field.
const maxErrorBody = 64 * 1024

// RemoteError is the single error kind raised for any non-success HTTP
// status or transport failure. Message is taken from the response
// body's "message" field when present, otherwise the status phrase.
type RemoteError struct {
	StatusCode int // zero for transport failures
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// Client implements service.Service over JSON/HTTP against one fixed
// base origin. Each call is a single best-effort round trip: no
// retries, no timeouts, no caching.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a client for the given base origin, e.g.
// "https://tasks.example.com".
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, http.DefaultClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client
// (for testing).
func NewWithHTTPClient(baseURL string, httpc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

// ListTasks implements service.Service.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, title string) (service.Task, error) {
	payload := struct {
		Title string `json:"title"`
	}{Title: title}

	var task service.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", payload, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id), patch, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// do performs one round trip and decodes a 2xx body into out.
// Every failure comes back as a *RemoteError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &RemoteError{Message: err.Error()}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &RemoteError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRemoteError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &RemoteError{StatusCode: resp.StatusCode, Message: err.Error()}
		}
	}
	return nil
}

// newRemoteError builds a RemoteError from a non-success response,
// preferring the body's message field over the status phrase.
func newRemoteError(resp *http.Response) *RemoteError {
	msg := statusPhrase(resp)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &body) == nil && body.Message != "" {
			msg = body.Message
		}
	}

	return &RemoteError{StatusCode: resp.StatusCode, Message: msg}
}

// statusPhrase returns the human-readable phrase for a status,
// falling back to whatever the transport reported.
func statusPhrase(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if phrase != "" {
		return phrase
	}
	return resp.Status
}
