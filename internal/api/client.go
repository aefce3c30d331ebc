// Package api is the HTTP client for the balance assistant backend. Every
// call is a single JSON round-trip; there is no retry, caching, or request
// sequencing here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/averyhb/balancechat/internal"
)

// Client talks to the backend. A zero token means anonymous calls; the
// bearer token is attached when present.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a backend client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetToken attaches a bearer token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Complete requests the assistant's reply for a message and the session
// history so far. This is the core's only external interface.
func (c *Client) Complete(ctx context.Context, message string, history []internal.Message, model string) (string, error) {
	req := ChatRequest{
		Message: message,
		History: history,
		Model:   model,
	}

	var resp ChatResponse
	if err := c.post(ctx, "/api/chat", req, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.post(ctx, "/api/login", AuthRequest{Email: email, Password: password}, &resp)
	return resp, err
}

// Register creates an account and returns its bearer token.
func (c *Client) Register(ctx context.Context, email, password string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.post(ctx, "/api/register", AuthRequest{Email: email, Password: password}, &resp)
	return resp, err
}

// Reminders fetches the user's reminders, ordered by due date.
func (c *Client) Reminders(ctx context.Context) ([]Reminder, error) {
	var reminders []Reminder
	if err := c.get(ctx, "/api/reminders", &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// CreateReminder adds a reminder. dueDate must be RFC3339.
func (c *Client) CreateReminder(ctx context.Context, title, description, dueDate string) (Reminder, error) {
	var created Reminder
	err := c.post(ctx, "/api/reminders", ReminderCreate{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
	}, &created)
	return created, err
}

// CompleteReminder marks a reminder done.
func (c *Client) CompleteReminder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/reminders/%d/complete", id), nil, nil)
}

// Models lists the models the backend offers and its default.
func (c *Client) Models(ctx context.Context) (ModelsResponse, error) {
	var resp ModelsResponse
	err := c.get(ctx, "/api/models", &resp)
	return resp, err
}

// Preferences fetches the user's assistant settings.
func (c *Client) Preferences(ctx context.Context) (Preferences, error) {
	var prefs Preferences
	err := c.get(ctx, "/api/user/preferences", &prefs)
	return prefs, err
}

// UpdatePreferences saves the user's assistant settings.
func (c *Client) UpdatePreferences(ctx context.Context, prefs Preferences) error {
	return c.do(ctx, http.MethodPut, "/api/user/preferences", prefs, nil)
}

// Documents lists the user's uploaded study materials.
func (c *Client) Documents(ctx context.Context) ([]Document, error) {
	var docs []Document
	if err := c.get(ctx, "/api/documents", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UploadDocument uploads a study material for the assistant to reference.
func (c *Client) UploadDocument(ctx context.Context, filename, content, fileType string) error {
	return c.post(ctx, "/api/documents/upload", DocumentUpload{
		Filename: filename,
		Content:  content,
		FileType: fileType,
	}, nil)
}

// SendFeedback rates an assistant message.
func (c *Client) SendFeedback(ctx context.Context, message string, rating int) error {
	return c.post(ctx, "/api/feedback", FeedbackRequest{Message: message, Rating: rating}, nil)
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(endpoint, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// apiError extracts the backend's detail message when the body carries one.
func (c *Client) apiError(endpoint string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return &internal.APIError{Endpoint: endpoint, Status: resp.StatusCode, Detail: errResp.Detail}
	}
	return &internal.APIError{Endpoint: endpoint, Status: resp.StatusCode, Detail: strings.TrimSpace(string(body))}
}
