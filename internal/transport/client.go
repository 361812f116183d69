package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const noResponsePlaceholder = "No response"

type chatRequest struct {
	UserMessage string `json:"user_message"`
	ThreadID    string `json:"thread_id"`
}

// chatResponse covers both field spellings the server has shipped.
type chatResponse struct {
	ResponseContent *string `json:"response_content"`
	Response        *string `json:"response"`
	ThreadID        string  `json:"thread_id"`
	ThreadIDCamel   string  `json:"threadId"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Client talks to the agent server. One request per Send; the UI guarantees a
// single outstanding send per transcript.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Send posts the user message plus the current thread id (empty when no
// conversation exists yet) and parses the assistant's reply.
func (c *Client) Send(ctx context.Context, userMessage, threadID string) (Reply, error) {
	payload, err := json.Marshal(chatRequest{
		UserMessage: userMessage,
		ThreadID:    threadID,
	})
	if err != nil {
		return Reply{}, newError(fmt.Sprintf("failed to encode request: %v", err), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(payload))
	if err != nil {
		return Reply{}, newError(fmt.Sprintf("failed to create request: %v", err), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Reply{}, newError(err.Error(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Reply{}, newError(fmt.Sprintf("failed to read response: %v", err), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Reply{}, newError(errorMessage(resp, body), nil)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Reply{}, newError(fmt.Sprintf("failed to parse response: %v", err), err)
	}

	return Reply{
		Content:  replyText(parsed),
		ThreadID: replyThreadID(parsed),
	}, nil
}

// Ping checks server reachability via the /ping utility endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return newError(fmt.Sprintf("failed to create request: %v", err), err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newError(err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return newError(errorMessage(resp, body), nil)
	}
	return nil
}

// errorMessage extracts the most specific failure description available:
// the JSON "detail" field, else the raw body, else the status line.
func errorMessage(resp *http.Response, body []byte) string {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return resp.Status
}

// replyText resolves the reply body, preferring the current field name over
// the legacy one and falling back to a placeholder when both are absent.
func replyText(parsed chatResponse) string {
	if parsed.ResponseContent != nil {
		return *parsed.ResponseContent
	}
	if parsed.Response != nil {
		return *parsed.Response
	}
	return noResponsePlaceholder
}

func replyThreadID(parsed chatResponse) string {
	if parsed.ThreadID != "" {
		return parsed.ThreadID
	}
	return parsed.ThreadIDCamel
}
