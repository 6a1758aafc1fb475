package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://leetcode.com/graphql/"

// ErrUserNotFound is returned when the upstream replies 200 but reports a
// GraphQL error list, which happens for unknown usernames.
var ErrUserNotFound = errors.New("user does not exist")

// StatusError reports a non-200 reply from the upstream endpoint. Its text is
// what ends up in the response envelope message.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.Code)
}

// Fetcher is the upstream contract the resource services depend on.
type Fetcher interface {
	Fetch(ctx context.Context, query, username string) (*RawData, error)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

// Fetch posts one GraphQL query for the given username and returns the typed
// data section. A single failed attempt surfaces immediately; there are no
// retries.
func (c *Client) Fetch(ctx context.Context, query, username string) (*RawData, error) {
	body, err := json.Marshal(graphqlRequest{
		Query:     query,
		Variables: map[string]string{"username": username},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", fmt.Sprintf("https://leetcode.com/%s/", username))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	if len(env.Errors) > 0 {
		return nil, ErrUserNotFound
	}
	if env.Data == nil {
		return nil, errors.New("missing data in upstream response")
	}
	return env.Data, nil
}
