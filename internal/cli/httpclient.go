package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	json "github.com/json-iterator/go"
)

// ServerError represents an error response from the server
type ServerError struct {
	Result int    `json:"result"`
	Error  string `json:"error"`
}

// HTTPError represents an error response from the server with a status code
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// HTTPClient represents a client for making HTTP requests to the resource server
type HTTPClient struct {
	config     *Config
	httpClient *http.Client
	attempts   uint
	delay      time.Duration
}

// NewHTTPClient creates a new HTTP client using the provided configuration
func NewHTTPClient(config *Config) *HTTPClient {
	return &HTTPClient{
		config:     config,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		attempts:   3,
		delay:      200 * time.Millisecond,
	}
}

// RequestOptions contains options for making HTTP requests
type RequestOptions struct {
	Method      string
	Path        string
	QueryParams map[string]string
	Body        []byte
}

// DoRequest makes an HTTP request with the given options and returns the
// response body and Location header. GET requests are retried on transport
// errors and 5xx responses.
func (c *HTTPClient) DoRequest(ctx context.Context, opts RequestOptions) ([]byte, string, error) {
	if opts.Method != http.MethodGet {
		return c.do(ctx, opts)
	}
	var (
		body     []byte
		location string
	)
	err := retry.Do(func() error {
		var err error
		body, location, err = c.do(ctx, opts)
		if httpErr, ok := err.(*HTTPError); ok && httpErr.StatusCode < http.StatusInternalServerError {
			return retry.Unrecoverable(err)
		}
		return err
	},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true))
	if err != nil {
		return nil, "", err
	}
	return body, location, nil
}

func (c *HTTPClient) do(ctx context.Context, opts RequestOptions) ([]byte, string, error) {
	// Build the URL with query parameters
	u, err := url.Parse(c.config.GetServerURL())
	if err != nil {
		return nil, "", fmt.Errorf("invalid server URL: %v", err)
	}
	u.Path = path.Join(u.Path, c.config.APIPrefix, opts.Path)

	q := u.Query()
	for k, v := range opts.QueryParams {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, opts.Method, u.String(), bytes.NewReader(opts.Body))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %v", err)
	}

	// Check for error status codes
	if resp.StatusCode >= 400 {
		var serverErr ServerError
		if err := json.Unmarshal(body, &serverErr); err == nil && serverErr.Error != "" {
			return nil, "", &HTTPError{
				StatusCode: resp.StatusCode,
				Message:    serverErr.Error,
			}
		}
		return nil, "", &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return body, resp.Header.Get("Location"), nil
}

func resourcePath(id int64) string {
	return "/resources/" + strconv.FormatInt(id, 10)
}

// CreateResource posts a new resource and returns the response body.
func (c *HTTPClient) CreateResource(ctx context.Context, body []byte) ([]byte, string, error) {
	return c.DoRequest(ctx, RequestOptions{
		Method: http.MethodPost,
		Path:   "/resources",
		Body:   body,
	})
}

// ListResources fetches the resources matching the given filters.
func (c *HTTPClient) ListResources(ctx context.Context, filters map[string]string) ([]byte, error) {
	body, _, err := c.DoRequest(ctx, RequestOptions{
		Method:      http.MethodGet,
		Path:        "/resources",
		QueryParams: filters,
	})
	return body, err
}

// GetResource fetches a single resource.
func (c *HTTPClient) GetResource(ctx context.Context, id int64) ([]byte, error) {
	body, _, err := c.DoRequest(ctx, RequestOptions{
		Method: http.MethodGet,
		Path:   resourcePath(id),
	})
	return body, err
}

// UpdateResource applies a partial update to a resource.
func (c *HTTPClient) UpdateResource(ctx context.Context, id int64, body []byte) ([]byte, error) {
	rsp, _, err := c.DoRequest(ctx, RequestOptions{
		Method: http.MethodPut,
		Path:   resourcePath(id),
		Body:   body,
	})
	return rsp, err
}

// DeleteResource removes a resource.
func (c *HTTPClient) DeleteResource(ctx context.Context, id int64) error {
	_, _, err := c.DoRequest(ctx, RequestOptions{
		Method: http.MethodDelete,
		Path:   resourcePath(id),
	})
	return err
}
