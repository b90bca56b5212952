package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/natnat/flowershop_content_microservice/internal/core/domain"
	"github.com/natnat/flowershop_content_microservice/internal/core/ports"
)

const (
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 8 << 20
)

// response is the envelope every action of the Apps Script web app returns.
type response struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Client talks to the spreadsheet-backed content endpoint:
// GET {baseURL}?action={key}.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimSpace(baseURL),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient swaps the transport, mostly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

func (c *Client) Configured() bool {
	return c.baseURL != ""
}

func (c *Client) Fetch(ctx context.Context, key domain.ContentKey) (json.RawMessage, bool, error) {
	endpoint, err := c.actionURL(key)
	if err != nil {
		return nil, false, &domain.RemoteError{Key: key, Kind: domain.KindNetwork, Message: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, &domain.RemoteError{Key: key, Kind: domain.KindNetwork, Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, &domain.RemoteError{Key: key, Kind: domain.KindNetwork, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, false, &domain.RemoteError{
			Key:        key,
			Kind:       domain.KindStatus,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
		}
	}

	var body response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, false, &domain.RemoteError{
			Key:        key,
			Kind:       domain.KindProtocol,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("malformed response: %v", err),
			Err:        err,
		}
	}

	if body.Success == nil {
		return nil, false, &domain.RemoteError{
			Key:        key,
			Kind:       domain.KindProtocol,
			StatusCode: resp.StatusCode,
			Message:    "malformed response: missing success field",
		}
	}

	if !*body.Success {
		msg := body.Error
		if msg == "" {
			msg = "Unknown API error"
		}
		return nil, false, &domain.RemoteError{
			Key:        key,
			Kind:       domain.KindProtocol,
			StatusCode: resp.StatusCode,
			Message:    msg,
		}
	}

	if len(body.Data) == 0 || string(body.Data) == "null" {
		return nil, false, nil
	}
	return body.Data, true, nil
}

func (c *Client) actionURL(key domain.ContentKey) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse endpoint url: %w", err)
	}
	q := u.Query()
	q.Set("action", key.String())
	u.RawQuery = q.Encode()
	return u.String(), nil
}

var _ ports.ContentSource = (*Client)(nil)
