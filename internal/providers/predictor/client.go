// Package predictor forwards planet observations to the external classifier.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"exolens/internal/infra"
)

// DefaultURL is where the classifier listens in local setups.
const DefaultURL = "http://127.0.0.1:8000/predict"

// ErrInvalidResponse is returned when the classifier answers with a body
// that is not JSON.
var ErrInvalidResponse = errors.New("predictor: classifier returned invalid json")

// Options configures the classifier client.
type Options struct {
	URL        string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client posts JSON bodies to the classifier unchanged.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *infra.Logger
}

// Result is the classifier's answer. Status is the upstream HTTP status.
type Result struct {
	Status int
	Body   json.RawMessage
}

func NewClient(opts Options) *Client {
	target := strings.TrimSpace(opts.URL)
	if target == "" {
		target = DefaultURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}
	return &Client{url: target, httpClient: httpClient, logger: logger}
}

// Predict forwards body and returns the decoded JSON answer.
func (c *Client) Predict(ctx context.Context, body []byte) (*Result, error) {
	if !json.Valid(body) {
		return nil, errors.New("predictor: request body is not json")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("predictor: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("predictor: invoke classifier: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("predictor: read response: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 || !json.Valid(data) {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("predictor: non-json response")
		return nil, ErrInvalidResponse
	}
	return &Result{Status: resp.StatusCode, Body: json.RawMessage(data)}, nil
}
