// Package imagen generates textures with Imagen on Vertex AI.
package imagen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"exolens/internal/infra"
	"exolens/internal/providers/image"
)

// Name identifies the provider in responses.
const Name = "vertex-imagen"

// Options configures the Vertex AI client.
type Options struct {
	Project     string
	Location    string
	Model       string
	BaseURL     string // overrides https://{location}-aiplatform.googleapis.com
	TokenSource oauth2.TokenSource
	HTTPClient  *http.Client
	Logger      *infra.Logger
}

// Client calls the Imagen predict endpoint with a bearer token.
type Client struct {
	endpoint   string
	model      string
	tokens     oauth2.TokenSource
	httpClient *http.Client
	logger     *infra.Logger
}

type predictRequest struct {
	Instances  []predictInstance `json:"instances"`
	Parameters predictParameters `json:"parameters"`
}

type predictInstance struct {
	Prompt string `json:"prompt"`
}

type predictParameters struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio"`
}

type predictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MimeType           string `json:"mimeType"`
	} `json:"predictions"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewClient constructs a client. A token source is required.
func NewClient(opts Options) (*Client, error) {
	if opts.TokenSource == nil {
		return nil, errors.New("imagen: token source is required")
	}
	project := strings.TrimSpace(opts.Project)
	if project == "" {
		project = "exolens"
	}
	location := strings.TrimSpace(opts.Location)
	if location == "" {
		location = "us-central1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "imagen-3.0-generate-002"
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s-aiplatform.googleapis.com", location)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 90 * time.Second}
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}

	endpoint := fmt.Sprintf("%s/v1/projects/%s/locations/%s/publishers/google/models/%s:predict",
		baseURL, url.PathEscape(project), url.PathEscape(location), url.PathEscape(model))

	return &Client{
		endpoint:   endpoint,
		model:      model,
		tokens:     oauth2.ReuseTokenSource(nil, opts.TokenSource),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (c *Client) Name() string { return Name }

// Model returns the configured Imagen model identifier.
func (c *Client) Model() string { return c.model }

// Generate requests req.Quantity square textures.
func (c *Client) Generate(ctx context.Context, req image.GenerateRequest) ([]image.Asset, error) {
	aspect := req.AspectRatio
	if aspect == "" {
		aspect = "1:1"
	}
	payload := predictRequest{
		Instances:  []predictInstance{{Prompt: req.Prompt}},
		Parameters: predictParameters{SampleCount: image.Quantity(req.Quantity), AspectRatio: aspect},
	}

	var resp predictResponse
	if err := c.predict(ctx, payload, &resp); err != nil {
		return nil, err
	}

	assets := make([]image.Asset, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		if p.BytesBase64Encoded == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(p.BytesBase64Encoded)
		if err != nil {
			return nil, fmt.Errorf("imagen: decode prediction: %w", err)
		}
		format := p.MimeType
		if format == "" {
			format = "image/png"
		}
		w, h := image.Dimensions(data)
		assets = append(assets, image.Asset{
			URL:    "data:" + format + ";base64," + p.BytesBase64Encoded,
			Format: format,
			Width:  w,
			Height: h,
			Data:   data,
		})
	}
	if len(assets) == 0 {
		return nil, errors.New("imagen: response contained no images")
	}

	c.logger.Debug().
		Str("request_id", req.RequestID).
		Str("model", c.model).
		Int("quantity", len(assets)).
		Msg("imagen: generated textures")
	return assets, nil
}

func (c *Client) predict(ctx context.Context, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("imagen: marshal request: %w", err)
	}
	token, err := c.tokens.Token()
	if err != nil {
		return fmt.Errorf("imagen: acquire access token: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("imagen: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	token.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("imagen: invoke vertex: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		var apiErr errorResponse
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("imagen status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		if len(data) > 0 {
			return fmt.Errorf("imagen status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return fmt.Errorf("imagen status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("imagen: decode response: %w", err)
	}
	return nil
}

var _ image.Generator = (*Client)(nil)
