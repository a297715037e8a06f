// Package genai generates textures with Imagen through the Gemini API.
package genai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	sdk "google.golang.org/genai"

	"exolens/internal/infra"
	"exolens/internal/providers/image"
)

// Name identifies the provider in responses.
const Name = "gemini-imagen"

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("genai: api key is required")

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// imageModels is the part of *sdk.Models the client depends on.
type imageModels interface {
	GenerateImages(ctx context.Context, model, prompt string, config *sdk.GenerateImagesConfig) (*sdk.GenerateImagesResponse, error)
}

// Client wraps the Gemini API image models.
type Client struct {
	models imageModels
	model  string
	logger *infra.Logger
}

// NewClient constructs a Gemini API client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 90 * time.Second}
	}
	sc, err := sdk.NewClient(ctx, &sdk.ClientConfig{
		APIKey:     apiKey,
		Backend:    sdk.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("genai: create client: %w", err)
	}
	return newClient(sc.Models, opts), nil
}

func newClient(models imageModels, opts Options) *Client {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "imagen-3.0-generate-002"
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}
	return &Client{models: models, model: model, logger: logger}
}

func (c *Client) Name() string { return Name }

// Model returns the configured Imagen model identifier.
func (c *Client) Model() string { return c.model }

// Generate requests req.Quantity textures from the Gemini API.
func (c *Client) Generate(ctx context.Context, req image.GenerateRequest) ([]image.Asset, error) {
	aspect := req.AspectRatio
	if aspect == "" {
		aspect = "1:1"
	}
	resp, err := c.models.GenerateImages(ctx, c.model, req.Prompt, &sdk.GenerateImagesConfig{
		NumberOfImages: int32(image.Quantity(req.Quantity)),
		AspectRatio:    aspect,
		OutputMIMEType: "image/png",
	})
	if err != nil {
		return nil, fmt.Errorf("genai: generate images: %w", err)
	}
	if resp == nil {
		return nil, errors.New("genai: empty response")
	}

	var assets []image.Asset
	for _, gen := range resp.GeneratedImages {
		if gen == nil || gen.Image == nil || len(gen.Image.ImageBytes) == 0 {
			if gen != nil && gen.RAIFilteredReason != "" {
				c.logger.Warn().Str("reason", gen.RAIFilteredReason).Msg("genai: image filtered")
			}
			continue
		}
		format := gen.Image.MIMEType
		if format == "" {
			format = "image/png"
		}
		w, h := image.Dimensions(gen.Image.ImageBytes)
		assets = append(assets, image.Asset{
			URL:    "data:" + format + ";base64," + base64.StdEncoding.EncodeToString(gen.Image.ImageBytes),
			Format: format,
			Width:  w,
			Height: h,
			Data:   gen.Image.ImageBytes,
		})
	}
	if len(assets) == 0 {
		return nil, errors.New("genai: response contained no images")
	}

	c.logger.Debug().
		Str("request_id", req.RequestID).
		Str("model", c.model).
		Int("quantity", len(assets)).
		Msg("genai: generated textures")
	return assets, nil
}

var _ image.Generator = (*Client)(nil)
