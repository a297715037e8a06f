package image

import (
	"bytes"
	"context"
	stdimage "image"
	_ "image/jpeg"
	_ "image/png"
)

// GenerateRequest describes a normalized request passed to any image provider.
type GenerateRequest struct {
	Prompt      string
	Quantity    int
	AspectRatio string
	RequestID   string
}

// Asset represents a generated image. Remote providers fill Data; the
// placeholder only carries a URL.
type Asset struct {
	URL    string
	Format string
	Width  int
	Height int
	Data   []byte
}

// Generator is the contract implemented by all image providers.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) ([]Asset, error)
	// Name identifies the provider in responses and history records.
	Name() string
}

// Dimensions decodes the width and height of a PNG or JPEG payload. Unknown
// formats report 0, 0.
func Dimensions(data []byte) (int, int) {
	cfg, _, err := stdimage.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

// Quantity clamps a requested image count into the 1..4 range accepted by
// Imagen.
func Quantity(n int) int {
	switch {
	case n < 1:
		return 1
	case n > 4:
		return 4
	default:
		return n
	}
}
