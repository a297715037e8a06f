package image

import (
	"context"
	"net/url"
	"strings"
)

// PlaceholderName is reported as the provider of placeholder textures.
const PlaceholderName = "placeholder"

// Placeholder answers every request with the static placeholder SVG, sized
// for a square texture and labelled with the prompt.
type Placeholder struct{}

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (p *Placeholder) Name() string { return PlaceholderName }

func (p *Placeholder) Generate(ctx context.Context, req GenerateRequest) ([]Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []Asset{{
		URL:    PlaceholderURL(req.Prompt),
		Format: "image/svg+xml",
		Width:  1024,
		Height: 1024,
	}}, nil
}

// componentUnescaper undoes the escapes url.QueryEscape applies beyond the
// URI component rules: spaces become %20 and !'()* stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// PlaceholderURL is the placeholder image location for a prompt. The prompt
// is escaped as a URI component.
func PlaceholderURL(prompt string) string {
	return "/placeholder.svg?height=1024&width=1024&query=" + escapeComponent(prompt)
}

func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

var _ Generator = (*Placeholder)(nil)
