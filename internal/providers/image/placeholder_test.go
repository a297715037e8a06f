package image

import (
	"bytes"
	"context"
	stdimage "image"
	"image/png"
	"strings"
	"testing"
)

func TestPlaceholderURLEscapesPrompt(t *testing.T) {
	got := PlaceholderURL("a gas giant, 288K & 1 AU")
	want := "/placeholder.svg?height=1024&width=1024&query=a%20gas%20giant%2C%20288K%20%26%201%20AU"
	if got != want {
		t.Fatalf("PlaceholderURL = %q, want %q", got, want)
	}
}

func TestEscapeComponent(t *testing.T) {
	cases := map[string]string{
		"(60-70% coverage)!":  "(60-70%25%20coverage)!",
		"it's *bright* ~ok_.": "it's%20*bright*%20~ok_.",
		"a+b=c/d?":            "a%2Bb%3Dc%2Fd%3F",
		"literal %28 stays":   "literal%20%2528%20stays",
		"two\nlines":          "two%0Alines",
		"unicode \u2609":      "unicode%20%E2%98%89",
		"":                    "",
	}
	for in, want := range cases {
		if got := escapeComponent(in); got != want {
			t.Errorf("escapeComponent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPlaceholderGenerate(t *testing.T) {
	p := NewPlaceholder()
	assets, err := p.Generate(context.Background(), GenerateRequest{Prompt: "lava world", Quantity: 3})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("expected a single placeholder, got %d", len(assets))
	}
	if !strings.HasSuffix(assets[0].URL, "query=lava%20world") {
		t.Fatalf("unexpected url %q", assets[0].URL)
	}
	if assets[0].Data != nil {
		t.Fatalf("placeholder should not carry data")
	}
	if p.Name() != PlaceholderName {
		t.Fatalf("Name = %q", p.Name())
	}
}

func TestPlaceholderHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewPlaceholder().Generate(ctx, GenerateRequest{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestDimensions(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, stdimage.NewRGBA(stdimage.Rect(0, 0, 16, 8))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	w, h := Dimensions(buf.Bytes())
	if w != 16 || h != 8 {
		t.Fatalf("Dimensions = %dx%d, want 16x8", w, h)
	}
	if w, h := Dimensions([]byte("not an image")); w != 0 || h != 0 {
		t.Fatalf("expected zero dimensions for junk, got %dx%d", w, h)
	}
}

func TestQuantity(t *testing.T) {
	cases := map[int]int{-1: 1, 0: 1, 1: 1, 4: 4, 9: 4}
	for in, want := range cases {
		if got := Quantity(in); got != want {
			t.Fatalf("Quantity(%d) = %d, want %d", in, got, want)
		}
	}
}
