package storage

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestWriteThenRead(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	key, err := store.Write(ctx, "/textures/2025/10/abc.png", []byte("png"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "textures/2025/10/abc.png" {
		t.Fatalf("key = %q", key)
	}
	data, err := store.Read(ctx, key)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "png" {
		t.Fatalf("data = %q", data)
	}
}

func TestReadMissing(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	_, err := store.Read(context.Background(), "textures/none.png")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestSanitizeKeyRejectsTraversal(t *testing.T) {
	for _, key := range []string{"", "  ", "../etc/passwd", "a/../../b", ".."} {
		if _, err := sanitizeKey(key); err == nil {
			t.Fatalf("expected error for %q", key)
		}
	}
	if got, err := sanitizeKey(`textures\2025\a.png`); err != nil || got != "textures/2025/a.png" {
		t.Fatalf("sanitizeKey backslashes = %q, %v", got, err)
	}
}

func TestTextureKey(t *testing.T) {
	ts := time.Date(2025, 3, 9, 23, 0, 0, 0, time.FixedZone("X", -5*3600))
	if got := TextureKey("id-1", ts); got != "textures/2025/03/id-1.png" {
		t.Fatalf("TextureKey = %q", got)
	}
}
