package domain

import "context"

// TextureRepository persists the texture history.
type TextureRepository interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, texture *Texture) error
	GetByID(ctx context.Context, id string) (*Texture, error)
	ListRecent(ctx context.Context, limit int) ([]Texture, error)
}
