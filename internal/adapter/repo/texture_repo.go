package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"exolens/internal/domain"
	"exolens/internal/infra"
	"exolens/internal/sqlinline"
)

// MaxListLimit caps history pages.
const MaxListLimit = 100

// TextureRepositoryPG implements domain.TextureRepository on PostgreSQL.
type TextureRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewTextureRepository constructs a repository on top of an executor.
func NewTextureRepository(sql infra.SQLExecutor) *TextureRepositoryPG {
	return &TextureRepositoryPG{sql: sql}
}

// EnsureSchema creates the textures table and its index when missing.
func (r *TextureRepositoryPG) EnsureSchema(ctx context.Context) error {
	for _, q := range []string{sqlinline.QCreateTexturesTable, sqlinline.QCreateTexturesCreatedAtIndex} {
		if _, err := r.sql.Exec(ctx, q); err != nil {
			return fmt.Errorf("repo: ensure textures schema: %w", err)
		}
	}
	return nil
}

// Create inserts texture, assigning an ID when it has none, and fills in
// CreatedAt from the database.
func (r *TextureRepositoryPG) Create(ctx context.Context, t *domain.Texture) error {
	if t == nil {
		return errors.New("repo: texture is required")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertTexture,
		t.ID, t.RequestID, t.PlanetType, t.StarType,
		t.Radius, t.Mass, t.StarTemperature, t.Distance, t.SurfaceTemperature,
		t.Prompt, t.Provider, string(t.Status), t.StorageKey, t.MIME, t.Bytes,
	)
	if err := row.Scan(&t.CreatedAt); err != nil {
		return fmt.Errorf("repo: insert texture: %w", err)
	}
	return nil
}

// GetByID returns domain.ErrNotFound for unknown or malformed IDs.
func (r *TextureRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Texture, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	t, err := scanTexture(r.sql.QueryRow(ctx, sqlinline.QSelectTextureByID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repo: select texture: %w", err)
	}
	return t, nil
}

// ListRecent returns the newest textures first. limit is clamped to
// 1..MaxListLimit.
func (r *TextureRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.Texture, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListRecentTextures, limit)
	if err != nil {
		return nil, fmt.Errorf("repo: list textures: %w", err)
	}
	defer rows.Close()

	textures := make([]domain.Texture, 0, limit)
	for rows.Next() {
		t, err := scanTexture(rows)
		if err != nil {
			return nil, fmt.Errorf("repo: scan texture: %w", err)
		}
		textures = append(textures, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo: list textures: %w", err)
	}
	return textures, nil
}

func scanTexture(row pgx.Row) (*domain.Texture, error) {
	var (
		t      domain.Texture
		status string
	)
	if err := row.Scan(
		&t.ID, &t.RequestID, &t.PlanetType, &t.StarType,
		&t.Radius, &t.Mass, &t.StarTemperature, &t.Distance, &t.SurfaceTemperature,
		&t.Prompt, &t.Provider, &status, &t.StorageKey, &t.MIME, &t.Bytes, &t.CreatedAt,
	); err != nil {
		return nil, err
	}
	t.Status = domain.TextureStatus(status)
	return &t, nil
}

var _ domain.TextureRepository = (*TextureRepositoryPG)(nil)
