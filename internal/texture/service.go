// Package texture turns planet parameters into a texture, falling back to a
// placeholder image whenever the image model is unavailable.
package texture

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"

	"exolens/internal/domain"
	"exolens/internal/infra"
	"exolens/internal/planet"
	"exolens/internal/providers/image"
	"exolens/internal/storage"
)

const (
	MessageGenerated     = "AI-generated texture successfully created"
	MessageNotConfigured = "Google API key or service account not configured. Using placeholder image."
	MessageFailed        = "AI generation failed, using placeholder image."
)

// Result is the outcome of a texture request.
type Result struct {
	Success    bool           `json:"success"`
	Prompt     string         `json:"prompt"`
	TextureURL string         `json:"textureUrl"`
	Message    string         `json:"message"`
	Profile    planet.Profile `json:"profile"`
	ID         string         `json:"id,omitempty"`
	Provider   string         `json:"provider"`
}

// Options wires the service. Generator, Repository and Store are optional.
type Options struct {
	Generator  image.Generator
	Repository domain.TextureRepository
	Store      *storage.FileStore
	Logger     *infra.Logger
	Now        func() time.Time
}

// Service generates textures and records them in the history.
type Service struct {
	generator   image.Generator
	placeholder *image.Placeholder
	repo        domain.TextureRepository
	store       *storage.FileStore
	logger      *infra.Logger
	now         func() time.Time
}

func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = infra.DiscardLogger()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		generator:   opts.Generator,
		placeholder: image.NewPlaceholder(),
		repo:        opts.Repository,
		store:       opts.Store,
		logger:      logger,
		now:         now,
	}
}

// HistoryEnabled reports whether textures are recorded.
func (s *Service) HistoryEnabled() bool {
	return s.repo != nil
}

// Generate derives the prompt for req and produces a texture. It only fails
// when ctx is done; provider errors degrade to the placeholder.
func (s *Service) Generate(ctx context.Context, req planet.TextureRequest, requestID string) (*Result, error) {
	profile := planet.Derive(req)
	res := &Result{Success: true, Prompt: profile.Prompt, Profile: profile}

	var asset *image.Asset
	if s.generator == nil {
		s.logger.Warn().Str("request_id", requestID).Msg("texture: no image provider configured, returning placeholder")
		res.Message = MessageNotConfigured
	} else {
		assets, err := s.generator.Generate(ctx, image.GenerateRequest{
			Prompt:      profile.Prompt,
			Quantity:    1,
			AspectRatio: "1:1",
			RequestID:   requestID,
		})
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if err != nil || len(assets) == 0 || len(assets[0].Data) == 0 {
			s.logger.Error().Err(err).
				Str("request_id", requestID).
				Str("provider", s.generator.Name()).
				Msg("texture: image generation failed, returning placeholder")
			res.Message = MessageFailed
		} else {
			asset = &assets[0]
			res.Message = MessageGenerated
			res.Provider = s.generator.Name()
			res.TextureURL = asset.URL
		}
	}

	if asset == nil {
		ph, err := s.placeholder.Generate(ctx, image.GenerateRequest{Prompt: profile.Prompt})
		if err != nil {
			return nil, err
		}
		res.Provider = s.placeholder.Name()
		res.TextureURL = ph[0].URL
	}

	res.ID = s.record(ctx, req, profile, res, asset, requestID)
	return res, nil
}

// record stores the texture in the history and returns its ID, or "" when
// history is disabled or the write fails.
func (s *Service) record(ctx context.Context, req planet.TextureRequest, profile planet.Profile, res *Result, asset *image.Asset, requestID string) string {
	if s.repo == nil {
		return ""
	}
	tex := &domain.Texture{
		ID:                 uuid.NewString(),
		RequestID:          requestID,
		PlanetType:         string(profile.PlanetType),
		StarType:           string(profile.StarType),
		Radius:             req.Radius,
		Mass:               req.Mass,
		StarTemperature:    req.StarTemperature,
		Distance:           req.Distance,
		SurfaceTemperature: profile.SurfaceTemperature,
		Prompt:             profile.Prompt,
		Provider:           res.Provider,
		Status:             domain.TextureStatusPlaceholder,
	}
	if asset != nil {
		tex.Status = domain.TextureStatusGenerated
		tex.MIME = asset.Format
		tex.Bytes = int64(len(asset.Data))
		if s.store != nil {
			key, err := s.store.Write(ctx, storage.TextureKey(tex.ID, s.now()), asset.Data)
			if err != nil {
				s.logger.Warn().Err(err).Str("texture_id", tex.ID).Msg("texture: store image failed")
			} else {
				tex.StorageKey = key
			}
		}
	}
	if err := s.repo.Create(ctx, tex); err != nil {
		s.logger.Warn().Err(err).Str("texture_id", tex.ID).Msg("texture: record history failed")
		return ""
	}
	return tex.ID
}

// List returns recent history entries.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Texture, error) {
	if s.repo == nil {
		return nil, domain.ErrHistoryDisabled
	}
	return s.repo.ListRecent(ctx, limit)
}

// Get returns one history entry.
func (s *Service) Get(ctx context.Context, id string) (*domain.Texture, error) {
	if s.repo == nil {
		return nil, domain.ErrHistoryDisabled
	}
	return s.repo.GetByID(ctx, id)
}

// Image returns the stored image of a history entry.
func (s *Service) Image(ctx context.Context, id string) (*domain.Texture, []byte, error) {
	tex, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.ImageData(ctx, *tex)
	if err != nil {
		return nil, nil, err
	}
	return tex, data, nil
}

// ImageData reads the stored image of an already loaded record.
func (s *Service) ImageData(ctx context.Context, tex domain.Texture) ([]byte, error) {
	if !tex.HasImage() || s.store == nil {
		return nil, domain.ErrNotFound
	}
	data, err := s.store.Read(ctx, tex.StorageKey)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
