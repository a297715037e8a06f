package main

import (
	"context"
	"fmt"

	"exolens/internal/infra"
	"exolens/internal/providers/genai"
	"exolens/internal/providers/image"
	"exolens/internal/providers/imagen"
)

// newGenerator picks the image provider: Vertex AI when a service account is
// configured, otherwise the Gemini API when GOOGLE_API_KEY is set. A nil
// generator makes the texture service answer with placeholders.
func newGenerator(ctx context.Context, cfg *infra.Config, logger *infra.Logger) (image.Generator, error) {
	if cfg.HasServiceAccount() {
		ts, err := imagen.ServiceAccount(cfg.ServiceAccount).TokenSource(context.Background())
		if err != nil {
			return nil, err
		}
		client, err := imagen.NewClient(imagen.Options{
			Project:     cfg.GoogleProject,
			Location:    cfg.GoogleLocation,
			Model:       cfg.ImagenModel,
			TokenSource: ts,
			Logger:      logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info().Str("provider", client.Name()).Str("model", client.Model()).Msg("image provider configured")
		return client, nil
	}

	if cfg.GoogleAPIKey != "" {
		client, err := genai.NewClient(ctx, genai.Options{
			APIKey: cfg.GoogleAPIKey,
			Model:  cfg.GenAIImagenModel,
			Logger: logger,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		logger.Info().Str("provider", client.Name()).Str("model", client.Model()).Msg("image provider configured")
		return client, nil
	}

	logger.Warn().Msg("no Google credentials configured, serving placeholder textures")
	return nil, nil
}
