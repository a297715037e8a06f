package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"exolens/internal/domain"
	"exolens/internal/middleware"
	"exolens/internal/planet"
	"exolens/pkg/zip"
)

const defaultHistoryLimit = 20

type textureRequest struct {
	Radius      *float64 `json:"radius"`
	Temperature *float64 `json:"temperature"`
	Mass        *float64 `json:"mass"`
	StarType    string   `json:"starType"`
	PlanetType  string   `json:"planetType"`
	Distance    *float64 `json:"distance"`
}

// toPlanet validates the payload. Radius, mass and temperature must be
// positive; distance must be present but may be zero or negative.
func (req textureRequest) toPlanet() (planet.TextureRequest, error) {
	positive := []struct {
		name string
		v    *float64
	}{{"radius", req.Radius}, {"mass", req.Mass}, {"temperature", req.Temperature}}
	for _, f := range positive {
		if f.v == nil {
			return planet.TextureRequest{}, fmt.Errorf("%s is required", f.name)
		}
		if !finite(*f.v) || *f.v <= 0 {
			return planet.TextureRequest{}, fmt.Errorf("%s must be a positive number", f.name)
		}
	}
	if req.Distance == nil {
		return planet.TextureRequest{}, errors.New("distance is required")
	}
	if !finite(*req.Distance) {
		return planet.TextureRequest{}, errors.New("distance must be a number")
	}
	return planet.TextureRequest{
		Radius:          *req.Radius,
		StarTemperature: *req.Temperature,
		Mass:            *req.Mass,
		StarType:        req.StarType,
		PlanetType:      req.PlanetType,
		Distance:        *req.Distance,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// GenerateTexture builds the texture prompt and asks the image provider for a
// texture, answering with a placeholder when generation is unavailable.
func (a *App) GenerateTexture(w http.ResponseWriter, r *http.Request) {
	var body textureRequest
	if err := decodeJSON(w, r, &body); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	req, err := body.toPlanet()
	if err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	res, err := a.Textures.Generate(r.Context(), req, middleware.RequestIDFromContext(r.Context()))
	if err != nil {
		a.logger().Error().Err(err).Msg("generate texture failed")
		a.error(w, http.StatusInternalServerError, "Failed to generate texture", err.Error())
		return
	}
	a.json(w, http.StatusOK, res)
}

// ListTextures returns the most recent textures.
func (a *App) ListTextures(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			a.error(w, http.StatusBadRequest, "Invalid request", "limit must be between 1 and 100")
			return
		}
		limit = n
	}
	items, err := a.Textures.List(r.Context(), limit)
	if err != nil {
		a.historyError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items, "count": len(items)})
}

func (a *App) GetTexture(w http.ResponseWriter, r *http.Request) {
	tex, err := a.Textures.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.historyError(w, err)
		return
	}
	a.json(w, http.StatusOK, tex)
}

// TextureImage streams the stored PNG of a generated texture.
func (a *App) TextureImage(w http.ResponseWriter, r *http.Request) {
	tex, data, err := a.Textures.Image(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.historyError(w, err)
		return
	}
	mime := tex.MIME
	if mime == "" {
		mime = "image/png"
	}
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (a *App) historyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrHistoryDisabled):
		a.error(w, http.StatusServiceUnavailable, "History unavailable", "texture history is not configured")
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "Not found", "texture not found")
	default:
		a.logger().Error().Err(err).Msg("texture history failed")
		a.error(w, http.StatusInternalServerError, "Failed to load texture history", err.Error())
	}
}

// ExportTextures streams the recent history as a zip: manifest.json plus the
// stored image of every generated texture.
func (a *App) ExportTextures(w http.ResponseWriter, r *http.Request) {
	items, err := a.Textures.List(r.Context(), 100)
	if err != nil {
		a.historyError(w, err)
		return
	}

	manifest, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		a.error(w, http.StatusInternalServerError, "Failed to export textures", err.Error())
		return
	}
	files := []zip.File{{Name: "manifest.json", Data: manifest, Modified: time.Now().UTC()}}
	for _, tex := range items {
		if !tex.HasImage() {
			continue
		}
		data, err := a.Textures.ImageData(r.Context(), tex)
		if err != nil {
			a.logger().Warn().Err(err).Str("texture_id", tex.ID).Msg("export: skipping unreadable image")
			continue
		}
		files = append(files, zip.File{Name: "textures/" + tex.ID + ".png", Data: data, Modified: tex.CreatedAt})
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="textures.zip"`)
	if err := zip.Write(w, files); err != nil {
		a.logger().Error().Err(err).Msg("export: write archive failed")
	}
}
