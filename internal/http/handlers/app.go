package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"exolens/internal/infra"
	"exolens/internal/nasa"
	"exolens/internal/providers/predictor"
	"exolens/internal/texture"
)

const maxBodyBytes = 1 << 20

// ExoplanetArchive is the NASA archive client used by the handlers.
type ExoplanetArchive interface {
	System(ctx context.Context, name string) (*nasa.System, error)
	Search(ctx context.Context, query string, kind nasa.SearchKind) (*nasa.SearchResult, error)
	PopularSystems(ctx context.Context) (*nasa.PopularSystems, error)
}

// Classifier forwards analysis requests to the planet classifier.
type Classifier interface {
	Predict(ctx context.Context, body []byte) (*predictor.Result, error)
}

// App carries the dependencies shared by all handlers.
type App struct {
	Textures   *texture.Service
	Archive    ExoplanetArchive
	Classifier Classifier
	Logger     *infra.Logger
}

func (a *App) logger() *infra.Logger {
	if a.Logger == nil {
		return infra.DiscardLogger()
	}
	return a.Logger
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errMsg, message string) {
	a.json(w, code, errorResponse{Error: errMsg, Message: message})
}

var errEmptyBody = errors.New("request body is empty")

// decodeJSON reads a JSON body of at most maxBodyBytes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return nil, errEmptyBody
	}
	return body, nil
}
