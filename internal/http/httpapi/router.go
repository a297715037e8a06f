package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"exolens/internal/http/handlers"
	"exolens/internal/infra"
	"exolens/internal/infra/geoip"
	mw "exolens/internal/middleware"
)

// Options configures the cross-cutting middleware of the router.
type Options struct {
	Logger          *infra.Logger
	Geo             geoip.CountryResolver
	AllowedOrigins  []string
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = infra.DiscardLogger()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		mw.RequestID,
		mw.Logger(*logger, opts.Geo),
		mw.CORS(origins),
	)

	r.Get("/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.With(mw.RateLimit(opts.RateLimitPerMin, time.Minute)).Post("/generate-texture", app.GenerateTexture)
		r.Route("/textures", func(r chi.Router) {
			r.Get("/", app.ListTextures)
			r.Get("/export", app.ExportTextures)
			r.Get("/{id}", app.GetTexture)
			r.Get("/{id}/image", app.TextureImage)
		})

		r.Route("/nasa", func(r chi.Router) {
			r.Get("/exoplanets", app.Exoplanets)
			r.Get("/search-exoplanets", app.SearchExoplanets)
			r.Get("/popular-systems", app.PopularSystems)
		})

		r.Post("/analyze-planet", app.AnalyzePlanet)

		r.Route("/planets", func(r chi.Router) {
			r.Post("/derive", app.DerivePlanet)
			r.Post("/esi", app.EarthSimilarity)
			r.Post("/profile", app.PlanetProfile)
		})
	})

	return r
}
