package handlers

import (
	"errors"
	"net/http"

	"exolens/internal/nasa"
)

func (a *App) Exoplanets(w http.ResponseWriter, r *http.Request) {
	sys, err := a.Archive.System(r.Context(), r.URL.Query().Get("system"))
	if err != nil {
		a.logger().Error().Err(err).Msg("fetch exoplanet system failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch exoplanet data", err.Error())
		return
	}
	a.json(w, http.StatusOK, sys)
}

func (a *App) SearchExoplanets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := a.Archive.Search(r.Context(), q.Get("q"), nasa.ParseSearchKind(q.Get("type")))
	if errors.Is(err, nasa.ErrEmptyQuery) {
		a.error(w, http.StatusBadRequest, "Search query is required", "")
		return
	}
	if err != nil {
		a.logger().Error().Err(err).Msg("search exoplanets failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch exoplanet data", err.Error())
		return
	}
	a.json(w, http.StatusOK, res)
}

func (a *App) PopularSystems(w http.ResponseWriter, r *http.Request) {
	res, err := a.Archive.PopularSystems(r.Context())
	if err != nil {
		a.logger().Error().Err(err).Msg("fetch popular systems failed")
		a.error(w, http.StatusInternalServerError, "Failed to fetch popular systems", err.Error())
		return
	}
	a.json(w, http.StatusOK, res)
}
