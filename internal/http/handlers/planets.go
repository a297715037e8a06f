package handlers

import (
	"errors"
	"net/http"

	"exolens/internal/planet"
)

type deriveResponse struct {
	Simulation planet.Simulation `json:"simulation"`
	Profile    planet.Profile    `json:"profile"`
}

// DerivePlanet turns catalogue observations into simulation parameters and
// the texture profile they imply.
func (a *App) DerivePlanet(w http.ResponseWriter, r *http.Request) {
	var params planet.AnalysisParams
	if err := decodeJSON(w, r, &params); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	sim, err := planet.DeriveSimulation(params)
	if errors.Is(err, planet.ErrIncompleteParameters) {
		a.error(w, http.StatusBadRequest, "Incomplete parameters", "pl_rade, st_teff, st_rad, st_logg and pl_orbper are required")
		return
	}
	if err != nil {
		a.error(w, http.StatusInternalServerError, "Failed to derive parameters", err.Error())
		return
	}
	a.json(w, http.StatusOK, deriveResponse{Simulation: sim, Profile: planet.Derive(sim.TextureRequest())})
}

// EarthSimilarity computes the Earth Similarity Index.
func (a *App) EarthSimilarity(w http.ResponseWriter, r *http.Request) {
	var in planet.ESIInput
	if err := decodeJSON(w, r, &in); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if in.Radius <= 0 || in.Temperature <= 0 || in.EscapeVelocity <= 0 || in.Mass < 0 {
		a.error(w, http.StatusBadRequest, "Invalid request", "radius, temperature and escape_velocity must be positive")
		return
	}
	a.json(w, http.StatusOK, planet.EarthSimilarity(in))
}

// PlanetProfile returns everything derived from texture parameters without
// generating an image.
func (a *App) PlanetProfile(w http.ResponseWriter, r *http.Request) {
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
	a.json(w, http.StatusOK, planet.Derive(req))
}
