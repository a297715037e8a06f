package handlers

import (
	"encoding/json"
	"net/http"
)

// AnalyzePlanet forwards the body to the classifier and relays its answer,
// status code included. An unreachable or misbehaving classifier is a 502.
func (a *App) AnalyzePlanet(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil || !json.Valid(body) {
		a.error(w, http.StatusBadRequest, "Invalid request", "body must be a JSON document")
		return
	}
	res, err := a.Classifier.Predict(r.Context(), body)
	if err != nil {
		a.logger().Error().Err(err).Msg("planet classifier failed")
		a.error(w, http.StatusBadGateway, "Failed to analyze planet", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Status)
	_, _ = w.Write(res.Body)
}
