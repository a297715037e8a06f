package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"exolens/internal/planet"
	"exolens/internal/providers/predictor"
)

func TestAnalyzePlanetPassesThroughStatus(t *testing.T) {
	classifier := &stubClassifier{res: &predictor.Result{Status: http.StatusUnprocessableEntity, Body: json.RawMessage(`{"detail":"bad input"}`)}}
	app := &App{Classifier: classifier}

	rec := postJSON(t, app.AnalyzePlanet, `{"pl_rade":1.2}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != `{"detail":"bad input"}` {
		t.Fatalf("body = %s", rec.Body.String())
	}
	if string(classifier.body) != `{"pl_rade":1.2}` {
		t.Fatalf("forwarded body = %s", classifier.body)
	}
}

func TestAnalyzePlanetErrors(t *testing.T) {
	app := &App{Classifier: &stubClassifier{err: errors.New("connection refused")}}

	if rec := postJSON(t, app.AnalyzePlanet, `not json`); rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid body status = %d", rec.Code)
	}
	rec := postJSON(t, app.AnalyzePlanet, `{}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("upstream failure status = %d", rec.Code)
	}
	if body := decode[errorResponse](t, rec); body.Message != "connection refused" {
		t.Fatalf("body = %+v", body)
	}
}

func TestDerivePlanet(t *testing.T) {
	app := &App{}
	rec := postJSON(t, app.DerivePlanet, `{"pl_orbper":365.25,"pl_rade":1,"st_teff":5778,"st_rad":1,"st_logg":4.44}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	res := decode[deriveResponse](t, rec)
	if res.Simulation.StarType != planet.StarTypeSunLike || !res.Simulation.IsHabitable {
		t.Fatalf("simulation = %+v", res.Simulation)
	}
	if res.Profile.SurfaceTemperature != 288 {
		t.Fatalf("surface temperature = %v", res.Profile.SurfaceTemperature)
	}
}

func TestDerivePlanetIncomplete(t *testing.T) {
	app := &App{}
	rec := postJSON(t, app.DerivePlanet, `{"pl_orbper":365.25,"pl_rade":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decode[errorResponse](t, rec); body.Error != "Incomplete parameters" {
		t.Fatalf("body = %+v", body)
	}
}

func TestEarthSimilarityHandler(t *testing.T) {
	app := &App{}
	rec := postJSON(t, app.EarthSimilarity, `{"radius":1,"mass":1,"temperature":288,"escape_velocity":11.2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if res := decode[planet.ESIResult](t, rec); res.Classification != "Earth Twin" {
		t.Fatalf("classification = %q", res.Classification)
	}

	if rec := postJSON(t, app.EarthSimilarity, `{"radius":1,"mass":1,"temperature":0,"escape_velocity":11.2}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("zero temperature status = %d", rec.Code)
	}
}

func TestPlanetProfile(t *testing.T) {
	app := &App{}
	rec := postJSON(t, app.PlanetProfile, `{"radius":11,"temperature":5778,"mass":300,"starType":"sun-like","planetType":"Gas Giant","distance":5.2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	p := decode[planet.Profile](t, rec)
	if p.PlanetType != planet.PlanetTypeGasGiant {
		t.Fatalf("planet type = %q", p.PlanetType)
	}
	if p.Prompt != planet.BuildTexturePrompt(11, 5778, 300, "sun-like", "Gas Giant", 5.2) {
		t.Fatal("profile prompt differs from BuildTexturePrompt")
	}
}
