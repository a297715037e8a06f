package planet

import (
	"errors"
	"math"
)

// ErrIncompleteParameters is returned when a required catalogue value is
// missing, zero or not a finite number.
var ErrIncompleteParameters = errors.New("planet: incomplete analysis parameters")

// AnalysisParams are catalogue-style observations of a transiting planet,
// named after the NASA Exoplanet Archive columns.
type AnalysisParams struct {
	OrbitalPeriod      float64 `json:"pl_orbper"`  // days
	PlanetRadius       float64 `json:"pl_rade"`    // Earth radii
	TransitDepth       float64 `json:"pl_trandep"` // ppm
	StellarTemperature float64 `json:"st_teff"`    // K
	StellarRadius      float64 `json:"st_rad"`     // solar radii
	StellarLogG        float64 `json:"st_logg"`    // log10(cm/s²)
}

// Zone is an orbital distance range in AU.
type Zone struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether d lies inside the zone, bounds included.
func (z Zone) Contains(d float64) bool {
	return d >= z.Min && d <= z.Max
}

// Simulation holds the parameters a texture request is built from, together
// with the classification shown next to the preview.
type Simulation struct {
	Radius          float64    `json:"radius"`
	Mass            float64    `json:"mass"`
	StarTemperature float64    `json:"temperature"`
	StarType        StarType   `json:"starType"`
	Distance        float64    `json:"distance"`
	StellarMass     float64    `json:"stellarMass"`
	PlanetType      PlanetType `json:"planetType"`
	Density         float64    `json:"density"`
	HabitableZone   Zone       `json:"habitableZone"`
	IsHabitable     bool       `json:"isHabitable"`
}

// TextureRequest converts the simulation into prompt parameters.
func (s Simulation) TextureRequest() TextureRequest {
	return TextureRequest{
		Radius:          s.Radius,
		StarTemperature: s.StarTemperature,
		Mass:            s.Mass,
		StarType:        string(s.StarType),
		PlanetType:      string(s.PlanetType),
		Distance:        s.Distance,
	}
}

// StellarMass estimates a star's mass in solar masses from its surface
// gravity and radius, relative to the Sun: M = (g / g☉) * R².
func StellarMass(logg, radiusSolar float64) float64 {
	return math.Pow(10, logg) / math.Pow(10, SolarLogG) * radiusSolar * radiusSolar
}

// OrbitalDistance applies Kepler's third law: a³ = P² M with P in years,
// M in solar masses and a in AU.
func OrbitalDistance(periodDays, stellarMass float64) float64 {
	years := periodDays / DaysPerYear
	return math.Cbrt(years * years * stellarMass)
}

// ClassifyStar buckets a star by effective temperature.
func ClassifyStar(teff float64) StarType {
	switch {
	case teff < RedDwarfMaxTeff:
		return StarTypeRedDwarf
	case teff < SunLikeMaxTeff:
		return StarTypeSunLike
	default:
		return StarTypeBlueGiant
	}
}

// ClassifyPlanet buckets a planet by radius. Super-Earth is never produced
// here; it is only reachable through an explicit label.
func ClassifyPlanet(radius float64) PlanetType {
	switch {
	case radius < TerrestrialBelow:
		return PlanetTypeTerrestrial
	case radius < NeptuneBelow:
		return PlanetTypeNeptuneLike
	default:
		return PlanetTypeGasGiant
	}
}

// Density returns the bulk density in g/cm³ scaled from Earth's.
func Density(mass, radius float64) float64 {
	d := mass / (radius * radius * radius) * EarthDensity
	if math.IsNaN(d) {
		return 0
	}
	return d
}

var habitableZones = map[StarType]Zone{
	StarTypeRedDwarf:  {Min: 0.1, Max: 0.4},
	StarTypeSunLike:   {Min: 0.8, Max: 1.5},
	StarTypeBlueGiant: {Min: 5, Max: 25},
}

// HabitableZone returns the liquid-water orbit range for a star type.
func HabitableZone(st StarType) Zone {
	if z, ok := habitableZones[st]; ok {
		return z
	}
	return habitableZones[StarTypeSunLike]
}

// DeriveSimulation turns catalogue observations into simulation parameters.
// The transit depth is carried for the classifier but not used here.
func DeriveSimulation(p AnalysisParams) (Simulation, error) {
	for _, v := range []float64{p.PlanetRadius, p.StellarTemperature, p.StellarRadius, p.StellarLogG, p.OrbitalPeriod} {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Simulation{}, ErrIncompleteParameters
		}
	}

	stellarMass := StellarMass(p.StellarLogG, p.StellarRadius)
	distance := OrbitalDistance(p.OrbitalPeriod, stellarMass)
	if math.IsNaN(distance) {
		distance = 1
	}
	mass := p.PlanetRadius * p.PlanetRadius
	if math.IsNaN(mass) {
		mass = 1
	}
	st := ClassifyStar(p.StellarTemperature)
	zone := HabitableZone(st)

	return Simulation{
		Radius:          p.PlanetRadius,
		Mass:            mass,
		StarTemperature: p.StellarTemperature,
		StarType:        st,
		Distance:        distance,
		StellarMass:     stellarMass,
		PlanetType:      ClassifyPlanet(p.PlanetRadius),
		Density:         Density(mass, p.PlanetRadius),
		HabitableZone:   zone,
		IsHabitable:     zone.Contains(distance),
	}, nil
}
