package planet

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Earth reference values for the Earth Similarity Index.
const (
	EarthRadius         = 1.0  // Earth radii
	EarthMass           = 1.0  // Earth masses
	EarthTemperature    = 288  // K
	EarthEscapeVelocity = 11.2 // km/s
)

// ESI weights for radius, escape velocity and temperature.
var esiWeights = []float64{0.57, 0.26, 0.17}

// ESIInput are the planet properties compared against Earth.
type ESIInput struct {
	Radius         float64 `json:"radius"`
	Mass           float64 `json:"mass"`
	Temperature    float64 `json:"temperature"`
	EscapeVelocity float64 `json:"escape_velocity"`
}

// EarthESIInput returns Earth itself, which scores 100%.
func EarthESIInput() ESIInput {
	return ESIInput{Radius: EarthRadius, Mass: EarthMass, Temperature: EarthTemperature, EscapeVelocity: EarthEscapeVelocity}
}

// SimilarityBreakdown holds per-property similarities in percent.
type SimilarityBreakdown struct {
	Radius      float64 `json:"radius"`
	Density     float64 `json:"density"`
	Temperature float64 `json:"temperature"`
}

// ESIResult is the outcome of an Earth Similarity Index evaluation.
type ESIResult struct {
	ESI            float64             `json:"esi"` // percent
	Density        float64             `json:"density"`
	Classification string              `json:"classification"`
	Habitability   string              `json:"habitability"`
	Individual     SimilarityBreakdown `json:"individual"`
}

// Similarity is 1 - |(x - ref) / (x + ref)|.
func Similarity(x, ref float64) float64 {
	return 1 - math.Abs((x-ref)/(x+ref))
}

// EarthSimilarity computes the weighted geometric mean of the radius,
// escape-velocity and temperature similarities.
func EarthSimilarity(in ESIInput) ESIResult {
	radius := Similarity(in.Radius, EarthRadius)
	escape := Similarity(in.EscapeVelocity, EarthEscapeVelocity)
	temp := Similarity(in.Temperature, EarthTemperature)

	esi := stat.GeometricMean([]float64{radius, escape, temp}, esiWeights)
	class, habitability := classifyESI(esi)

	return ESIResult{
		ESI:            esi * 100,
		Density:        Density(in.Mass, in.Radius),
		Classification: class,
		Habitability:   habitability,
		Individual: SimilarityBreakdown{
			Radius:      radius * 100,
			Density:     escape * 100,
			Temperature: temp * 100,
		},
	}
}

func classifyESI(esi float64) (string, string) {
	switch {
	case esi > 0.9:
		return "Earth Twin", "Highly Habitable"
	case esi > 0.8:
		return "Earth-like", "Potentially Habitable"
	case esi > 0.6:
		return "Similar to Earth", "Marginally Habitable"
	case esi > 0.4:
		return "Somewhat Earth-like", "Low Habitability"
	default:
		return "Not Earth-like", "Unlikely Habitable"
	}
}
