package planet

import "math"

// StarRadius returns the canonical radius of a star type in solar radii.
func StarRadius(st StarType) float64 {
	switch st {
	case StarTypeRedDwarf:
		return RedDwarfRadius
	case StarTypeBlueGiant:
		return BlueGiantRadius
	case StarTypeSunLike:
		return SunLikeRadius
	default:
		return SunLikeRadius
	}
}

// StarRadiusFor looks up the radius for a raw label; anything unrecognised
// is treated as sun-like.
func StarRadiusFor(label string) float64 {
	st, _ := ParseStarType(label)
	return StarRadius(st)
}

// EquilibriumTemperature estimates a planet's surface temperature in Kelvin
// by scaling Earth's average temperature with the stellar radius, the stellar
// temperature and the orbital distance:
//
//	T = 288 * sqrt(R★) * (T★ / 5778) / sqrt(d)
//
// Distances at or below zero return DegenerateTemperature. NaN inputs are
// not guarded.
func EquilibriumTemperature(starTemperature, starRadius, distanceAU float64) float64 {
	if distanceAU <= 0 {
		return DegenerateTemperature
	}
	return EarthAverageTemperature * math.Sqrt(starRadius) * (starTemperature / SunTemperature) / math.Sqrt(distanceAU)
}

// GravityProxy is mass / radius² in Earth units. It only drives the wording
// of the prompt and is not a physical surface gravity.
func GravityProxy(mass, radius float64) float64 {
	return mass / (radius * radius)
}

// GravityClass is the qualitative bucket of a gravity proxy.
type GravityClass int

const (
	GravityModerate GravityClass = iota
	GravityHigh
	GravityLow
)

func (g GravityClass) String() string {
	switch g {
	case GravityHigh:
		return "high"
	case GravityLow:
		return "low"
	default:
		return "moderate"
	}
}

// ClassifyGravity buckets a gravity proxy: above 2 is high, below 0.5 is low,
// everything else (2 itself included) is moderate.
func ClassifyGravity(g float64) GravityClass {
	switch {
	case compressed(g, HighGravityAbove):
		return GravityHigh
	case g < LowGravityBelow:
		return GravityLow
	default:
		return GravityModerate
	}
}

// compressed is the single comparator behind every "compressed terrain"
// decision, whatever the limit of the caller.
func compressed(g, limit float64) bool {
	return g > limit
}

// GravityDescription is the generic gravity clause of the prompt.
func GravityDescription(g float64) string {
	switch ClassifyGravity(g) {
	case GravityHigh:
		return "with fine-grained compressed surface features due to high gravity, flat terrain dominates"
	case GravityLow:
		return "with large smooth features and tall formations due to low gravity"
	default:
		return "with moderate-scale surface features and varied topography"
	}
}

// TemperatureEffect describes the surface state implied by a temperature.
func TemperatureEffect(t float64) string {
	switch {
	case t > EffectMoltenAbove:
		return "molten lava surface with glowing magma cracks and volcanic eruptions"
	case t > EffectBasaltAbove:
		return "cracked basalt surface with volcanic features and dark lava flows"
	case t > EffectRegolithAbove:
		return "dry rocky regolith with impact craters and barren landscape"
	case t > EffectRockyAbove:
		return "rocky surface with weathering patterns and mineral deposits, potential for liquid water"
	case t > EffectPartialAbove:
		return "partially frozen surface with ice formations and frozen lakes"
	default:
		return "completely frozen icy crust with methane ice and nitrogen frost"
	}
}

// Lighting describes the illumination of the host star.
func Lighting(st StarType) string {
	switch st {
	case StarTypeRedDwarf:
		return "illuminated by dim reddish-orange light from a red dwarf star, warm color temperature, deep shadows in craters"
	case StarTypeBlueGiant:
		return "illuminated by intense blue-white light from a blue giant star, cool color temperature, sharp bright highlights"
	case StarTypeSunLike:
		return sunLikeLighting
	default:
		return sunLikeLighting
	}
}

const sunLikeLighting = "illuminated by bright yellow-white light from a sun-like star, neutral color temperature, balanced lighting"
