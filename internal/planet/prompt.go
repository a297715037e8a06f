package planet

import (
	"fmt"
	"math"
	"strconv"
)

// TextureRequest carries the parameters of a texture prompt. StarType and
// PlanetType are raw labels; unknown labels fall back to sun-like and
// Terrestrial respectively.
type TextureRequest struct {
	Radius          float64 `json:"radius"`      // Earth radii
	StarTemperature float64 `json:"temperature"` // K, host star
	Mass            float64 `json:"mass"`        // Earth masses
	StarType        string  `json:"starType"`    // red-dwarf | sun-like | blue-giant
	PlanetType      string  `json:"planetType"`  // Gas Giant | Neptune-like | Super-Earth | Terrestrial
	Distance        float64 `json:"distance"`    // AU
}

// Profile is everything derived from a TextureRequest.
type Profile struct {
	StarType            StarType   `json:"starType"`
	PlanetType          PlanetType `json:"planetType"`
	StarRadius          float64    `json:"starRadius"`
	SurfaceTemperature  float64    `json:"surfaceTemperature"`
	GravityProxy        float64    `json:"gravityProxy"`
	TemperatureEffect   string     `json:"temperatureEffect"`
	BaseDescription     string     `json:"baseDescription"`
	SurfaceFeatures     string     `json:"surfaceFeatures"`
	Atmosphere          string     `json:"atmosphere"`
	TextureStyle        string     `json:"textureStyle"`
	LightingDescription string     `json:"lightingDescription"`
	GravityDescription  string     `json:"gravityDescription"`
	Prompt              string     `json:"prompt"`
}

// BuildTexturePrompt returns the image-generation prompt for the given
// parameters. It never fails; non-finite inputs propagate into the text.
func BuildTexturePrompt(radius, starTemperature, mass float64, starType, planetType string, distance float64) string {
	return Derive(TextureRequest{
		Radius:          radius,
		StarTemperature: starTemperature,
		Mass:            mass,
		StarType:        starType,
		PlanetType:      planetType,
		Distance:        distance,
	}).Prompt
}

// Derive computes the full Profile of a request.
func Derive(req TextureRequest) Profile {
	st, _ := ParseStarType(req.StarType)
	pt, _ := ParsePlanetType(req.PlanetType)

	p := Profile{
		StarType:   st,
		PlanetType: pt,
		StarRadius: StarRadius(st),
	}
	p.SurfaceTemperature = EquilibriumTemperature(req.StarTemperature, p.StarRadius, req.Distance)
	p.GravityProxy = GravityProxy(req.Mass, req.Radius)
	p.TemperatureEffect = TemperatureEffect(p.SurfaceTemperature)

	f := surfaceFragments(pt, p.SurfaceTemperature, p.GravityProxy, p.TemperatureEffect)
	p.BaseDescription = f.base
	p.SurfaceFeatures = f.features
	p.Atmosphere = f.atmosphere
	p.TextureStyle = f.style
	p.LightingDescription = Lighting(st)
	p.GravityDescription = GravityDescription(p.GravityProxy)
	p.Prompt = renderPrompt(p, req.StarTemperature, req.Distance)
	return p
}

type fragments struct {
	base       string
	features   string
	atmosphere string
	style      string
}

func surfaceFragments(pt PlanetType, temp, gravity float64, effect string) fragments {
	switch pt {
	case PlanetTypeGasGiant:
		return gasGiantFragments(gravity)
	case PlanetTypeNeptuneLike:
		return iceGiantFragments(gravity)
	case PlanetTypeSuperEarth:
		return superEarthFragments(temp, gravity, effect)
	case PlanetTypeTerrestrial:
		return terrestrialFragments(temp, effect)
	default:
		return terrestrialFragments(temp, effect)
	}
}

func gasGiantFragments(gravity float64) fragments {
	storms := "large swirling"
	if compressed(gravity, HighGravityAbove) {
		storms = "fine-grained compressed"
	}
	return fragments{
		base:       "gas giant",
		features:   "turbulent atmospheric storms, horizontal cloud bands similar to Jupiter with " + storms + " storm systems, great red spot-like vortices",
		atmosphere: "thick hydrogen and helium atmosphere with dramatic color variations from ammonia, methane, and phosphorus compounds",
		style:      "seamless tileable texture map with bold horizontal banded patterns, smooth color transitions between bands",
	}
}

func iceGiantFragments(gravity float64) fragments {
	storms := "expanded"
	if compressed(gravity, IceGiantCompressionAbove) {
		storms = "compressed"
	}
	return fragments{
		base:       "ice giant",
		features:   "methane-rich clouds with subtle horizontal atmospheric bands, " + storms + " storm features, high-altitude cirrus-like formations",
		atmosphere: "thick atmosphere dominated by methane giving deep blue-green coloration with wispy white clouds",
		style:      "seamless tileable texture map with smooth gradients, blue-green dominant palette, subtle cloud streaks",
	}
}

func superEarthFragments(temp, gravity float64, effect string) fragments {
	high := compressed(gravity, HighGravityAbove)
	switch {
	case temp < FreezingPoint:
		relief := "jagged ice mountains"
		if high {
			relief = "flat ice plains"
		}
		return fragments{
			base:       "large frozen rocky super-Earth",
			features:   "frozen ocean surfaces, massive ice sheets with cracks and pressure ridges, " + relief + ", exposed rocky continents with snow cover",
			atmosphere: "thin atmosphere creating frost patterns and ice crystal formations",
			style:      "seamless tileable texture map with white-blue ice textures, glacial flow patterns, polar caps",
		}
	case temp < BoilingPoint:
		relief := "mountain ranges"
		if high {
			relief = "flat plains"
		}
		return fragments{
			base:       "large Earth-like super-Earth with liquid water",
			features:   "vast blue oceans with wave patterns, large continents with varied biomes, mountain ranges, river systems, forest regions, desert areas, polar ice caps, " + relief,
			atmosphere: "white cloud formations, cyclone systems, scattered cumulus clouds",
			style:      "seamless tileable texture map with vivid blue oceans, green-brown continents, white clouds as overlay",
		}
	default:
		return fragments{
			base:       "large hot volcanic super-Earth",
			features:   effect + ", active volcanoes with lava flows, extensive volcanic plains, impact craters, no water bodies",
			atmosphere: "volcanic ash clouds and heat haze patterns",
			style:      "seamless tileable texture map with red-orange volcanic glow, dark basalt textures, dramatic lava rivers",
		}
	}
}

func terrestrialFragments(temp float64, effect string) fragments {
	switch {
	case temp < FrozenBelow:
		return fragments{
			base:       "frozen terrestrial world",
			features:   effect + ", completely frozen surface with methane and nitrogen ice, no liquid water, smooth ice plains with minimal features",
			atmosphere: "very thin atmosphere creating minimal frost patterns",
			style:      "seamless tileable texture map with pale blue-white ice, smooth uniform textures, subtle albedo variations",
		}
	case temp < FreezingPoint:
		return fragments{
			base:       "cold terrestrial world",
			features:   effect + ", large polar ice caps extending toward equator, frozen regions, exposed rocky terrain, glacial formations",
			atmosphere: "thin atmosphere with ice crystal cloud patterns",
			style:      "seamless tileable texture map with ice-dominated palette, polar regions clearly visible, rocky patches",
		}
	case temp < BoilingPoint:
		return fragments{
			base:       "Earth-like terrestrial world with liquid water",
			features:   effect + ", blue liquid water oceans, diverse continents with varied terrain, mountain ranges, valleys, plains, river deltas, polar ice caps",
			atmosphere: "scattered white clouds, storm systems, dynamic weather patterns",
			style:      "seamless tileable texture map with vivid blue oceans (60-70% coverage), green and brown landmasses, white polar caps, cloud layer",
		}
	case temp < HotDryBelow:
		return fragments{
			base:       "hot, dry terrestrial world",
			features:   effect + ", extensive desert terrain with dune fields, no surface water, deep impact craters, weathered highlands",
			atmosphere: "hot dry atmosphere with occasional dust storm patterns",
			style:      "seamless tileable texture map with red-brown desert tones, orange sand, dark rocky regions, minimal contrast",
		}
	case temp < VolcanicBelow:
		return fragments{
			base:       "very hot volcanic terrestrial world",
			features:   effect + ", scorched surface with thermal stress cracks, extreme volcanic activity, glowing hot spots, lava lakes",
			atmosphere: "thick toxic atmosphere with sulfur-tinted clouds",
			style:      "seamless tileable texture map with orange-red heat signature, dark volcanic plains, glowing lava features",
		}
	default:
		return fragments{
			base:       "extremely hot lava world",
			features:   effect + ", molten surface with lava rivers, constant volcanic eruptions, glowing magma oceans, semi-solid crust plates floating on magma",
			atmosphere: "ultra-thick toxic atmosphere with vaporized rock creating orange-red haze",
			style:      "seamless tileable texture map with bright glowing lava, deep red-orange color scheme, high contrast between molten and cooling areas",
		}
	}
}

const promptTemplate = `Realistic flat texture map of a %s, designed for 3D sphere wrapping.

FORMAT: Seamless, tileable, SQUARE 2D texture map (1:1 aspect ratio). The texture MUST be designed so the left edge connects perfectly to the right edge to allow for horizontal repeating.

STYLE: %s, photorealistic surface rendering with accurate color grading. Natural lighting with soft shadows. High detail level showing microscopic surface variations.

SURFACE FEATURES: %s, %s. Features should be distributed evenly across the square map.

ATMOSPHERE & WEATHER: %s. %s

COLOR & LIGHTING: %s. Planet's estimated surface temperature is %sK (from a %sK star at %s AU), which directly influences the color palette and surface state.

TECHNICAL SPECIFICATIONS:
- Seamless horizontal wrap (left edge connects to right edge)
- No borders, frames, text overlays, or UI elements
- No planet sphere visible - this is a flat unwrapped surface map
- High resolution suitable for close-up 3D rendering
- Clean, scientifically accurate representation

OUTPUT: Pure square texture map only, ready for 3D texture application.
-
`

const cloudLayerNote = "Clouds should be rendered as a semi-transparent layer if present."

func renderPrompt(p Profile, starTemperature, distance float64) string {
	clouds := ""
	if !p.PlanetType.IsGiant() {
		clouds = cloudLayerNote
	}
	return fmt.Sprintf(promptTemplate,
		p.BaseDescription,
		p.TextureStyle,
		p.SurfaceFeatures, p.GravityDescription,
		p.Atmosphere, clouds,
		p.LightingDescription,
		FormatKelvin(p.SurfaceTemperature),
		formatNumber(starTemperature),
		formatNumber(distance),
	)
}

// FormatKelvin rounds a temperature to the nearest whole Kelvin.
func FormatKelvin(t float64) string {
	return strconv.FormatFloat(math.Round(t), 'f', 0, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
