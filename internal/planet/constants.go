package planet

// Reference values used by the equilibrium temperature estimate.
const (
	EarthAverageTemperature = 288.0  // K
	SunTemperature          = 5778.0 // K

	// DegenerateTemperature is reported for orbits at or inside the star
	// (distance <= 0 AU) instead of dividing by zero.
	DegenerateTemperature = 10000.0
)

// Host star radii in solar radii.
const (
	RedDwarfRadius  = 0.3
	SunLikeRadius   = 1.0
	BlueGiantRadius = 10.0
)

// Surface-state ladder used to pick the Terrestrial and Super-Earth branches.
// Comparisons are strict "<", so a boundary value belongs to the warmer branch.
const (
	FrozenBelow   = 200.0
	FreezingPoint = 273.0
	BoilingPoint  = 373.0
	HotDryBelow   = 600.0
	VolcanicBelow = 1000.0
)

// Temperature-effect ladder. It is authored independently from the
// surface-state ladder and uses strict ">" comparisons.
const (
	EffectMoltenAbove   = 1500.0
	EffectBasaltAbove   = 800.0
	EffectRegolithAbove = 400.0
	EffectRockyAbove    = 273.0
	EffectPartialAbove  = 200.0
)

// Gravity proxy (mass / radius², Earth units) thresholds.
const (
	HighGravityAbove         = 2.0
	LowGravityBelow          = 0.5
	IceGiantCompressionAbove = 1.5
)

// Laboratory constants for the simulation derivation.
const (
	SolarLogG        = 4.44
	DaysPerYear      = 365.25
	EarthDensity     = 5.51 // g/cm³
	RedDwarfMaxTeff  = 4000.0
	SunLikeMaxTeff   = 7000.0
	TerrestrialBelow = 1.6 // Earth radii
	NeptuneBelow     = 5.0 // Earth radii
)
