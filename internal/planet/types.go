package planet

// StarType enumerates the host star categories understood by the deriver.
type StarType string

const (
	StarTypeRedDwarf  StarType = "red-dwarf"
	StarTypeSunLike   StarType = "sun-like"
	StarTypeBlueGiant StarType = "blue-giant"
)

// PlanetType enumerates the planet categories understood by the deriver.
type PlanetType string

const (
	PlanetTypeGasGiant    PlanetType = "Gas Giant"
	PlanetTypeNeptuneLike PlanetType = "Neptune-like"
	PlanetTypeSuperEarth  PlanetType = "Super-Earth"
	PlanetTypeTerrestrial PlanetType = "Terrestrial"
)

// ParseStarType maps a label onto a StarType. Matching is exact; any other
// spelling yields StarTypeSunLike and false.
func ParseStarType(s string) (StarType, bool) {
	switch st := StarType(s); st {
	case StarTypeRedDwarf, StarTypeSunLike, StarTypeBlueGiant:
		return st, true
	}
	return StarTypeSunLike, false
}

// ParsePlanetType maps a label onto a PlanetType. Matching is exact; any
// other spelling yields PlanetTypeTerrestrial and false.
func ParsePlanetType(s string) (PlanetType, bool) {
	switch pt := PlanetType(s); pt {
	case PlanetTypeGasGiant, PlanetTypeNeptuneLike, PlanetTypeSuperEarth, PlanetTypeTerrestrial:
		return pt, true
	}
	return PlanetTypeTerrestrial, false
}

// IsGiant reports whether the type has no solid surface.
func (p PlanetType) IsGiant() bool {
	switch p {
	case PlanetTypeGasGiant, PlanetTypeNeptuneLike:
		return true
	case PlanetTypeSuperEarth, PlanetTypeTerrestrial:
		return false
	default:
		return false
	}
}
