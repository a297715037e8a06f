package nasa

import "strconv"

// Row is one record of the Planetary Systems (ps) table. Columns are nullable
// upstream, so every measurement is a pointer.
type Row struct {
	PlanetName      string   `json:"pl_name"`
	Hostname        string   `json:"hostname"`
	DiscoveryMethod *string  `json:"discoverymethod,omitempty"`
	DiscoveryYear   *int     `json:"disc_year,omitempty"`
	DiscoveryFacil  *string  `json:"disc_facility,omitempty"`
	Radius          *float64 `json:"pl_rade,omitempty"`
	Mass            *float64 `json:"pl_masse,omitempty"`
	Period          *float64 `json:"pl_orbper,omitempty"`
	SemiMajorAxis   *float64 `json:"pl_orbsmax,omitempty"`
	EqTemperature   *float64 `json:"pl_eqt,omitempty"`
	Insolation      *float64 `json:"pl_insol,omitempty"`
	Density         *float64 `json:"pl_dens,omitempty"`
	SpectralType    *string  `json:"st_spectype,omitempty"`
	StarTemperature *float64 `json:"st_teff,omitempty"`
	StarRadius      *float64 `json:"st_rad,omitempty"`
	StarMass        *float64 `json:"st_mass,omitempty"`
	StarLogG        *float64 `json:"st_logg,omitempty"`
	SystemDistance  *float64 `json:"sy_dist,omitempty"`
	VMagnitude      *float64 `json:"sy_vmag,omitempty"`
	DefaultFlag     *int     `json:"default_flag,omitempty"`
}

// Planet is a Row with the gaps filled in so it can drive the simulation.
type Planet struct {
	Name            string  `json:"name"`
	Radius          float64 `json:"radius"`      // Earth radii
	Mass            float64 `json:"mass"`        // Earth masses
	Period          float64 `json:"period"`      // days
	Distance        float64 `json:"distance"`    // AU
	Temperature     float64 `json:"temperature"` // K
	Discovered      string  `json:"discovered"`
	HostStar        string  `json:"hostStar"`
	StarRadius      float64 `json:"starRadius"`
	StarTemperature float64 `json:"starTemp"`
}

// System is the answer to a system lookup.
type System struct {
	System  string   `json:"system"`
	Planets []Planet `json:"planets"`
	Count   int      `json:"count"`
}

// SearchKind selects the column a search matches on.
type SearchKind string

const (
	SearchStar   SearchKind = "star"
	SearchPlanet SearchKind = "planet"
)

// ParseSearchKind accepts "planet"; anything else searches stars.
func ParseSearchKind(s string) SearchKind {
	if s == string(SearchPlanet) {
		return SearchPlanet
	}
	return SearchStar
}

// SearchResult groups matching planets by host star.
type SearchResult struct {
	Results map[string][]Row `json:"results"`
	Count   int              `json:"count"`
	Stars   int              `json:"stars"`
	Query   string           `json:"query"`
	Type    SearchKind       `json:"type"`
	Message string           `json:"message,omitempty"`
}

// PopularSystem is one aggregated row of the popular systems query.
type PopularSystem struct {
	Hostname        string   `json:"hostname"`
	PlanetCount     int      `json:"planet_count"`
	SpectralType    *string  `json:"st_spectype"`
	StarTemperature *float64 `json:"st_teff"`
	Distance        *float64 `json:"sy_dist"`
}

// PopularSystems is the answer to the popular systems query.
type PopularSystems struct {
	Systems []PopularSystem `json:"systems"`
	Count   int             `json:"count"`
}

const (
	defaultRadius          = 1.0
	defaultMass            = 1.0
	defaultPeriod          = 1.0
	defaultDistance        = 0.1
	defaultTemperature     = 288
	defaultStarRadius      = 1.0
	defaultStarTemperature = 5778
	unknownDiscovery       = "Unknown"
)

// Planet converts the row, substituting defaults for null or zero values.
func (r Row) Planet() Planet {
	discovered := unknownDiscovery
	if r.DiscoveryYear != nil && *r.DiscoveryYear != 0 {
		discovered = strconv.Itoa(*r.DiscoveryYear)
	}
	return Planet{
		Name:            r.PlanetName,
		Radius:          orDefault(r.Radius, defaultRadius),
		Mass:            orDefault(r.Mass, defaultMass),
		Period:          orDefault(r.Period, defaultPeriod),
		Distance:        orDefault(r.SemiMajorAxis, defaultDistance),
		Temperature:     orDefault(r.EqTemperature, defaultTemperature),
		Discovered:      discovered,
		HostStar:        r.Hostname,
		StarRadius:      orDefault(r.StarRadius, defaultStarRadius),
		StarTemperature: orDefault(r.StarTemperature, defaultStarTemperature),
	}
}

func orDefault(v *float64, fallback float64) float64 {
	if v == nil || *v == 0 {
		return fallback
	}
	return *v
}
