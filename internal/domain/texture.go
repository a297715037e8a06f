package domain

import "time"

// TextureStatus records whether a texture came from the image model or the
// placeholder fallback.
type TextureStatus string

const (
	TextureStatusGenerated   TextureStatus = "generated"
	TextureStatusPlaceholder TextureStatus = "placeholder"
)

// Texture is one generate-texture call as kept in the history.
type Texture struct {
	ID                 string        `json:"id"`
	RequestID          string        `json:"request_id,omitempty"`
	PlanetType         string        `json:"planet_type"`
	StarType           string        `json:"star_type"`
	Radius             float64       `json:"radius"`
	Mass               float64       `json:"mass"`
	StarTemperature    float64       `json:"star_temperature"`
	Distance           float64       `json:"distance"`
	SurfaceTemperature float64       `json:"surface_temperature"`
	Prompt             string        `json:"prompt"`
	Provider           string        `json:"provider"`
	Status             TextureStatus `json:"status"`
	StorageKey         string        `json:"storage_key,omitempty"`
	MIME               string        `json:"mime,omitempty"`
	Bytes              int64         `json:"bytes"`
	CreatedAt          time.Time     `json:"created_at"`
}

// HasImage reports whether a stored image belongs to the record.
func (t Texture) HasImage() bool {
	return t.StorageKey != ""
}
