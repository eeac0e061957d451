package domain

import "encoding/json"

// Region is a map region supplied by the static GeoJSON collaborator.
// Read-only; the geometry is carried opaquely for the frontend.
type Region struct {
	Name     string          `json:"name"`
	GeoID    string          `json:"geo_id,omitempty"`
	Geometry json.RawMessage `json:"geometry,omitempty"`
}
