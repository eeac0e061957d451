// Package geo loads the static USSR region geometry from a GeoJSON file
// and exposes it as a read-only region collection.
package geo

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pscheid92/historymap/internal/domain"
)

type feature struct {
	ID         json.RawMessage `json:"id"`
	Properties struct {
		Name string `json:"name"`
	} `json:"properties"`
	Geometry json.RawMessage `json:"geometry"`
}

type featureCollection struct {
	Features []feature `json:"features"`
}

// Atlas is the immutable region collection loaded at startup.
type Atlas struct {
	regions []domain.Region
	byName  map[string]domain.Region
}

// Load reads the GeoJSON file at path. A missing file yields an empty
// atlas rather than an error, so the service can start without map data.
// A present-but-unparsable file is a hard error.
func Load(path string) (*Atlas, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Warn("GeoJSON file not found, serving empty region list", "path", path)
		return newAtlas(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read geojson: %w", err)
	}

	var fc featureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse geojson: %w", err)
	}

	regions := make([]domain.Region, 0, len(fc.Features))
	for _, f := range fc.Features {
		name := f.Properties.Name
		if name == "" {
			name = "Unknown Region"
		}
		regions = append(regions, domain.Region{
			Name:     name,
			GeoID:    featureID(f.ID),
			Geometry: f.Geometry,
		})
	}

	return newAtlas(regions), nil
}

func newAtlas(regions []domain.Region) *Atlas {
	byName := make(map[string]domain.Region, len(regions))
	for _, r := range regions {
		byName[strings.ToLower(r.Name)] = r
	}
	return &Atlas{regions: regions, byName: byName}
}

// Regions returns all regions in file order.
func (a *Atlas) Regions() []domain.Region {
	return a.regions
}

// RegionByName looks a region up case-insensitively.
func (a *Atlas) RegionByName(name string) (domain.Region, bool) {
	region, ok := a.byName[strings.ToLower(name)]
	return region, ok
}

// featureID renders the GeoJSON feature id, which may be a string or a
// number, as a plain string.
func featureID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
