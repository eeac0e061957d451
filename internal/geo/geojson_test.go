package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"id": "RU-MOW",
			"properties": {"name": "Москва"},
			"geometry": {"type": "Point", "coordinates": [37.6, 55.7]}
		},
		{
			"id": 17,
			"properties": {"name": "Ленинград"},
			"geometry": {"type": "Point", "coordinates": [30.3, 59.9]}
		},
		{
			"properties": {}
		}
	]
}`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regions.geojson")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	atlas, err := Load(writeSample(t, sampleGeoJSON))
	require.NoError(t, err)

	regions := atlas.Regions()
	require.Len(t, regions, 3)

	assert.Equal(t, "Москва", regions[0].Name)
	assert.Equal(t, "RU-MOW", regions[0].GeoID)
	assert.NotEmpty(t, regions[0].Geometry)

	// Numeric feature ids are rendered as strings.
	assert.Equal(t, "17", regions[1].GeoID)

	// Features without a name get the placeholder.
	assert.Equal(t, "Unknown Region", regions[2].Name)
	assert.Empty(t, regions[2].GeoID)
}

func TestLoad_MissingFileYieldsEmptyAtlas(t *testing.T) {
	atlas, err := Load(filepath.Join(t.TempDir(), "does-not-exist.geojson"))
	require.NoError(t, err)
	assert.Empty(t, atlas.Regions())
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeSample(t, "{not geojson"))
	assert.Error(t, err)
}

func TestRegionByName_CaseInsensitive(t *testing.T) {
	atlas, err := Load(writeSample(t, sampleGeoJSON))
	require.NoError(t, err)

	region, ok := atlas.RegionByName("мОсКвА")
	require.True(t, ok)
	assert.Equal(t, "Москва", region.Name)

	_, ok = atlas.RegionByName("Сибирь")
	assert.False(t, ok)
}
