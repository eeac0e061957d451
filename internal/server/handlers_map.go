package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/historymap/internal/domain"
	"github.com/pscheid92/historymap/internal/errors"
)

const (
	yearMin = 1920
	yearMax = 1991
)

type regionSummary struct {
	Name       string                     `json:"name"`
	GeoID      string                     `json:"geo_id"`
	Emotions   domain.EmotionDistribution `json:"emotions"`
	DiaryCount int                        `json:"diary_count"`
}

type mapResponse struct {
	Year    int             `json:"year"`
	Regions []regionSummary `json:"regions"`
}

type regionDetailResponse struct {
	Name         string                     `json:"name"`
	Year         int                        `json:"year"`
	Emotions     domain.EmotionDistribution `json:"emotions"`
	DiaryEntries []domain.DiaryEntry        `json:"diary_entries"`
	Stats        domain.PopulationStats     `json:"stats"`
}

// parseYear validates the :year path parameter against the covered period.
func parseYear(c echo.Context) (int, error) {
	raw := c.Param("year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.ValidationError("year must be an integer").WithContext("year", raw)
	}
	if year < yearMin || year > yearMax {
		return 0, errors.ValidationError("year is outside the covered period").
			WithContext("year", year).
			WithContext("min", yearMin).
			WithContext("max", yearMax)
	}
	return year, nil
}

func (s *Server) handleMap(c echo.Context) error {
	year, err := parseYear(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	regions := s.atlas.Regions()
	summaries := make([]regionSummary, 0, len(regions))

	for _, region := range regions {
		record, err := s.resolver.Resolve(ctx, year, region)
		if err != nil {
			// One broken region must not take down the whole map.
			slog.Warn("Region resolution failed", "region", region.Name, "year", year, "error", err)
			summaries = append(summaries, regionSummary{
				Name:     region.Name,
				GeoID:    region.GeoID,
				Emotions: domain.NeutralDistribution(),
			})
			continue
		}

		summaries = append(summaries, regionSummary{
			Name:       record.RegionName,
			GeoID:      record.GeoID,
			Emotions:   record.Emotions,
			DiaryCount: record.DiaryCount,
		})
	}

	return c.JSON(http.StatusOK, mapResponse{Year: year, Regions: summaries})
}

func (s *Server) handleRegion(c echo.Context) error {
	year, err := parseYear(c)
	if err != nil {
		return err
	}

	name := c.Param("region_name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	region, ok := s.atlas.RegionByName(name)
	if !ok {
		// Regions outside the atlas still get diary-backed data.
		region = domain.Region{Name: name}
	}

	record, err := s.resolver.Resolve(c.Request().Context(), year, region)
	if err != nil {
		return errors.InternalError("failed to resolve region", err).
			WithContext("region", name).
			WithContext("year", year)
	}

	entries := record.DiaryEntries
	if entries == nil {
		entries = []domain.DiaryEntry{}
	}

	return c.JSON(http.StatusOK, regionDetailResponse{
		Name:         record.RegionName,
		Year:         record.Year,
		Emotions:     record.Emotions,
		DiaryEntries: entries,
		Stats:        record.Stats,
	})
}
