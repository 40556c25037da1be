package dataprocessing

import (
	"sort"

	"creekwatch/pkg/contracts/domain"
)

// seriesFloorDate is the sort key for undated measurements; it predates every
// real sample so they land at the head of each series.
const seriesFloorDate = "1900-01-01"

// BuildStationDirectory derives station metadata from the coordinate table.
// It iterates the table rather than the measurement list so every configured
// station appears exactly once, measurement_count zero or not.
func BuildStationDirectory(measurements []domain.Measurement) domain.StationDirectory {
	stations := make(domain.StationDirectory, len(stationCoordinates))

	for code, coords := range stationCoordinates {
		analyteSet := make(map[string]struct{})
		count := 0
		for _, m := range measurements {
			if m.StationCode != code {
				continue
			}
			analyteSet[m.Analyte] = struct{}{}
			count++
		}

		analytes := make([]string, 0, len(analyteSet))
		for analyte := range analyteSet {
			analytes = append(analytes, analyte)
		}
		sort.Strings(analytes)

		stations[code] = domain.Station{
			Code:             code,
			Name:             "Station " + code,
			Longitude:        coords.Lon,
			Latitude:         coords.Lat,
			Analytes:         analytes,
			MeasurementCount: count,
		}
	}

	return stations
}

// BuildSeries regroups the flat measurement list by station then analyte and
// sorts each series ascending by date. The sort is stable so measurements
// sharing a date keep their input order, and the date strings compare
// lexicographically the same as chronologically because every instant has the
// identical ISO-8601 Z format and precision.
func BuildSeries(measurements []domain.Measurement) domain.MeasurementSeries {
	series := make(domain.MeasurementSeries)

	for _, m := range measurements {
		byAnalyte, ok := series[m.StationCode]
		if !ok {
			byAnalyte = make(map[string][]domain.SeriesPoint)
			series[m.StationCode] = byAnalyte
		}
		byAnalyte[m.Analyte] = append(byAnalyte[m.Analyte], domain.SeriesPoint{
			Date:   m.Date,
			Value:  m.Value,
			Source: m.Source,
		})
	}

	for _, byAnalyte := range series {
		for _, points := range byAnalyte {
			sort.SliceStable(points, func(i, j int) bool {
				return seriesSortKey(points[i].Date) < seriesSortKey(points[j].Date)
			})
		}
	}

	return series
}

func seriesSortKey(date *string) string {
	if date == nil {
		return seriesFloorDate
	}
	return *date
}

// BuildLatestValues takes the chronological tail of every station/analyte
// series and classifies it against the acceptable range.
func BuildLatestValues(series domain.MeasurementSeries) domain.LatestValues {
	latest := make(domain.LatestValues, len(series))

	for code, byAnalyte := range series {
		perStation := make(map[string]domain.LatestValue, len(byAnalyte))
		for analyte, points := range byAnalyte {
			if len(points) == 0 {
				continue
			}
			last := points[len(points)-1]
			perStation[analyte] = domain.LatestValue{
				Value:  last.Value,
				Date:   last.Date,
				Status: ClassifyStatus(analyte, last.Value),
				Unit:   UnitFor(analyte),
			}
		}
		latest[code] = perStation
	}

	return latest
}

// ClassifyStatus compares a value against the acceptable range for its
// analyte. Analytes without a configured range classify as no_range; the
// normalizer never lets such analytes through, but downstream consumers rely
// on the enum being total, so the fallback stays.
func ClassifyStatus(analyte string, value float64) domain.Status {
	r, ok := acceptableRanges[analyte]
	if !ok {
		return domain.StatusNoRange
	}
	if (r.Min != nil && value < *r.Min) || (r.Max != nil && value > *r.Max) {
		return domain.StatusOutsideRange
	}
	return domain.StatusAcceptable
}

// UnitFor returns the display unit for an analyte, nil when undefined.
func UnitFor(analyte string) *string {
	return acceptableRanges[analyte].Unit
}
