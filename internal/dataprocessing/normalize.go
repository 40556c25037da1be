package dataprocessing

import (
	"strconv"
	"strings"

	"creekwatch/pkg/contracts/domain"
)

// NormalizeRow converts one raw spreadsheet row into a canonical measurement.
// The second return value is false when the row is filtered out. Filtered
// rows are expected data-quality noise (missing fields, unknown stations,
// unmapped analytes, non-numeric results) and are dropped silently rather
// than reported as errors.
//
// Both sheet variants funnel through here; the only schema difference between
// them is which column held the numeric result, and the parser has already
// resolved that into RawRow.Result.
func NormalizeRow(row domain.RawRow) (domain.Measurement, bool) {
	station := strings.TrimSpace(row.StationCode)
	analyte := strings.TrimSpace(row.AnalyteName)
	if station == "" || analyte == "" {
		return domain.Measurement{}, false
	}

	if !KnownStation(station) {
		return domain.Measurement{}, false
	}

	result := strings.TrimSpace(row.Result)
	if result == "" {
		return domain.Measurement{}, false
	}

	value, err := strconv.ParseFloat(result, 64)
	if err != nil {
		return domain.Measurement{}, false
	}

	canonical := CanonicalAnalyte(analyte)
	if _, ok := RangeFor(canonical); !ok {
		return domain.Measurement{}, false
	}

	// A missing sample date keeps the measurement but leaves the instant
	// unset; the converter is never invoked for it. Unparseable dates are
	// treated the same as missing ones.
	var date *string
	if strings.TrimSpace(row.SampleDate) != "" {
		if utc, err := CombineDateTime(row.SampleDate, row.CollectionTime); err == nil {
			date = &utc
		}
	}

	return domain.Measurement{
		StationCode: station,
		Analyte:     canonical,
		Value:       value,
		Date:        date,
		Source:      row.Sheet,
	}, true
}

// NormalizeRows runs the filter chain over a full extract and returns the
// surviving measurements along with the number of rows dropped.
func NormalizeRows(rows []domain.RawRow) ([]domain.Measurement, int) {
	measurements := make([]domain.Measurement, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		m, ok := NormalizeRow(row)
		if !ok {
			dropped++
			continue
		}
		measurements = append(measurements, m)
	}
	return measurements, dropped
}
