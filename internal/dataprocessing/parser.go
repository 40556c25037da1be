package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"creekwatch/pkg/contracts/domain"
)

// Sheet names required in every export workbook. A workbook missing either
// sheet is a fatal error for the run.
const (
	sheetObservations = "Observations"
	sheetMeasurements = "Measurements"
)

// Per-sheet result column; this is the only schema difference between the
// two sheets.
const (
	observationsResultColumn = "VariableResult"
	measurementsResultColumn = "Result"
)

// ParseWorkbook reads both sheets of a monitoring export and returns their
// raw rows, Observations first.
func ParseWorkbook(path string) ([]domain.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	observations, err := parseSheet(f, sheetObservations, observationsResultColumn, domain.SourceObservations)
	if err != nil {
		return nil, err
	}

	measurements, err := parseSheet(f, sheetMeasurements, measurementsResultColumn, domain.SourceMeasurements)
	if err != nil {
		return nil, err
	}

	return append(observations, measurements...), nil
}

// parseSheet maps header names to column positions and extracts one RawRow
// per non-empty data row. Exports are not guaranteed to keep a fixed column
// order, so positions are resolved from the header row every run.
func parseSheet(f *excelize.File, sheet, resultColumn string, source domain.Source) ([]domain.RawRow, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheet)
	}

	columnMap := make(map[string]int, len(rows[0]))
	for j, header := range rows[0] {
		columnMap[strings.TrimSpace(header)] = j
	}

	for _, required := range []string{"StationCode", "AnalyteName", resultColumn, "SampleDate"} {
		if _, ok := columnMap[required]; !ok {
			return nil, fmt.Errorf("sheet %s is missing required column %s", sheet, required)
		}
	}

	cell := func(row []string, name string) string {
		idx, ok := columnMap[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	raws := make([]domain.RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		raws = append(raws, domain.RawRow{
			StationCode:    cell(row, "StationCode"),
			AnalyteName:    cell(row, "AnalyteName"),
			Result:         cell(row, resultColumn),
			SampleDate:     cell(row, "SampleDate"),
			CollectionTime: cell(row, "CollectionTime"),
			Sheet:          source,
		})
	}

	slog.Debug("Parsed sheet",
		slog.String("sheet", sheet),
		slog.Int("rows", len(raws)))

	return raws, nil
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
