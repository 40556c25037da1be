package dataprocessing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"creekwatch/pkg/contracts/domain"
)

// writeWorkbook builds a minimal export workbook for tests. Column order is
// caller-controlled to exercise header mapping.
func writeWorkbook(t *testing.T, observations, measurements [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	writeSheet := func(sheet string, rows [][]interface{}) {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(sheet, cell, &row))
		}
	}

	writeSheet(sheetObservations, observations)
	writeSheet(sheetMeasurements, measurements)
	require.NoError(t, f.DeleteSheet("Sheet1"))

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseWorkbook(t *testing.T) {
	path := writeWorkbook(t,
		[][]interface{}{
			{"StationCode", "AnalyteName", "VariableResult", "SampleDate", "CollectionTime"},
			{"SRA100", "pH", "7.2", "2024-01-15", "14:30:00"},
			{"SRA120", "DO", "8.1", "2024-01-15", ""},
		},
		[][]interface{}{
			// Different column order than Observations on purpose.
			{"SampleDate", "StationCode", "Result", "AnalyteName"},
			{"2024-02-01", "SRA141", "310", "SpCond"},
		},
	)

	rows, err := ParseWorkbook(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, domain.RawRow{
		StationCode:    "SRA100",
		AnalyteName:    "pH",
		Result:         "7.2",
		SampleDate:     "2024-01-15",
		CollectionTime: "14:30:00",
		Sheet:          domain.SourceObservations,
	}, rows[0])

	assert.Equal(t, "SRA141", rows[2].StationCode)
	assert.Equal(t, "310", rows[2].Result, "Measurements sheet reads the Result column")
	assert.Equal(t, domain.SourceMeasurements, rows[2].Sheet)
}

func TestParseWorkbook_SkipsEmptyRows(t *testing.T) {
	path := writeWorkbook(t,
		[][]interface{}{
			{"StationCode", "AnalyteName", "VariableResult", "SampleDate"},
			{"", "", "", ""},
			{"SRA100", "pH", "7.2", "2024-01-15"},
		},
		[][]interface{}{
			{"StationCode", "AnalyteName", "Result", "SampleDate"},
		},
	)

	rows, err := ParseWorkbook(path)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestParseWorkbook_MissingSheetIsFatal(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet(sheetObservations)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(sheetObservations, "A1",
		&[]interface{}{"StationCode", "AnalyteName", "VariableResult", "SampleDate"}))
	require.NoError(t, f.DeleteSheet("Sheet1"))

	path := filepath.Join(t.TempDir(), "missing_sheet.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err = ParseWorkbook(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), sheetMeasurements)
}

func TestParseWorkbook_MissingColumnIsFatal(t *testing.T) {
	path := writeWorkbook(t,
		[][]interface{}{
			{"StationCode", "AnalyteName", "Result", "SampleDate"}, // wrong result column for Observations
			{"SRA100", "pH", "7.2", "2024-01-15"},
		},
		[][]interface{}{
			{"StationCode", "AnalyteName", "Result", "SampleDate"},
		},
	)

	_, err := ParseWorkbook(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VariableResult")
}

func TestParseWorkbook_UnreadableFileIsFatal(t *testing.T) {
	_, err := ParseWorkbook(filepath.Join(t.TempDir(), "does_not_exist.xlsx"))
	assert.Error(t, err)
}
