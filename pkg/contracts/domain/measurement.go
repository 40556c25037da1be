package domain

// Source identifies which workbook sheet a measurement came from.
type Source string

const (
	SourceObservations Source = "Observations"
	SourceMeasurements Source = "Measurements"
)

// Status classifies a latest value against the acceptable range for its analyte.
type Status string

const (
	StatusAcceptable   Status = "acceptable"
	StatusOutsideRange Status = "outside_range"
	StatusNoRange      Status = "no_range"
)

// RawRow is one spreadsheet row before normalization. Fields carry the raw
// cell text exactly as read; presence and type are not guaranteed.
type RawRow struct {
	StationCode    string
	AnalyteName    string
	Result         string
	SampleDate     string
	CollectionTime string
	Sheet          Source
}

// Measurement is the canonical record produced by the row normalizer. Its
// station code is always a key of the station directory and its analyte a key
// of the acceptable-range table; rows that fail either check never become
// measurements. Date is a UTC instant in ISO-8601 with a 'Z' suffix, nil when
// the source row carried no sample date.
type Measurement struct {
	StationCode string  `json:"station_code"`
	Analyte     string  `json:"analyte"`
	Value       float64 `json:"value"`
	Date        *string `json:"date"`
	Source      Source  `json:"source"`
}

// Station describes one configured monitoring station. Every station in the
// coordinate table appears in the directory, measured or not.
type Station struct {
	Code             string   `json:"code"`
	Name             string   `json:"name"`
	Longitude        float64  `json:"longitude"`
	Latitude         float64  `json:"latitude"`
	Analytes         []string `json:"analytes"`
	MeasurementCount int      `json:"measurement_count"`
}

// SeriesPoint is one entry in a station/analyte time series.
type SeriesPoint struct {
	Date   *string `json:"date"`
	Value  float64 `json:"value"`
	Source Source  `json:"source"`
}

// LatestValue is the most recent reading for a station/analyte pair together
// with its range-compliance status and display unit.
type LatestValue struct {
	Value  float64 `json:"value"`
	Date   *string `json:"date"`
	Status Status  `json:"status"`
	Unit   *string `json:"unit"`
}

// StationDirectory maps station code to station metadata.
type StationDirectory = map[string]Station

// MeasurementSeries maps station code to analyte to the date-ordered series
// of readings. Undated readings sort before all dated ones.
type MeasurementSeries = map[string]map[string][]SeriesPoint

// LatestValues maps station code to analyte to the latest reading.
type LatestValues = map[string]map[string]LatestValue
