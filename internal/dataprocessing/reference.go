package dataprocessing

import "strings"

// Coordinates is a WGS-84 longitude/latitude pair.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Range bounds the acceptable values for an analyte. A nil bound means the
// analyte is unconstrained on that side; a nil unit means it is dimensionless.
type Range struct {
	Min  *float64
	Max  *float64
	Unit *string
}

// stationCoordinates defines the complete universe of valid stations for the
// San Ramon creek monitoring program. Rows referencing any other station code
// are dropped during normalization.
var stationCoordinates = map[string]Coordinates{
	"SRA190": {Lon: -121.9883528, Lat: 37.7714199},
	"SRA161": {Lon: -121.981522, Lat: 37.811637},
	"SRA160": {Lon: -121.9852663, Lat: 37.8122981},
	"SRA141": {Lon: -121.9976948, Lat: 37.8238159},
	"SRA120": {Lon: -122.0205907, Lat: 37.8407117},
	"SRA100": {Lon: -122.0391426, Lat: 37.8647308},
}

// analyteAliases unifies the name variations that appear across exports.
// Names absent from the table map to themselves.
var analyteAliases = map[string]string{
	"Nitrate as NO3":       "Nitrate",
	"Nitrate-N":            "Nitrate",
	"DO":                   "Dissolved Oxygen",
	"Specific Conductance": "Specific Conductivity",
	"SpCond":               "Specific Conductivity",
	"Temp":                 "Temperature",
	"Water Temperature":    "Temperature",
}

// acceptableRanges defines the complete universe of analytes retained in
// output. Canonical names absent from this table are excluded entirely.
var acceptableRanges = map[string]Range{
	"Dissolved Oxygen":      {Min: floatPtr(5), Unit: strPtr("mg/L")},
	"pH":                    {Min: floatPtr(6.5), Max: floatPtr(8.5)},
	"Specific Conductivity": {Min: floatPtr(150), Max: floatPtr(500), Unit: strPtr("uS/cm")},
	"Temperature":           {Max: floatPtr(24), Unit: strPtr("Deg C")},
	"Turbidity":             {Max: floatPtr(25), Unit: strPtr("NTU")},
	"Nitrate":               {Max: floatPtr(45), Unit: strPtr("mg/L")},
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

// CanonicalAnalyte trims surrounding whitespace and resolves aliases.
func CanonicalAnalyte(name string) string {
	clean := strings.TrimSpace(name)
	if canonical, ok := analyteAliases[clean]; ok {
		return canonical
	}
	return clean
}

// KnownStation reports whether code belongs to the configured station set.
func KnownStation(code string) bool {
	_, ok := stationCoordinates[code]
	return ok
}

// RangeFor returns the acceptable range for a canonical analyte name.
func RangeFor(analyte string) (Range, bool) {
	r, ok := acceptableRanges[analyte]
	return r, ok
}
