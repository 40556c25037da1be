package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// civilZone is the wall-clock timezone the monitoring program records in.
// Conversions go through the IANA database so daylight-saving transitions
// resolve correctly (first offset for ambiguous folds, normalization forward
// across spring gaps).
const civilZone = "America/Los_Angeles"

var pacific = mustLoadLocation(civilZone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load timezone %s: %v", name, err))
	}
	return loc
}

// dateLayouts covers the formats excelize surfaces for date cells depending
// on the cell style applied by the exporting tool.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"2006/01/02",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
}

// CombineDateTime interprets a sample date and optional collection time as
// Pacific wall-clock time and returns the UTC instant formatted as
// YYYY-MM-DDTHH:MM:SSZ. A missing collection time means midnight local. Any
// time-of-day portion embedded in the date cell itself is discarded; only the
// collection time column contributes a clock time.
func CombineDateTime(date, timeOfDay string) (string, error) {
	day, err := parseDateCell(date)
	if err != nil {
		return "", err
	}

	var hour, minute, second int
	if strings.TrimSpace(timeOfDay) != "" {
		hour, minute, second, err = parseTimeCell(timeOfDay)
		if err != nil {
			return "", err
		}
	}

	local := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, pacific)
	return local.UTC().Format("2006-01-02T15:04:05Z"), nil
}

// parseDateCell accepts the known textual layouts plus Excel serial-number
// cells (days since the 1900 epoch, as excelize reports unstyled date cells).
func parseDateCell(cell string) (time.Time, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, fmt.Errorf("empty date cell")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, nil
		}
	}

	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("date serial %q: %w", cell, err)
		}
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date cell %q", cell)
}

// parseTimeCell accepts the known clock layouts plus day-fraction serials
// (0.5 = noon).
func parseTimeCell(cell string) (hour, minute, second int, err error) {
	cell = strings.TrimSpace(cell)

	for _, layout := range timeLayouts {
		if t, perr := time.Parse(layout, cell); perr == nil {
			return t.Hour(), t.Minute(), t.Second(), nil
		}
	}

	if fraction, perr := strconv.ParseFloat(cell, 64); perr == nil && fraction >= 0 && fraction < 1 {
		t, terr := excelize.ExcelDateToTime(fraction, false)
		if terr != nil {
			return 0, 0, 0, fmt.Errorf("time serial %q: %w", cell, terr)
		}
		return t.Hour(), t.Minute(), t.Second(), nil
	}

	return 0, 0, 0, fmt.Errorf("unrecognized time cell %q", cell)
}
