// Package dataprocessing implements the normalization and aggregation
// pipeline for creek water-quality monitoring exports.
//
// An export is one XLSX workbook with two sheets, Observations and
// Measurements, that differ only in which column carries the numeric result.
// The pipeline runs in four stages:
//
//  1. ParseWorkbook reads both sheets into raw rows, resolving column
//     positions from the header row.
//  2. NormalizeRows filters and converts raw rows into canonical
//     measurements: unknown stations and analytes are dropped silently,
//     analyte names are alias-resolved, and sample date plus collection time
//     become a UTC instant interpreted in Pacific wall-clock time.
//  3. BuildStationDirectory, BuildSeries, and BuildLatestValues fold the
//     measurement list into the three derived views the front end consumes.
//  4. The exporter package persists each view as a JSON document.
//
// Reference tables (station coordinates, analyte aliases, acceptable ranges)
// are fixed at compile time; they define the complete universe of stations
// and analytes that can appear in output.
package dataprocessing
