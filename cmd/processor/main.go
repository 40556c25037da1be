package main

import (
	"flag"
	"log/slog"
	"os"

	"creekwatch/internal/config"
	"creekwatch/internal/dataprocessing"
	"creekwatch/internal/exporter"
	"creekwatch/internal/files"
	"creekwatch/internal/infrastructure"
)

func main() {
	inDir := flag.String("in", "", "input directory for spreadsheet exports (defaults to data/raw)")
	outDir := flag.String("out", "", "output directory for JSON documents (defaults to src/data)")
	flag.Parse()

	// An explicit export file can be given as the only positional argument.
	inputFile := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if *inDir != "" {
		cfg.Paths.RawDir = *inDir
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	paths, err := config.NewPaths(cfg.Paths)
	if err != nil {
		logger.Error("Failed to resolve paths", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create required directories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Starting water quality processing",
		slog.String("input_dir", paths.RawDir),
		slog.String("output_dir", paths.OutputDir))

	if inputFile == "" {
		discovery := files.NewDiscovery(paths.RawDir)
		found, ok, err := discovery.FirstExcelFile()
		if err != nil {
			logger.Error("Failed to scan input directory", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if !ok {
			logger.Error("No spreadsheet files found in input directory",
				slog.String("input_dir", paths.RawDir),
				slog.String("pattern", "*.xlsx, *.xls"))
			os.Exit(1)
		}
		inputFile = found.Path
		logger.Info("Using input file", slog.String("path", inputFile))
	}

	rows, err := dataprocessing.ParseWorkbook(inputFile)
	if err != nil {
		logger.Error("Failed to parse workbook",
			slog.String("path", inputFile),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Loaded raw rows", slog.Int("count", len(rows)))

	measurements, dropped := dataprocessing.NormalizeRows(rows)
	logger.Info("Normalized rows",
		slog.Int("kept", len(measurements)),
		slog.Int("dropped", dropped))

	stations := dataprocessing.BuildStationDirectory(measurements)
	series := dataprocessing.BuildSeries(measurements)
	latest := dataprocessing.BuildLatestValues(series)

	writer := exporter.NewJSONWriter(paths.OutputDir)
	for _, doc := range []struct {
		name string
		view any
	}{
		{exporter.StationsFile, stations},
		{exporter.MeasurementsFile, series},
		{exporter.LatestValuesFile, latest},
	} {
		if err := writer.WriteDocument(doc.name, doc.view); err != nil {
			logger.Error("Failed to write document",
				slog.String("document", doc.name),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("Processing complete",
		slog.Int("measurements", len(measurements)),
		slog.Int("stations", len(stations)))
}
