// Command extract runs the timetable pipeline once from the command line:
// it extracts a workbook, stores the canonical schedule document and
// optionally writes CSV exports of the schedule and the upcoming sessions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "time/tzdata"

	"pitwall/internal/config"
	"pitwall/internal/docreader"
	"pitwall/internal/exporter"
	"pitwall/internal/extraction"
	"pitwall/internal/infrastructure"
	"pitwall/internal/metrics"
	"pitwall/internal/schedule"
	"pitwall/internal/services"
)

func main() {
	var (
		inPath   = flag.String("in", "", "timetable workbook (.xlsx) to extract")
		dataDir  = flag.String("data", "data", "directory for stored schedule documents")
		zoneFile = flag.String("zones", "", "venue-to-timezone YAML table (built-in defaults when empty)")
		csvDir   = flag.String("csv", "", "also write CSV exports into this directory")
		logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: extract -in <timetable.xlsx> [-data dir] [-zones file] [-csv dir]")
		os.Exit(2)
	}

	if err := run(*inPath, *dataDir, *zoneFile, *csvDir, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, dataDir, zoneFile, csvDir, logLevel string) error {
	logger, err := infrastructure.InitializeLogger(config.LoggingConfig{
		Level:  logLevel,
		Output: "stdout",
	})
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	zones, err := schedule.LoadZones(zoneFile)
	if err != nil {
		return fmt.Errorf("load timezone table: %w", err)
	}

	m := metrics.New(nil)
	store := schedule.NewStore(dataDir, logger)
	materializer := schedule.NewMaterializer(zones, logger, m)
	pipeline := extraction.NewPipeline(logger, m)
	svc := services.NewScheduleService(store, materializer, pipeline, logger, m)

	ctx := context.Background()

	result, err := svc.IngestTimetable(ctx, docreader.NewExcelReader(inPath, logger))
	if err != nil {
		return err
	}

	fmt.Printf("extracted %q: %d days, %d events -> %s\n",
		result.EventName, result.Days, result.Events, filepath.Join(dataDir, result.Filename))

	if csvDir == "" {
		return nil
	}

	docs, err := store.LoadAll(ctx)
	if err != nil {
		return err
	}
	stem := result.Filename[:len(result.Filename)-len(filepath.Ext(result.Filename))]
	for _, doc := range docs {
		if doc.EventName != result.EventName {
			continue
		}
		path := filepath.Join(csvDir, stem+".csv")
		if err := exporter.WriteScheduleCSV(path, doc); err != nil {
			return err
		}
		fmt.Printf("wrote schedule export %s\n", path)
	}

	sessions := materializer.Materialize(docs, time.Now())
	sessionsPath := filepath.Join(csvDir, "upcoming_sessions.csv")
	if err := exporter.WriteSessionsCSV(sessionsPath, sessions); err != nil {
		return err
	}
	fmt.Printf("wrote %d upcoming sessions to %s\n", len(sessions), sessionsPath)

	return nil
}
