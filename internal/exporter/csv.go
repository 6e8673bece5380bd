package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"pitwall/pkg/contracts/domain"
)

// scheduleHeaders is the column layout of a flattened schedule export.
var scheduleHeaders = []string{"Date", "Day", "Start", "End", "Category", "Activity", "Location"}

// sessionHeaders is the column layout of a materialized session export.
var sessionHeaders = []string{"Race", "Location", "Day", "Date", "Time", "Category", "Activity", "UTC", "Local", "Timezone", "Timestamp"}

// WriteScheduleCSV flattens a canonical schedule document into a CSV file,
// days in ascending date order, sessions before other events within a day.
func WriteScheduleCSV(path string, doc domain.Schedule) error {
	dates := make([]string, 0, len(doc.Days))
	for date := range doc.Days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var records [][]string
	for _, date := range dates {
		day := doc.Days[date]
		for _, spec := range day.Sessions {
			records = append(records, scheduleRecord(date, day.DayName, spec))
		}
		for _, spec := range day.OtherEvents {
			records = append(records, scheduleRecord(date, day.DayName, spec))
		}
	}

	return writeCSV(path, scheduleHeaders, records)
}

// WriteSessionsCSV writes a materialized session list to a CSV file in the
// order given.
func WriteSessionsCSV(path string, sessions []domain.Session) error {
	records := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		records = append(records, []string{
			s.Race, s.Location, s.Day, s.Date, s.Time, s.Category, s.Activity,
			s.DateTime, s.LocalDateTime, s.Timezone,
			strconv.FormatFloat(s.Timestamp, 'f', 3, 64),
		})
	}
	return writeCSV(path, sessionHeaders, records)
}

func scheduleRecord(date, dayName string, spec domain.SessionSpec) []string {
	return []string{date, dayName, spec.StartTime, spec.EndTime, spec.Category, spec.Activity, spec.Location}
}

// writeCSV writes headers and records, prefixed with a UTF-8 BOM so Excel
// recognizes the encoding.
func writeCSV(path string, headers []string, records [][]string) error {
	slog.Info("writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	for i, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	return writer.Error()
}
