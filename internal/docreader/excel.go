// Package docreader provides document readers for the extraction pipeline.
// Readers own the source file entirely: opening, sheet/page enumeration and
// cleanup all happen here, so the pipeline only ever sees page text and
// tables.
package docreader

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"pitwall/internal/extraction"
)

// ExcelReader reads a timetable workbook (.xlsx) and presents each sheet as
// one page: the sheet's cell grid is the page's single table, and the rows
// joined with spaces and newlines form the page's text blob.
type ExcelReader struct {
	path   string
	logger *slog.Logger
}

// NewExcelReader creates a reader over a workbook on disk.
func NewExcelReader(path string, logger *slog.Logger) *ExcelReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelReader{
		path:   path,
		logger: logger.With(slog.String("component", "excel_reader")),
	}
}

// Pages implements extraction.DocumentReader. Unreadable sheets are logged
// and skipped; only a workbook that cannot be opened at all fails the run.
func (r *ExcelReader) Pages(ctx context.Context) ([]extraction.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var pages []extraction.Page
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			r.logger.WarnContext(ctx, "skipping unreadable sheet",
				slog.String("sheet", sheet),
				slog.String("error", err.Error()))
			continue
		}

		pages = append(pages, extraction.Page{
			Text:   sheetText(rows),
			Tables: [][][]string{rows},
		})
	}

	r.logger.InfoContext(ctx, "workbook read",
		slog.String("path", r.path),
		slog.Int("pages", len(pages)))

	return pages, nil
}

// sheetText flattens a cell grid into the page text blob the header parsers
// scan: cells joined by single spaces, rows by newlines.
func sheetText(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		first := true
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if !first {
				b.WriteByte(' ')
			}
			b.WriteString(cell)
			first = false
		}
	}
	return b.String()
}
