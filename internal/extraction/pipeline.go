package extraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"pitwall/internal/metrics"
	"pitwall/pkg/contracts/domain"
)

// Page is the unit of input supplied by a document reader: the page's full
// text blob plus every table found on the page, each table a grid of cells.
type Page struct {
	Text   string
	Tables [][][]string
}

// DocumentReader supplies the pages of one timetable document. The reader
// owns the source file entirely; the pipeline never opens, validates or
// closes the underlying document.
type DocumentReader interface {
	Pages(ctx context.Context) ([]Page, error)
}

// ErrNoPages is returned when the reader delivers an empty document. It is
// the only whole-run failure besides a reader error: everything below the
// document level is handled page by page, best effort.
var ErrNoPages = errors.New("document contains no pages")

// Pipeline orchestrates metadata, day-info and row extraction across all
// pages of one document. Page-level problems are logged and skip only the
// affected page; partial extraction is always preferred over an
// all-or-nothing failure.
type Pipeline struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewPipeline creates an extraction pipeline.
func NewPipeline(logger *slog.Logger, m *metrics.Metrics) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.New(prometheus.NewRegistry())
	}
	return &Pipeline{
		logger:  logger.With(slog.String("component", "extraction_pipeline")),
		metrics: m,
	}
}

// Run extracts a RawTimetable from the document's pages. Event metadata is
// read from the first page; each page then contributes at most one day
// record.
func (p *Pipeline) Run(ctx context.Context, reader DocumentReader) (*domain.RawTimetable, error) {
	pages, err := reader.Pages(ctx)
	if err != nil {
		return nil, fmt.Errorf("read document pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	meta := ExtractMetadata(pages[0].Text)
	doc := &domain.RawTimetable{
		EventName: meta.EventName,
		Location:  meta.Location,
		Year:      meta.Year,
		Version:   meta.Version,
	}

	p.logger.InfoContext(ctx, "metadata extracted",
		slog.String("event_name", doc.EventName),
		slog.String("location", doc.Location),
		slog.String("year", doc.Year))

	for i, page := range pages {
		pageNum := i + 1
		day, ok := p.extractPage(ctx, page, pageNum)
		if !ok {
			p.metrics.PagesSkipped.Inc()
			continue
		}
		doc.Days = append(doc.Days, day)
		p.metrics.PagesParsed.Inc()
		p.logger.InfoContext(ctx, "page extracted",
			slog.Int("page", pageNum),
			slog.String("date", day.Date),
			slog.Int("events", len(day.Events)))
	}

	p.logger.InfoContext(ctx, "extraction complete",
		slog.Int("pages", len(pages)),
		slog.Int("days", len(doc.Days)),
		slog.Int("events", doc.TotalEvents()))

	return doc, nil
}

// extractPage turns one page into a day record. It reports false when the
// page has no usable table or no recognizable day line; the caller drops the
// page and carries on.
func (p *Pipeline) extractPage(ctx context.Context, page Page, pageNum int) (domain.DayRecord, bool) {
	table := largestTable(page.Tables)
	if table == nil {
		p.logger.WarnContext(ctx, "no tables found on page", slog.Int("page", pageNum))
		return domain.DayRecord{}, false
	}
	// Header plus at least one data row.
	if len(table) < 2 {
		p.logger.WarnContext(ctx, "table too short on page", slog.Int("page", pageNum), slog.Int("rows", len(table)))
		return domain.DayRecord{}, false
	}

	info, ok := ExtractDayInfo(page.Text)
	if !ok {
		p.logger.WarnContext(ctx, "no day info found on page", slog.Int("page", pageNum))
		return domain.DayRecord{}, false
	}

	day := domain.DayRecord{
		DayName: info.DayName,
		Date:    info.Date,
	}

	for _, row := range table[1:] {
		if len(row) < 2 {
			continue
		}
		event, ok := ParseRow(row)
		if !ok {
			p.metrics.RowsDropped.Inc()
			continue
		}
		day.Events = append(day.Events, event)
		p.metrics.RowsParsed.Inc()
	}

	return day, true
}

// largestTable picks the authoritative table of a page: the one with the
// most rows. Pages may carry decorative sub-tables that must be ignored.
func largestTable(tables [][][]string) [][]string {
	var best [][]string
	for _, t := range tables {
		if len(t) > len(best) {
			best = t
		}
	}
	if len(best) == 0 {
		return nil
	}
	return best
}
