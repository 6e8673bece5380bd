package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"pitwall/pkg/contracts/domain"
)

// Store persists canonical schedule documents as JSON files in the data
// directory, one file per race weekend.
type Store struct {
	dir      string
	logger   *slog.Logger
	validate *validator.Validate
}

// NewStore creates a store over the given data directory.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		dir:      dir,
		logger:   logger.With(slog.String("component", "schedule_store")),
		validate: validator.New(),
	}
}

// LoadAll reads every schedule document in the data directory. Hidden
// files, non-JSON files, unreadable files and documents that fail
// validation are logged and skipped; one bad file never hides the rest.
// A missing data directory is an empty store, not an error.
func (s *Store) LoadAll(ctx context.Context) ([]domain.Schedule, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WarnContext(ctx, "data directory does not exist",
				slog.String("dir", s.dir))
			return nil, nil
		}
		return nil, fmt.Errorf("read data directory: %w", err)
	}

	var docs []domain.Schedule
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}

		doc, err := s.loadFile(name)
		if err != nil {
			s.logger.ErrorContext(ctx, "skipping unreadable schedule file",
				slog.String("file", name),
				slog.String("error", err.Error()))
			continue
		}

		docs = append(docs, doc)
		s.logger.InfoContext(ctx, "loaded schedule",
			slog.String("file", name),
			slog.String("race", doc.RaceName),
			slog.Int("days", len(doc.Days)))
	}

	return docs, nil
}

func (s *Store) loadFile(name string) (domain.Schedule, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return domain.Schedule{}, err
	}

	var doc domain.Schedule
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Schedule{}, fmt.Errorf("decode schedule: %w", err)
	}
	if err := s.validate.Struct(doc); err != nil {
		return domain.Schedule{}, fmt.Errorf("validate schedule: %w", err)
	}

	doc.RaceName = raceName(doc, name)
	return doc, nil
}

// Save validates and writes a schedule document, deriving the filename from
// the venue and event name. It returns the filename used.
func (s *Store) Save(ctx context.Context, doc domain.Schedule) (string, error) {
	if err := s.validate.Struct(doc); err != nil {
		return "", fmt.Errorf("validate schedule: %w", err)
	}

	name := documentFilename(doc)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode schedule: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write schedule file: %w", err)
	}

	s.logger.InfoContext(ctx, "saved schedule",
		slog.String("file", name),
		slog.String("event", doc.EventName),
		slog.Int("days", len(doc.Days)))

	return name, nil
}

// List returns the names of the stored schedule files.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read data directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}

var (
	unsafeCharsRe = regexp.MustCompile(`[^\w\s-]`)
	separatorsRe  = regexp.MustCompile(`[-\s]+`)
)

// documentFilename derives a stable slugged filename from the venue and
// event name.
func documentFilename(doc domain.Schedule) string {
	base := strings.TrimSpace(doc.Location + "_" + doc.EventName)
	if base == "_" {
		base = "schedule"
	}
	base = unsafeCharsRe.ReplaceAllString(base, "")
	base = separatorsRe.ReplaceAllString(strings.TrimSpace(base), "_")
	return strings.ToLower(base) + ".json"
}

// raceName picks the display name for a document: event name, then venue,
// then the title-cased filename stem.
func raceName(doc domain.Schedule, filename string) string {
	if doc.EventName != "" {
		return doc.EventName
	}
	if doc.Location != "" {
		return doc.Location
	}
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	stem = strings.ReplaceAll(stem, "_", " ")
	if stem == "" {
		return ""
	}
	return strings.ToUpper(stem[:1]) + stem[1:]
}
