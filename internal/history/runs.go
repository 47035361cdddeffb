package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"slate/internal/align"
	"slate/internal/services"
)

// Run captures one completed alignment invocation.
type Run struct {
	ID            string
	CreatedAt     time.Time
	SubtitlePath  string
	ChapterCount  int
	Matched       int
	LowConfidence int
	NotFound      int
	Formatted     string
	ReportJSON    string
}

// NewRun builds a Run record from an alignment report.
func NewRun(subtitlePath string, report align.Report) (*Run, error) {
	payload, err := json.Marshal(report.Chapters)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	run := &Run{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		SubtitlePath: subtitlePath,
		ChapterCount: len(report.Chapters),
		Formatted:    report.Formatted,
		ReportJSON:   string(payload),
	}
	for _, chapter := range report.Chapters {
		switch chapter.Status {
		case align.StatusMatched:
			run.Matched++
		case align.StatusLowConfidence:
			run.LowConfidence++
		case align.StatusNotFound:
			run.NotFound++
		}
	}
	return run, nil
}

// Chapters decodes the stored per-chapter results.
func (r *Run) Chapters() ([]align.ChapterResult, error) {
	var chapters []align.ChapterResult
	if err := json.Unmarshal([]byte(r.ReportJSON), &chapters); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return chapters, nil
}

// SaveRun inserts a run and prunes history beyond the configured retention.
func (s *Store) SaveRun(ctx context.Context, run *Run, keep int) error {
	if run == nil {
		return services.Wrap(services.ErrValidation, "history", "save run", "run is nil", nil)
	}
	ctx = ensureContext(ctx)

	err := s.execWithRetry(ctx,
		`INSERT INTO runs (id, created_at, subtitle_path, chapter_count, matched, low_confidence, not_found, formatted, report_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.SubtitlePath,
		run.ChapterCount,
		run.Matched,
		run.LowConfidence,
		run.NotFound,
		run.Formatted,
		run.ReportJSON,
	)
	if err != nil {
		return services.Wrap(services.ErrTransient, "history", "save run", "insert failed", err)
	}

	if keep > 0 {
		err = s.execWithRetry(ctx,
			`DELETE FROM runs WHERE id NOT IN (
				SELECT id FROM runs ORDER BY created_at DESC, id DESC LIMIT ?
			)`, keep)
		if err != nil {
			return services.Wrap(services.ErrTransient, "history", "save run", "prune failed", err)
		}
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, subtitle_path, chapter_count, matched, low_confidence, not_found, formatted, report_json
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "history", "list runs", "query failed", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, scanErr := scanRun(rows)
		if scanErr != nil {
			return nil, services.Wrap(services.ErrTransient, "history", "list runs", "scan failed", scanErr)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrTransient, "history", "list runs", "iterate failed", err)
	}
	return runs, nil
}

// GetRun loads a single run by identifier. A unique identifier prefix is
// accepted so truncated IDs from listings resolve too.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	ctx = ensureContext(ctx)
	if id == "" {
		return nil, services.Wrap(services.ErrValidation, "history", "get run", "run id is empty", nil)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, subtitle_path, chapter_count, matched, low_confidence, not_found, formatted, report_json
		 FROM runs WHERE id = ? OR id LIKE ? ORDER BY created_at DESC LIMIT 2`, id, id+"%")
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "history", "get run", "query failed", err)
	}
	defer rows.Close()

	var matches []*Run
	for rows.Next() {
		run, scanErr := scanRun(rows)
		if scanErr != nil {
			return nil, services.Wrap(services.ErrTransient, "history", "get run", "scan failed", scanErr)
		}
		matches = append(matches, run)
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrTransient, "history", "get run", "iterate failed", err)
	}

	switch len(matches) {
	case 0:
		return nil, services.Wrap(services.ErrNotFound, "history", "get run", fmt.Sprintf("run %s not found", id), nil)
	case 1:
		return matches[0], nil
	default:
		return nil, services.Wrap(services.ErrValidation, "history", "get run", fmt.Sprintf("run id %s is ambiguous", id), nil)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	var createdAt string
	err := row.Scan(
		&run.ID,
		&createdAt,
		&run.SubtitlePath,
		&run.ChapterCount,
		&run.Matched,
		&run.LowConfidence,
		&run.NotFound,
		&run.Formatted,
		&run.ReportJSON,
	)
	if err != nil {
		return nil, err
	}
	parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parse created_at: %w", parseErr)
	}
	run.CreatedAt = parsed
	return &run, nil
}
