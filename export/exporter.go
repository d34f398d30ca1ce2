// Package export collects completed Codility test sessions and writes them
// to CSV, one row per session with its similarity results merged in.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/codexport/codility"
)

// DefaultConcurrency bounds the number of in-flight session fetches
const DefaultConcurrency = 4

// SessionSource is the slice of the Codility API the exporter needs
type SessionSource interface {
	ListTestSessions(ctx context.Context, testID string) ([]codility.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (*codility.Session, error)
	GetSimilarityResults(ctx context.Context, sessionID string) (*codility.Similarity, error)
}

// Exporter collects completed sessions for a test and writes them as CSV
type Exporter struct {
	source      SessionSource
	logger      zerolog.Logger
	concurrency int
}

// NewExporter creates a new Exporter
func NewExporter(source SessionSource, logger zerolog.Logger) *Exporter {
	return &Exporter{
		source:      source,
		logger:      logger,
		concurrency: DefaultConcurrency,
	}
}

// SetConcurrency bounds the number of sessions fetched at once
func (e *Exporter) SetConcurrency(n int) {
	if n > 0 {
		e.concurrency = n
	}
}

// CollectCompleted fetches every session of a test and returns flattened
// records for the sessions that have finished. A failed similarity lookup
// does not abort the export; the session is kept with empty similarity
// columns.
func (e *Exporter) CollectCompleted(ctx context.Context, testID string) ([]Record, error) {
	sessions, err := e.source.ListTestSessions(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	var mu sync.Mutex
	var records []Record

	for _, session := range sessions {
		sessionID := session.ID

		g.Go(func() error {
			data, err := e.source.GetSessionData(ctx, sessionID)
			if err != nil {
				return fmt.Errorf("failed to get session %s: %w", sessionID, err)
			}
			if !data.Completed() {
				return nil
			}

			similarity, err := e.source.GetSimilarityResults(ctx, sessionID)
			if err != nil {
				e.logger.Warn().
					Err(err).
					Str("session_id", sessionID).
					Msg("Failed to get similarity results")
				similarity = &codility.Similarity{}
			}

			record, err := Flatten(data, similarity)
			if err != nil {
				return err
			}

			mu.Lock()
			records = append(records, record)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stable output regardless of fetch order
	sort.Slice(records, func(i, j int) bool {
		return records[i]["session_id"] < records[j]["session_id"]
	})

	e.logger.Debug().
		Str("test_id", testID).
		Int("total", len(sessions)).
		Int("completed", len(records)).
		Msg("Collected completed sessions")
	return records, nil
}

// WriteCSV writes records with the sorted union of columns as header
func WriteCSV(w io.Writer, records []Record) error {
	columns := Columns(records)

	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(columns))
	for _, record := range records {
		for i, column := range columns {
			row[i] = record[column]
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Filename derives a safe CSV filename from a test name
func Filename(testName string) string {
	return strings.ReplaceAll(testName, " ", "_") + "_completed_sessions.csv"
}
