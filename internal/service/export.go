package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/tubestudy/tracker/internal/clock"
	"github.com/tubestudy/tracker/internal/domain"
)

// ExportFilename is the suggested download name for the CSV export.
const ExportFilename = "study_records.csv"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var exportHeader = []string{"videoId", "title", "channel", "studyMinutes", "lastProgressSeconds", "lastSyncedAt"}

// ExportService renders progress records as CSV.
type ExportService struct {
	progress domain.ProgressRepository
	clock    clock.Clock
}

// NewExportService creates a new ExportService. Timestamps are written in
// the location of the times clk returns.
func NewExportService(progress domain.ProgressRepository, clk clock.Clock) *ExportService {
	return &ExportService{progress: progress, clock: clk}
}

// WriteCSV writes a BOM-prefixed CSV of every record to w. The document is
// built in memory first, so nothing is written when loading fails.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer) error {
	data, err := s.CSV(ctx)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// CSV returns the full export document.
func (s *ExportService) CSV(ctx context.Context) ([]byte, error) {
	records, err := s.progress.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	loc := s.clock.Now().Location()

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	cw := csv.NewWriter(&buf)
	if err := cw.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.VideoID,
			r.Title,
			r.Channel,
			strconv.FormatInt(int64(math.Round(r.StudyTimeSeconds/60)), 10),
			strconv.FormatInt(int64(math.Round(r.LastProgressSeconds)), 10),
			r.LastSyncedAt.In(loc).Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
