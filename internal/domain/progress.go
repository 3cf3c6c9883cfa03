package domain

import (
	"context"
	"math"
	"time"
)

// CompletionThreshold is the progress percentage at which a video counts
// as finished.
const CompletionThreshold = 98

// SyncEvent is a periodic report from the browser extension describing the
// playback position of one video and the watch time since the last report.
type SyncEvent struct {
	VideoID                 string
	Title                   string
	Channel                 string
	TotalDurationSeconds    float64
	LastProgressSeconds     float64
	AccumulatedStudySeconds float64
}

// ProgressRecord is the per-video study accumulator.
type ProgressRecord struct {
	VideoID                   string
	Title                     string
	Channel                   string
	TotalDurationSeconds      float64
	LastProgressSeconds       float64
	StudyTimeSeconds          float64
	HighestProgressPercentage int
	IsCompleted               bool
	LastSyncedAt              time.Time
	CreatedAt                 time.Time
}

// NewProgressRecord creates the record for the first sync of a video.
func NewProgressRecord(ev SyncEvent, now time.Time) *ProgressRecord {
	p := &ProgressRecord{
		VideoID:   ev.VideoID,
		CreatedAt: now,
	}
	p.Apply(ev, now)
	p.HighestProgressPercentage = snapPercentage(p.CurrentPercentage())
	return p
}

// Apply merges a sync event into the record. Study time accumulates, the
// progress watermark only rises and completion only latches on.
func (p *ProgressRecord) Apply(ev SyncEvent, now time.Time) {
	p.StudyTimeSeconds += math.Max(0, ev.AccumulatedStudySeconds)
	p.LastProgressSeconds = math.Max(0, ev.LastProgressSeconds)
	p.Title = ev.Title
	p.Channel = ev.Channel
	if ev.TotalDurationSeconds > 0 {
		p.TotalDurationSeconds = ev.TotalDurationSeconds
	}
	p.LastSyncedAt = now

	current := ProgressPercentage(p.LastProgressSeconds, p.TotalDurationSeconds)
	p.HighestProgressPercentage = MergeWatermark(p.HighestProgressPercentage, current)
	p.IsCompleted = MergeCompleted(p.IsCompleted, current)
}

// CurrentPercentage is the rounded position of the last sync within the video.
func (p *ProgressRecord) CurrentPercentage() int {
	return ProgressPercentage(p.LastProgressSeconds, p.TotalDurationSeconds)
}

// DisplayPercentage is what dashboards show: 100 once completed, otherwise
// the current position snapped to 100 near the end.
func (p *ProgressRecord) DisplayPercentage() int {
	if p.IsCompleted {
		return 100
	}
	return snapPercentage(p.CurrentPercentage())
}

// ProgressPercentage returns round(progress/duration*100), or 0 for an
// unknown duration.
func ProgressPercentage(progress, duration float64) int {
	if duration <= 0 {
		return 0
	}
	return int(math.Round(progress / duration * 100))
}

// MergeWatermark returns the new highest-progress watermark. Only the first
// sync snaps near-complete positions to 100; later syncs raise it to the
// current percentage, capped at 100.
func MergeWatermark(highest, current int) int {
	return max(highest, min(max(current, 0), 100))
}

// MergeCompleted returns the new completion latch.
func MergeCompleted(completed bool, current int) bool {
	return completed || current >= CompletionThreshold
}

func snapPercentage(pct int) int {
	if pct >= CompletionThreshold {
		return 100
	}
	return max(pct, 0)
}

// ProgressRepository defines persistence operations for progress records.
type ProgressRepository interface {
	// Get returns ErrNotFound when the video has never been synced.
	Get(ctx context.Context, videoID string) (*ProgressRecord, error)
	// Save inserts or replaces the record keyed by VideoID.
	Save(ctx context.Context, record *ProgressRecord) error
	// MostRecent returns the record with the latest LastSyncedAt, or ErrNotFound.
	MostRecent(ctx context.Context) (*ProgressRecord, error)
	// ListSyncedBetween returns records with start <= LastSyncedAt < end.
	ListSyncedBetween(ctx context.Context, start, end time.Time) ([]ProgressRecord, error)
	// ListAll returns every record, most recently synced first.
	ListAll(ctx context.Context) ([]ProgressRecord, error)
	Delete(ctx context.Context, videoID string) error
	DeleteAll(ctx context.Context) error
}
