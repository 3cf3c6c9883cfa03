package service

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// formatStudyTime renders seconds as "3h 05m", or "42m" under an hour.
func formatStudyTime(seconds float64) string {
	total := int64(math.Max(0, seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %02dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// formatClock renders seconds as MM:SS. Minutes are not wrapped at 60.
func formatClock(seconds float64) string {
	total := int64(math.Max(0, seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// formatTimeAgo renders a relative time for the last week and the calendar
// date beyond that.
func formatTimeAgo(then, now time.Time) string {
	elapsed := now.Sub(then)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < 7*24*time.Hour:
		return humanize.RelTime(then, now, "ago", "from now")
	default:
		return then.In(now.Location()).Format("2006-01-02")
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func watchURL(videoID string, progressSeconds float64) string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s&t=%ds", videoID, int64(math.Max(0, progressSeconds)))
}

func thumbnailURL(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", videoID)
}
