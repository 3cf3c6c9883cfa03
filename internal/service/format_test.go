package service

import (
	"testing"
	"time"
)

func TestFormatStudyTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0m"},
		{59, "0m"},
		{42 * 60, "42m"},
		{3600, "1h 00m"},
		{3*3600 + 5*60 + 30, "3h 05m"},
		{-10, "0m"},
	}
	for _, tc := range tests {
		if got := formatStudyTime(tc.seconds); got != tc.want {
			t.Errorf("formatStudyTime(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{495.9, "08:15"},
		{75*60 + 30, "75:30"},
	}
	for _, tc := range tests {
		if got := formatClock(tc.seconds); got != tc.want {
			t.Errorf("formatClock(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2025, 11, 21, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		then time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5 minutes ago"},
		{now.Add(-3 * time.Hour), "3 hours ago"},
		{now.Add(-2 * 24 * time.Hour), "2 days ago"},
		{now.Add(-10 * 24 * time.Hour), "2025-11-11"},
	}
	for _, tc := range tests {
		if got := formatTimeAgo(tc.then, now); got != tc.want {
			t.Errorf("formatTimeAgo(%v) = %q, want %q", tc.then, got, tc.want)
		}
	}
}

func TestWatchURL(t *testing.T) {
	if got := watchURL("abc123", 125.9); got != "https://www.youtube.com/watch?v=abc123&t=125s" {
		t.Fatalf("unexpected url %q", got)
	}
}
