package service_test

import (
	"testing"

	"github.com/tubestudy/tracker/internal/service"
)

func TestClassifyDistraction(t *testing.T) {
	tests := []struct {
		title     string
		wantGroup string
		wantOK    bool
	}{
		{"My Korean Vlog Day 3", service.DistractionVlog, true},
		{"서울 브이로그", service.DistractionVlog, true},
		{"Elden Ring GAME PLAY part 2", service.DistractionGame, true},
		{"신작 게임 리뷰", service.DistractionGame, true},
		{"Rain ASMR for sleeping", service.DistractionAmbient, true},
		{"편의점 먹방", service.DistractionAmbient, true},
		{"Spring Boot Tutorial", "", false},
		{"", "", false},
		// Earlier groups win when several match.
		{"ASMR gameplay vlog", service.DistractionVlog, true},
	}
	for _, tc := range tests {
		t.Run(tc.title, func(t *testing.T) {
			d, ok := service.ClassifyDistraction(tc.title)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if d.Group != tc.wantGroup {
				t.Fatalf("expected group %q, got %q", tc.wantGroup, d.Group)
			}
			if ok && d.Message == "" {
				t.Fatal("expected a message")
			}
		})
	}
}
