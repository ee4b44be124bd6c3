package dto

import (
	"testing"
	"time"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{"ended yesterday", now.Add(-2 * day), now.Add(-day), StatusOverdue},
		{"running now", now.Add(-day), now.Add(day), StatusActive},
		{"starts tomorrow", now.Add(day), now.Add(2 * day), StatusUpcoming},
		{"ends exactly now", now.Add(-day), now, StatusActive},
		{"starts exactly now", now, now.Add(day), StatusActive},
		{"ended a second ago", now.Add(-day), now.Add(-time.Second), StatusOverdue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DeriveStatus(tc.start, tc.end, now); got != tc.want {
				t.Fatalf("DeriveStatus(%v, %v) = %q, want %q", tc.start, tc.end, got, tc.want)
			}
		})
	}
}
