package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ramanasai/reflectivei/internal/config"
)

func reminder(at string, workdays []string, holidays ...string) config.ReminderConfig {
	return config.ReminderConfig{Enabled: true, Time: at, Workdays: workdays, Holidays: holidays}
}

func TestNextAtLaterToday(t *testing.T) {
	// Wednesday
	now := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	got := NextAt(now, reminder("20:00", nil), time.UTC)
	assert.Equal(t, time.Date(2025, 10, 1, 20, 0, 0, 0, time.UTC), got)
}

func TestNextAtRollsToTomorrow(t *testing.T) {
	now := time.Date(2025, 10, 1, 20, 0, 0, 0, time.UTC)
	got := NextAt(now, reminder("20:00", nil), time.UTC)
	assert.Equal(t, time.Date(2025, 10, 2, 20, 0, 0, 0, time.UTC), got)
}

func TestNextAtSkipsWeekendAndHoliday(t *testing.T) {
	// Friday evening, Monday is a holiday
	now := time.Date(2025, 10, 3, 21, 0, 0, 0, time.UTC)
	r := reminder("08:15", []string{"mon", "Tue", "Wed", "Thu", "Fri"}, "2025-10-06")
	got := NextAt(now, r, time.UTC)
	assert.Equal(t, time.Date(2025, 10, 7, 8, 15, 0, 0, time.UTC), got)
}

func TestNextAtBadTimeUsesDefault(t *testing.T) {
	now := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	got := NextAt(now, reminder("later", nil), time.UTC)
	assert.Equal(t, 20, got.Hour())
	assert.Equal(t, 0, got.Minute())
}

func TestNextAtUsesLocation(t *testing.T) {
	loc := time.FixedZone("plus5", 5*3600)
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC) // 05:00 local
	got := NextAt(now, reminder("06:00", nil), loc)
	assert.Equal(t, time.Date(2025, 10, 1, 6, 0, 0, 0, loc), got)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Run(ctx, reminder("20:00", nil), time.UTC, func() {})
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
