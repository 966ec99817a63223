package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/ramanasai/reflectivei/internal/config"
)

// NextAt computes the next check-in time that falls on a configured workday and not a holiday.
// With no workdays configured every day qualifies.
func NextAt(now time.Time, r config.ReminderConfig, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	hour, min := 20, 0
	if t, err := time.ParseInLocation("15:04", strings.TrimSpace(r.Time), loc); err == nil {
		hour = t.Hour()
		min = t.Minute()
	}

	workdays := map[string]bool{}
	for _, d := range r.Workdays {
		if abbr, ok := config.WeekdayAbbr(d); ok {
			workdays[abbr] = true
		}
	}
	isWorkday := func(t time.Time) bool {
		return len(workdays) == 0 || workdays[t.Weekday().String()[:3]]
	}
	holidays := map[string]bool{}
	for _, h := range r.Holidays {
		holidays[strings.TrimSpace(h)] = true
	}
	isHoliday := func(t time.Time) bool {
		return holidays[t.Format("2006-01-02")]
	}

	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	// a year of holidays is the most we will skip
	for i := 0; i < 366; i++ {
		if isWorkday(cand) && !isHoliday(cand) {
			return cand
		}
		cand = cand.AddDate(0, 0, 1)
	}
	return cand
}

// Run calls f at every scheduled check-in until ctx is canceled.
func Run(ctx context.Context, r config.ReminderConfig, loc *time.Location, f func()) {
	next := NextAt(time.Now(), r, loc)
	t := time.NewTimer(time.Until(next))
	for {
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			f()
			next = NextAt(time.Now(), r, loc)
			t.Reset(time.Until(next))
		}
	}
}
