package service

import (
	"fmt"
	"time"

	"uni-portal/backend/internal/model"
)

// WeekConflict describes a date-range collision with a stored week.
type WeekConflict struct {
	WeekID   string
	WeekName string
	Reason   string
}

const conflictDateFormat = "02.01.2006"

// FindConflict scans existing weeks for any overlap with the candidate
// [start, end] range and returns the first collision, or nil.
//
// Both boundaries are inclusive calendar days: two ranges overlap iff
// NOT (e1 < s2 OR e2 < s1). A candidate starting on an existing week's
// end date conflicts; starting the day after does not. A linear scan is
// fine, stores hold tens of weeks, not millions.
func FindConflict(candidateStart, candidateEnd time.Time, existing []model.Week) *WeekConflict {
	cs := truncateToDay(candidateStart)
	ce := truncateToDay(candidateEnd)

	for i := range existing {
		w := &existing[i]
		ws := truncateToDay(w.StartDate)
		we := truncateToDay(w.EndDate)

		if we.Before(cs) || ce.Before(ws) {
			continue
		}

		return &WeekConflict{
			WeekID:   w.WeekID,
			WeekName: w.Name,
			Reason: fmt.Sprintf("date range overlaps week %q (%s - %s)",
				w.Name, ws.Format(conflictDateFormat), we.Format(conflictDateFormat)),
		}
	}

	return nil
}

// truncateToDay drops the time-of-day component in the value's location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
