// Package selection holds the client side of course registration:
// the per-session selection store, its schedule-collision grid, and
// the live seat-count view fed by the server broadcast.
package selection

import (
	"github.com/CPU-commits/Intranet_BRegistration/funct"
	"github.com/CPU-commits/Intranet_BRegistration/models"
)

// ScheduleGrid indexes selected subjects by (day, period) cell. A
// cell with two or more distinct ids is a collision for every id in
// it. Periods are inclusive on both ends; out-of-range values are a
// programming error and panic on the array index.
type ScheduleGrid [models.SCHEDULE_DAYS][models.SCHEDULE_PERIODS][]models.SubjectID

func (grid *ScheduleGrid) Occupy(subject models.SubjectID, meetings []models.ClassMeeting) {
	for _, meeting := range meetings {
		for period := meeting.Start; period <= meeting.End; period++ {
			grid[meeting.Day][period] = append(grid[meeting.Day][period], subject)
		}
	}
}

func (grid *ScheduleGrid) Vacate(subject models.SubjectID, meetings []models.ClassMeeting) {
	for _, meeting := range meetings {
		for period := meeting.Start; period <= meeting.End; period++ {
			grid[meeting.Day][period] = funct.Filter(
				grid[meeting.Day][period],
				func(id models.SubjectID) bool { return id != subject },
			)
		}
	}
}

// HasCollision reports whether any cell covered by meetings holds
// the subject together with another selected subject.
func (grid *ScheduleGrid) HasCollision(subject models.SubjectID, meetings []models.ClassMeeting) bool {
	for _, meeting := range meetings {
		for period := meeting.Start; period <= meeting.End; period++ {
			cell := grid[meeting.Day][period]
			if len(cell) > 1 && funct.Some(cell, func(id models.SubjectID) bool {
				return id == subject
			}) {
				return true
			}
		}
	}
	return false
}
