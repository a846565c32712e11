package selection

import (
	"sync"

	"github.com/CPU-commits/Intranet_BRegistration/models"
)

// SeatView holds the displayed remaining-seat numbers. The server
// broadcast (or connect snapshot) is the source of truth; while the
// local student's own toggle is pending, the display adjusts by one
// relative to the last known server value. Other students' updates
// always win outright.
type SeatView struct {
	store *Store

	lock  sync.RWMutex
	known map[models.SubjectID]int32
}

func NewSeatView(store *Store) *SeatView {
	return &SeatView{
		store: store,
		known: make(map[models.SubjectID]int32),
	}
}

// Apply records server-authoritative counts, from a snapshot or a
// delta alike.
func (view *SeatView) Apply(seatCounts []models.SeatCount) {
	view.lock.Lock()
	defer view.lock.Unlock()
	for _, count := range seatCounts {
		view.known[count.Subject] = count.RemSeats
	}
}

// Remaining returns the display value for one subject, clamped at
// zero.
func (view *SeatView) Remaining(subject models.SubjectID) int32 {
	view.lock.RLock()
	known := view.known[subject]
	view.lock.RUnlock()

	if view.store.HasChanged(subject) {
		if view.store.IsSelected(subject) {
			known--
		} else {
			known++
		}
	}
	if known < 0 {
		return 0
	}
	return known
}
