package selection

import (
	"context"
	"sort"

	"github.com/CPU-commits/Intranet_BRegistration/models"
)

// Registrar submits the full desired selection to the server. The
// server diffs it against stored state; submitting twice is safe.
type Registrar interface {
	RegisterSubjects(ctx context.Context, subjects []models.SubjectID) error
}

type entry struct {
	meetings []models.ClassMeeting
	// index of the owning SubjectChoices group; at most one entry
	// per group may be selected
	choice   int
	selected bool
	initial  bool
}

// Store is the per-student selection state for one open registration
// page. All mutations run on the caller's single goroutine; only the
// grid of currently selected subjects is indexed, so toggling costs
// O(meetings of that subject).
type Store struct {
	entries map[models.SubjectID]*entry
	grid    ScheduleGrid
	choices []models.SubjectChoices
}

func NewStore(catalog []models.SubjectChoices, saved []models.SubjectID) *Store {
	savedSet := make(map[models.SubjectID]struct{}, len(saved))
	for _, id := range saved {
		savedSet[id] = struct{}{}
	}
	store := &Store{
		entries: make(map[models.SubjectID]*entry),
		choices: catalog,
	}
	for choiceIdx, choices := range catalog {
		for _, subject := range choices.Choices {
			_, isSaved := savedSet[subject.ID]
			store.entries[subject.ID] = &entry{
				meetings: subject.Meetings(),
				choice:   choiceIdx,
				selected: isSaved,
				initial:  isSaved,
			}
			if isSaved {
				store.grid.Occupy(subject.ID, store.entries[subject.ID].meetings)
			}
		}
	}
	return store
}

// Select is a no-op for unknown or already-selected ids. Selecting
// deselects every other subject of the same choice group first.
func (store *Store) Select(subject models.SubjectID) {
	ent, ok := store.entries[subject]
	if !ok || ent.selected {
		return
	}
	for id, other := range store.entries {
		if id != subject && other.choice == ent.choice && other.selected {
			store.Deselect(id)
		}
	}
	ent.selected = true
	store.grid.Occupy(subject, ent.meetings)
}

func (store *Store) Deselect(subject models.SubjectID) {
	ent, ok := store.entries[subject]
	if !ok || !ent.selected {
		return
	}
	ent.selected = false
	store.grid.Vacate(subject, ent.meetings)
}

func (store *Store) Toggle(subject models.SubjectID) {
	if store.IsSelected(subject) {
		store.Deselect(subject)
	} else {
		store.Select(subject)
	}
}

func (store *Store) IsSelected(subject models.SubjectID) bool {
	ent, ok := store.entries[subject]
	return ok && ent.selected
}

// HasChanged reports whether the current selection differs from the
// last server-confirmed baseline.
func (store *Store) HasChanged(subject models.SubjectID) bool {
	ent, ok := store.entries[subject]
	return ok && ent.selected != ent.initial
}

func (store *Store) HasCollision(subject models.SubjectID) bool {
	ent, ok := store.entries[subject]
	if !ok {
		return false
	}
	return store.grid.HasCollision(subject, ent.meetings)
}

// SelectedMeetings flattens every selected subject's meetings for
// the timetable view.
func (store *Store) SelectedMeetings() []models.ClassMeeting {
	var meetings []models.ClassMeeting
	for _, id := range store.Selected() {
		meetings = append(meetings, store.entries[id].meetings...)
	}
	return meetings
}

// Selected returns the current selection as a sorted id set.
func (store *Store) Selected() []models.SubjectID {
	var selected []models.SubjectID
	for id, ent := range store.entries {
		if ent.selected {
			selected = append(selected, id)
		}
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i] < selected[j] })
	return selected
}

// Saved reports whether nothing is pending.
func (store *Store) Saved() bool {
	for _, ent := range store.entries {
		if ent.selected != ent.initial {
			return false
		}
	}
	return true
}

// Discard resets every entry to its baseline and rebuilds the grid
// from scratch.
func (store *Store) Discard() {
	store.grid = ScheduleGrid{}
	for id, ent := range store.entries {
		ent.selected = ent.initial
		if ent.selected {
			store.grid.Occupy(id, ent.meetings)
		}
	}
}

// Save submits the selected set. On success the baseline advances;
// on failure state is untouched so the pending changes stay visible
// for retry or discard.
func (store *Store) Save(ctx context.Context, registrar Registrar) error {
	if err := registrar.RegisterSubjects(ctx, store.Selected()); err != nil {
		return err
	}
	for _, ent := range store.entries {
		ent.initial = ent.selected
	}
	return nil
}

// Choices exposes the catalog the store was built from.
func (store *Store) Choices() []models.SubjectChoices {
	return store.choices
}
