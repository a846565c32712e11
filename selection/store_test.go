package selection

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/CPU-commits/Intranet_BRegistration/models"
)

func subjectWith(id models.SubjectID, meetings ...models.ClassMeeting) models.TermSubject {
	subject := models.TermSubject{
		ID:       id,
		Group:    1,
		MaxSeats: 30,
		Lecture:  meetings[0],
	}
	if len(meetings) > 1 {
		subject.Tutorial = &meetings[1]
	}
	return subject
}

func testCatalog() []models.SubjectChoices {
	return []models.SubjectChoices{
		{
			Level: 5,
			Name:  "Automatic Control",
			Code:  "EPM012",
			Choices: []models.TermSubject{
				subjectWith(1, lectureAt(models.MONDAY, 0, 1)),
				subjectWith(2, lectureAt(models.MONDAY, 0, 1)),
			},
		},
		{
			Level: 5,
			Name:  "Power Electronics",
			Code:  "EPM015",
			Choices: []models.TermSubject{
				subjectWith(3, lectureAt(models.MONDAY, 1, 2)),
				subjectWith(4, lectureAt(models.WEDNESDAY, 4, 5)),
			},
		},
	}
}

type registrarFunc func(ctx context.Context, subjects []models.SubjectID) error

func (fn registrarFunc) RegisterSubjects(ctx context.Context, subjects []models.SubjectID) error {
	return fn(ctx, subjects)
}

func TestStoreMutualExclusionWithinChoices(t *testing.T) {
	store := NewStore(testCatalog(), nil)

	store.Select(1)
	store.Select(2)

	if store.IsSelected(1) {
		t.Fatal("selecting 2 must deselect its group sibling 1")
	}
	if !store.IsSelected(2) {
		t.Fatal("expected 2 selected")
	}
	// The sibling vacated the shared Monday periods, so 2 stands alone
	if store.HasCollision(2) {
		t.Fatal("group siblings never collide with each other")
	}
}

func TestStoreCollisionAcrossGroups(t *testing.T) {
	store := NewStore(testCatalog(), nil)

	store.Select(1)
	store.Select(3)
	if !store.HasCollision(1) || !store.HasCollision(3) {
		t.Fatal("1 and 3 share Monday period 1, expected both to collide")
	}

	store.Select(4)
	if store.HasCollision(1) {
		t.Fatal("swapping 3 for 4 must clear the collision")
	}
}

func TestStoreToggleAndSelected(t *testing.T) {
	store := NewStore(testCatalog(), nil)

	store.Toggle(4)
	store.Toggle(1)
	if got, want := store.Selected(), []models.SubjectID{1, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Selected() = %v, want %v", got, want)
	}

	store.Toggle(4)
	if store.IsSelected(4) {
		t.Fatal("toggle must deselect a selected subject")
	}
	if len(store.SelectedMeetings()) != 1 {
		t.Fatalf("expected one meeting left, got %v", store.SelectedMeetings())
	}

	store.Toggle(99)
	if store.IsSelected(99) {
		t.Fatal("unknown ids stay unselected")
	}
}

func TestStoreSavedAndDiscard(t *testing.T) {
	store := NewStore(testCatalog(), []models.SubjectID{1})

	if !store.Saved() || store.HasChanged(1) {
		t.Fatal("fresh store must match its saved baseline")
	}

	store.Select(2)
	store.Select(4)
	if store.Saved() {
		t.Fatal("pending changes must clear the saved flag")
	}
	if !store.HasChanged(1) || !store.HasChanged(2) {
		t.Fatal("1 dropped and 2 added are both changed")
	}
	if store.HasChanged(4) == false {
		t.Fatal("4 added is changed")
	}

	store.Discard()
	if !store.Saved() {
		t.Fatal("discard must restore the baseline")
	}
	if got, want := store.Selected(), []models.SubjectID{1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Selected() after discard = %v, want %v", got, want)
	}
	if store.HasCollision(1) {
		t.Fatal("rebuilt grid must not report stale collisions")
	}
}

func TestStoreSaveAdvancesBaseline(t *testing.T) {
	store := NewStore(testCatalog(), []models.SubjectID{1})
	store.Select(2)

	var submitted []models.SubjectID
	ok := registrarFunc(func(_ context.Context, subjects []models.SubjectID) error {
		submitted = subjects
		return nil
	})
	if err := store.Save(context.Background(), ok); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if want := []models.SubjectID{2}; !reflect.DeepEqual(submitted, want) {
		t.Fatalf("submitted %v, want %v", submitted, want)
	}
	if !store.Saved() {
		t.Fatal("successful save must advance the baseline")
	}
}

func TestStoreSaveFailureKeepsPending(t *testing.T) {
	store := NewStore(testCatalog(), nil)
	store.Select(3)

	fail := registrarFunc(func(context.Context, []models.SubjectID) error {
		return errors.New("subject is full")
	})
	if err := store.Save(context.Background(), fail); err == nil {
		t.Fatal("expected the registrar error back")
	}
	if store.Saved() {
		t.Fatal("failed save must leave the pending change visible")
	}
	if !store.IsSelected(3) {
		t.Fatal("failed save must not touch the selection")
	}
}
