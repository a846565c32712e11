package selection

import (
	"reflect"
	"testing"

	"github.com/CPU-commits/Intranet_BRegistration/models"
)

func lectureAt(day models.DayOfWeek, start, end uint8) models.ClassMeeting {
	return models.ClassMeeting{
		Kind:      models.LECTURE,
		Professor: "M. Turky",
		Day:       day,
		Start:     start,
		End:       end,
		Location: models.ClassLocation{
			Building: "Electricity Building",
			Floor:    2,
			Room:     "C39",
		},
	}
}

func TestGridOccupyVacateRoundTrip(t *testing.T) {
	var grid ScheduleGrid
	meetings := []models.ClassMeeting{
		lectureAt(models.MONDAY, 0, 1),
		lectureAt(models.TUESDAY, 4, 4),
	}

	grid.Occupy(7, meetings)
	if len(grid[models.MONDAY][0]) != 1 || len(grid[models.MONDAY][1]) != 1 {
		t.Fatalf("expected subject 7 in Monday periods 0 and 1, got %v", grid[models.MONDAY])
	}
	if len(grid[models.MONDAY][2]) != 0 {
		t.Fatalf("period 2 outside the inclusive range should stay empty, got %v", grid[models.MONDAY][2])
	}

	grid.Vacate(7, meetings)
	if !reflect.DeepEqual(grid, ScheduleGrid{}) {
		t.Fatalf("vacate left residual entries: %v", grid)
	}
}

func TestGridCollision(t *testing.T) {
	var grid ScheduleGrid
	first := []models.ClassMeeting{lectureAt(models.SATURDAY, 2, 4)}
	second := []models.ClassMeeting{lectureAt(models.SATURDAY, 4, 6)}

	grid.Occupy(1, first)
	if grid.HasCollision(1, first) {
		t.Fatal("single occupant must not collide")
	}

	grid.Occupy(2, second)
	if !grid.HasCollision(1, first) {
		t.Fatal("subject 1 shares period 4, expected collision")
	}
	if !grid.HasCollision(2, second) {
		t.Fatal("subject 2 shares period 4, expected collision")
	}

	grid.Vacate(2, second)
	if grid.HasCollision(1, first) {
		t.Fatal("collision must clear once the other subject vacates")
	}
}

func TestGridCollisionNotOccupied(t *testing.T) {
	var grid ScheduleGrid
	occupied := []models.ClassMeeting{lectureAt(models.SUNDAY, 0, 3)}
	grid.Occupy(1, occupied)

	// Subject 2 is not in the grid: overlap alone is no collision
	if grid.HasCollision(2, []models.ClassMeeting{lectureAt(models.SUNDAY, 1, 2)}) {
		t.Fatal("unoccupied subject must not report collisions")
	}
}
