package services

import (
	"reflect"
	"testing"

	"github.com/CPU-commits/Intranet_BRegistration/models"
)

func TestNormalizeSubjects(t *testing.T) {
	got := normalizeSubjects([]int64{3, 1, 3, 2, 1})
	want := []models.SubjectID{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeSubjects = %v, want %v", got, want)
	}
	if normalizeSubjects(nil) != nil {
		t.Fatal("empty input must stay empty")
	}
}

func TestSymmetricDifference(t *testing.T) {
	cases := []struct {
		name           string
		target, stored []models.SubjectID
		want           []models.SubjectID
	}{
		{
			name:   "partial overlap",
			target: []models.SubjectID{2, 3, 4},
			stored: []models.SubjectID{1, 2, 3},
			want:   []models.SubjectID{1, 4},
		},
		{
			name:   "identical sets",
			target: []models.SubjectID{5, 6},
			stored: []models.SubjectID{5, 6},
			want:   nil,
		},
		{
			name:   "drop everything",
			target: nil,
			stored: []models.SubjectID{1, 2},
			want:   []models.SubjectID{1, 2},
		},
		{
			name:   "first registration",
			target: []models.SubjectID{7},
			stored: nil,
			want:   []models.SubjectID{7},
		},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			got := symmetricDifference(testCase.target, testCase.stored)
			if !reflect.DeepEqual(got, testCase.want) {
				t.Fatalf("symmetricDifference(%v, %v) = %v, want %v",
					testCase.target, testCase.stored, got, testCase.want)
			}
		})
	}
}

func TestAdded(t *testing.T) {
	got := added(
		[]models.SubjectID{2, 3, 4},
		[]models.SubjectID{1, 2, 3},
	)
	want := []models.SubjectID{4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("added = %v, want %v", got, want)
	}
	if added(nil, []models.SubjectID{1}) != nil {
		t.Fatal("empty target adds nothing")
	}
}
