package models

import (
	"errors"
	"testing"
)

func validLecture() ClassMeeting {
	return ClassMeeting{
		Kind:      LECTURE,
		Professor: "M. Turky",
		Day:       MONDAY,
		Start:     2,
		End:       3,
		Location: ClassLocation{
			Building: "Electricity Building",
			Floor:    2,
			Room:     "C39",
		},
	}
}

func TestClassMeetingValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ClassMeeting)
		want   error
	}{
		{
			name:   "valid lecture",
			mutate: func(*ClassMeeting) {},
			want:   nil,
		},
		{
			name: "unknown kind",
			mutate: func(meeting *ClassMeeting) {
				meeting.Kind = "seminar"
			},
			want: ErrMeetingKind,
		},
		{
			name: "lecture without professor",
			mutate: func(meeting *ClassMeeting) {
				meeting.Professor = ""
			},
			want: ErrLectureNoProf,
		},
		{
			name: "tutorial without section",
			mutate: func(meeting *ClassMeeting) {
				meeting.Kind = TUTORIAL
				meeting.Section = 0
			},
			want: ErrSectionMissing,
		},
		{
			name: "friday has no grid column",
			mutate: func(meeting *ClassMeeting) {
				meeting.Day = FRIDAY
			},
			want: ErrMeetingDay,
		},
		{
			name: "inverted period range",
			mutate: func(meeting *ClassMeeting) {
				meeting.Start = 5
				meeting.End = 4
			},
			want: ErrMeetingPeriod,
		},
		{
			name: "end past the last period",
			mutate: func(meeting *ClassMeeting) {
				meeting.End = SCHEDULE_PERIODS
			},
			want: ErrMeetingPeriod,
		},
		{
			name: "single period meeting",
			mutate: func(meeting *ClassMeeting) {
				meeting.Start = 11
				meeting.End = 11
			},
			want: nil,
		},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			meeting := validLecture()
			testCase.mutate(&meeting)
			if err := meeting.Validate(); !errors.Is(err, testCase.want) {
				t.Fatalf("Validate() = %v, want %v", err, testCase.want)
			}
		})
	}
}

func TestTermSubjectValidate(t *testing.T) {
	lab := ClassMeeting{
		Kind:    LAB,
		Section: 1,
		Parity:  ODD_WEEKS,
		Day:     THURSDAY,
		Start:   8,
		End:     9,
	}
	subject := TermSubject{
		ID:       104,
		Group:    2,
		MaxSeats: 30,
		Lecture:  validLecture(),
		Lab:      &lab,
	}
	if err := subject.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	swapped := subject
	swapped.Lecture = lab
	if err := swapped.Validate(); !errors.Is(err, ErrNotALecture) {
		t.Fatalf("Validate() = %v, want %v", err, ErrNotALecture)
	}

	badLab := subject
	tut := validLecture()
	badLab.Lab = &tut
	if err := badLab.Validate(); !errors.Is(err, ErrNotALab) {
		t.Fatalf("Validate() = %v, want %v", err, ErrNotALab)
	}
}

func TestTermSubjectMeetings(t *testing.T) {
	subject := TermSubject{Lecture: validLecture()}
	if got := subject.Meetings(); len(got) != 1 || got[0].Kind != LECTURE {
		t.Fatalf("Meetings() = %v, want lecture only", got)
	}

	tut := ClassMeeting{Kind: TUTORIAL, Section: 3, Day: SUNDAY, Start: 0, End: 0}
	subject.Tutorial = &tut
	if got := subject.Meetings(); len(got) != 2 || got[1].Kind != TUTORIAL {
		t.Fatalf("Meetings() = %v, want lecture then tutorial", got)
	}
}

func TestDayOfWeekString(t *testing.T) {
	if got := SATURDAY.String(); got != "Saturday" {
		t.Fatalf("SATURDAY.String() = %q", got)
	}
	if got := DayOfWeek(9).String(); got != "DayOfWeek(9)" {
		t.Fatalf("DayOfWeek(9).String() = %q", got)
	}
}
