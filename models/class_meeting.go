package models

import (
	"errors"
	"fmt"
)

// Schedule grid bounds. The registration week runs Saturday through
// Thursday; Friday exists as a day value but carries no grid column.
const (
	SCHEDULE_DAYS    = 6
	SCHEDULE_PERIODS = 12
)

type MeetingKind string

const (
	LECTURE  MeetingKind = "lec"
	TUTORIAL MeetingKind = "tut"
	LAB      MeetingKind = "lab"
)

// WeekParity marks biweekly lab/tutorial meetings
type WeekParity string

const (
	EVERY_WEEK WeekParity = ""
	EVEN_WEEKS WeekParity = "even"
	ODD_WEEKS  WeekParity = "odd"
)

type DayOfWeek uint8

const (
	SATURDAY DayOfWeek = iota
	SUNDAY
	MONDAY
	TUESDAY
	WEDNESDAY
	THURSDAY
	FRIDAY
)

func (d DayOfWeek) String() string {
	names := [...]string{
		"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
	}
	if int(d) >= len(names) {
		return fmt.Sprintf("DayOfWeek(%d)", uint8(d))
	}
	return names[d]
}

type ClassLocation struct {
	Building string `json:"building" bson:"building" example:"Electricity Building"`
	Floor    uint8  `json:"floor" bson:"floor" example:"2"`
	Room     string `json:"room" bson:"room" example:"C39"`
}

// ClassMeeting is one weekly (or biweekly) scheduled occurrence of a
// subject component. Lectures carry a professor name; labs and
// tutorials carry a section number and may be biweekly.
type ClassMeeting struct {
	Kind      MeetingKind   `json:"kind" bson:"kind" example:"lec"`
	Professor string        `json:"professor,omitempty" bson:"professor,omitempty" example:"M. Turky"`
	Section   uint8         `json:"section,omitempty" bson:"section,omitempty" example:"1"`
	Parity    WeekParity    `json:"parity,omitempty" bson:"parity,omitempty" example:"odd"`
	Day       DayOfWeek     `json:"day" bson:"day" example:"0"`
	Start     uint8         `json:"start" bson:"start" example:"4"`
	End       uint8         `json:"end" bson:"end" example:"5"`
	Location  ClassLocation `json:"location" bson:"location"`
}

var (
	ErrMeetingKind    = errors.New("invalid meeting kind")
	ErrMeetingDay     = errors.New("meeting day outside the registration week")
	ErrMeetingPeriod  = errors.New("meeting period range out of bounds")
	ErrLectureNoProf  = errors.New("lecture meeting requires a professor")
	ErrSectionMissing = errors.New("lab/tutorial meeting requires a section")
)

// Validate checks the kind-specific invariants. Period ranges are
// inclusive and 0-indexed.
func (meeting *ClassMeeting) Validate() error {
	switch meeting.Kind {
	case LECTURE:
		if meeting.Professor == "" {
			return ErrLectureNoProf
		}
	case TUTORIAL, LAB:
		if meeting.Section == 0 {
			return ErrSectionMissing
		}
	default:
		return ErrMeetingKind
	}
	if meeting.Day >= SCHEDULE_DAYS {
		return ErrMeetingDay
	}
	if meeting.Start > meeting.End || meeting.End >= SCHEDULE_PERIODS {
		return ErrMeetingPeriod
	}
	return nil
}
