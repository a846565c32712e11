package smaps

import (
	"github.com/CPU-commits/Intranet_BRegistration/models"
)

type SubjectsMap struct {
	Subjects []models.SubjectChoices `json:"subjects"`
}

type SubscribedMap struct {
	Subscribed []models.SubjectID `json:"subscribed"`
}

type RemSeatsMap struct {
	RemSeats []models.SeatCount `json:"rem_seats"`
}
