package models

// SeatCount is the wire pair broadcast to registration clients.
// RemSeats is server-authoritative: max_seats minus subscriber count.
// It can go negative transiently; display clamping is the client's
// concern.
type SeatCount struct {
	Subject  SubjectID `json:"subject" bson:"_id"`
	RemSeats int32     `json:"rem_seats" bson:"rem_seats"`
}
