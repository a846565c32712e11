package services

import (
	"github.com/CPU-commits/Intranet_BRegistration/models"
	"github.com/CPU-commits/Intranet_BRegistration/stack"
)

// NATS subject every instance publishes seat deltas on
const REM_SEATS_SUBJECT = "registration/rem_seats"

// Models
var termSubjectModel = models.NewTermSubjectModel()
var termSubscriberModel = models.NewTermSubscriberModel()
var courseModel = models.NewCourseModel()

// Packages
var nats = stack.NewNats()
