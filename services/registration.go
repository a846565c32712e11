package services

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/CPU-commits/Intranet_BRegistration/db"
	"github.com/CPU-commits/Intranet_BRegistration/models"
	"github.com/CPU-commits/Intranet_BRegistration/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var registrationService *RegistrationService

var (
	ErrUnknownSubject = errors.New("subject does not exist")
	ErrSubjectFull    = errors.New("subject has no remaining seats")
)

type RegistrationService struct {
	seatsService *SeatsService
	hub          *SeatsHub
}

// normalizeSubjects dedupes the submitted ids and orders them for
// deterministic diffing.
func normalizeSubjects(raw []int64) []models.SubjectID {
	seen := make(map[models.SubjectID]struct{}, len(raw))
	var subjects []models.SubjectID
	for _, id := range raw {
		subject := models.SubjectID(id)
		if _, ok := seen[subject]; ok {
			continue
		}
		seen[subject] = struct{}{}
		subjects = append(subjects, subject)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i] < subjects[j] })
	return subjects
}

// symmetricDifference of two sorted id slices, sorted.
func symmetricDifference(target, stored []models.SubjectID) []models.SubjectID {
	var diff []models.SubjectID
	i, j := 0, 0
	for i < len(target) && j < len(stored) {
		switch {
		case target[i] < stored[j]:
			diff = append(diff, target[i])
			i++
		case target[i] > stored[j]:
			diff = append(diff, stored[j])
			j++
		default:
			i++
			j++
		}
	}
	diff = append(diff, target[i:]...)
	diff = append(diff, stored[j:]...)
	return diff
}

// added returns the ids in target missing from stored, both sorted.
func added(target, stored []models.SubjectID) []models.SubjectID {
	var result []models.SubjectID
	j := 0
	for _, id := range target {
		for j < len(stored) && stored[j] < id {
			j++
		}
		if j < len(stored) && stored[j] == id {
			continue
		}
		result = append(result, id)
	}
	return result
}

func (r *RegistrationService) getStored(idStudent primitive.ObjectID) ([]models.SubjectID, error) {
	cursor, err := termSubscriberModel.GetAll(bson.D{
		{
			Key:   "student",
			Value: idStudent,
		},
	}, nil)
	if err != nil {
		return nil, err
	}
	var rows []models.TermSubscriber
	if err := cursor.All(db.Ctx, &rows); err != nil {
		return nil, err
	}
	stored := make([]models.SubjectID, 0, len(rows))
	for _, row := range rows {
		stored = append(stored, row.Subject)
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i] < stored[j] })
	return stored, nil
}

// checkCapacity verifies, inside the transaction, that every subject
// being added still has a free seat. The whole replace aborts if any
// addition would exceed max_seats. Counting alone cannot see a
// concurrent insert under snapshot isolation, so every added subject
// doc is also written; two transactions adding the same subject then
// conflict, and the loser retries against the committed count.
func (r *RegistrationService) checkCapacity(
	sessCtx mongo.SessionContext,
	addedSubjects []models.SubjectID,
) error {
	for _, id := range addedSubjects {
		var subject models.TermSubject
		err := termSubjectModel.Use().FindOne(sessCtx, bson.D{
			{
				Key:   "_id",
				Value: id,
			},
		}).Decode(&subject)
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("%w: %d", ErrUnknownSubject, id)
		}
		if err != nil {
			return err
		}
		if _, err := termSubjectModel.Use().UpdateOne(sessCtx, bson.D{
			{
				Key:   "_id",
				Value: id,
			},
		}, bson.D{
			{
				Key:   "$currentDate",
				Value: bson.M{"last_subscribed": true},
			},
		}); err != nil {
			return err
		}
		count, err := termSubscriberModel.Use().CountDocuments(sessCtx, bson.D{
			{
				Key:   "subject",
				Value: id,
			},
		})
		if err != nil {
			return err
		}
		if count >= int64(subject.MaxSeats) {
			return fmt.Errorf("%w: %d", ErrSubjectFull, id)
		}
	}
	return nil
}

// RegisterSubjects replaces the student's subscriptions with the
// target set. The client submits its full desired selection; the
// diff against stored state decides what actually changes. An empty
// diff is a no-op, which also makes blind re-submits safe.
func (r *RegistrationService) RegisterSubjects(
	claims *Claims,
	rawSubjects []int64,
) ([]models.SeatCount, *res.ErrorRes) {
	idObjStudent, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	target := normalizeSubjects(rawSubjects)
	stored, err := r.getStored(idObjStudent)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	diff := symmetricDifference(target, stored)
	if len(diff) == 0 {
		return nil, nil
	}
	addedSubjects := added(target, stored)

	session, err := models.DbConnect().Client().StartSession()
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	defer session.EndSession(db.Ctx)

	_, err = session.WithTransaction(db.Ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if _, err := termSubscriberModel.Use().DeleteMany(sessCtx, bson.D{
			{
				Key:   "student",
				Value: idObjStudent,
			},
		}); err != nil {
			return nil, err
		}
		if err := r.checkCapacity(sessCtx, addedSubjects); err != nil {
			return nil, err
		}
		if len(target) == 0 {
			return nil, nil
		}
		rows := make([]interface{}, 0, len(target))
		now := primitive.NewDateTimeFromTime(time.Now())
		for _, subject := range target {
			rows = append(rows, models.TermSubscriber{
				Student: idObjStudent,
				Subject: subject,
				Date:    now,
			})
		}
		if _, err := termSubscriberModel.Use().InsertMany(sessCtx, rows); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		statusCode := http.StatusServiceUnavailable
		if errors.Is(err, ErrUnknownSubject) {
			statusCode = http.StatusBadRequest
		} else if errors.Is(err, ErrSubjectFull) {
			statusCode = http.StatusConflict
		}
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: statusCode,
		}
	}

	// Seat counts changed only for the diff; recompute and fan out
	seatCounts, errRes := r.seatsService.RemainingFor(diff)
	if errRes != nil {
		return nil, errRes
	}
	if err := nats.PublishEncode(REM_SEATS_SUBJECT, seatCounts); err != nil {
		// The commit already happened; clients resync on reconnect
		log.Printf("Error publishing seat counts: %v", err)
		r.hub.Publish(seatCounts)
	}
	return seatCounts, nil
}

func NewRegistrationService() *RegistrationService {
	if registrationService == nil {
		registrationService = &RegistrationService{
			seatsService: NewSeatsService(),
			hub:          NewSeatsHub(),
		}
	}
	return registrationService
}
