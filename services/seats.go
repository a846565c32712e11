package services

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BRegistration/db"
	"github.com/CPU-commits/Intranet_BRegistration/models"
	"github.com/CPU-commits/Intranet_BRegistration/res"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var seatsService *SeatsService

type SeatsService struct{}

// RemainingFor computes max_seats minus subscriber count per subject.
// With no ids it answers for every subject in the term. Results are
// ordered by subject id.
func (s *SeatsService) RemainingFor(subjects []models.SubjectID) ([]models.SeatCount, *res.ErrorRes) {
	var pipeline mongo.Pipeline
	if len(subjects) > 0 {
		pipeline = append(pipeline, bson.D{
			{
				Key: "$match",
				Value: bson.M{
					"_id": bson.M{"$in": subjects},
				},
			},
		})
	}
	pipeline = append(pipeline,
		bson.D{
			{
				Key: "$lookup",
				Value: bson.M{
					"from":         models.TERM_SUBSCRIBERS_COLLECTION,
					"localField":   "_id",
					"foreignField": "subject",
					"as":           "subscribers",
				},
			},
		},
		bson.D{
			{
				Key: "$project",
				Value: bson.M{
					"rem_seats": bson.M{
						"$subtract": bson.A{
							"$max_seats",
							bson.M{"$size": "$subscribers"},
						},
					},
				},
			},
		},
		bson.D{
			{
				Key:   "$sort",
				Value: bson.M{"_id": 1},
			},
		},
	)

	cursor, err := termSubjectModel.Aggreagate(pipeline)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	var seatCounts []models.SeatCount
	if err := cursor.All(db.Ctx, &seatCounts); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	return seatCounts, nil
}

func NewSeatsService() *SeatsService {
	if seatsService == nil {
		seatsService = &SeatsService{}
	}
	return seatsService
}
