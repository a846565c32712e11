package services

import (
	"net/http"
	"sort"

	"github.com/CPU-commits/Intranet_BRegistration/db"
	"github.com/CPU-commits/Intranet_BRegistration/funct"
	"github.com/CPU-commits/Intranet_BRegistration/models"
	"github.com/CPU-commits/Intranet_BRegistration/res"
	"github.com/CPU-commits/Intranet_BRegistration/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var catalogService *CatalogService

type CatalogService struct{}

// GetSubscribed returns the student's stored subject-id set, sorted.
func (c *CatalogService) GetSubscribed(claims *Claims) ([]models.SubjectID, *res.ErrorRes) {
	idObjStudent, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	cursor, err := termSubscriberModel.GetAll(bson.D{
		{
			Key:   "student",
			Value: idObjStudent,
		},
	}, &options.FindOptions{})
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	var subscribers []models.TermSubscriber
	if err := cursor.All(db.Ctx, &subscribers); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	subjects, _ := funct.Map(subscribers, func(sub models.TermSubscriber) (models.SubjectID, error) {
		return sub.Subject, nil
	})
	sort.Slice(subjects, func(i, j int) bool { return subjects[i] < subjects[j] })
	return subjects, nil
}

func (c *CatalogService) getCompletedSet(idStudent primitive.ObjectID) (map[string]struct{}, error) {
	cursor, err := models.DbConnect().GetCollection(models.COMPLETED_COLLECTION).Find(db.Ctx, bson.D{
		{
			Key:   "student",
			Value: idStudent,
		},
	})
	if err != nil {
		return nil, err
	}
	var completedRows []struct {
		Course primitive.ObjectID `bson:"subject"`
	}
	if err := cursor.All(db.Ctx, &completedRows); err != nil {
		return nil, err
	}
	completed := make(map[string]struct{}, len(completedRows))
	for _, row := range completedRows {
		completed[row.Course.Hex()] = struct{}{}
	}
	return completed, nil
}

func (c *CatalogService) getChoices(course models.Course) (*models.SubjectChoices, error) {
	cursor, err := termSubjectModel.GetAll(bson.D{
		{
			Key:   "course",
			Value: course.ID,
		},
	}, options.Find().SetSort(bson.D{
		{
			Key:   "group",
			Value: 1,
		},
	}))
	if err != nil {
		return nil, err
	}
	var choices []models.TermSubject
	if err := cursor.All(db.Ctx, &choices); err != nil {
		return nil, err
	}
	for i := range choices {
		if err := choices[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &models.SubjectChoices{
		Level:   course.Level,
		Name:    course.Name,
		Code:    course.Code,
		Choices: choices,
	}, nil
}

// GetRegisterableSubjects returns the offerable catalog for the
// student, grouped per course and ordered by (level, name). Courses
// already completed, or with unmet prerequisites, are filtered out;
// the completion data itself is produced elsewhere.
func (c *CatalogService) GetRegisterableSubjects(claims *Claims) ([]models.SubjectChoices, *res.ErrorRes) {
	idObjStudent, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusBadRequest,
		}
	}
	completed, err := c.getCompletedSet(idObjStudent)
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	// All courses offered this term
	cursor, err := courseModel.GetAll(bson.D{}, &options.FindOptions{})
	if err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	var courses []models.Course
	if err := cursor.All(db.Ctx, &courses); err != nil {
		return nil, &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	courses = funct.Filter(courses, func(course models.Course) bool {
		if _, isCompleted := completed[course.ID.Hex()]; isCompleted {
			return false
		}
		return !funct.Some(course.PreReq, func(preReq primitive.ObjectID) bool {
			_, isCompleted := completed[preReq.Hex()]
			return !isCompleted
		})
	})
	// Hydrate choices, at most 4 courses in flight
	subjectChoices := make([]*models.SubjectChoices, len(courses))
	if errRes := utils.Concurrency(4, len(courses), func(index int, setError func(errRes *res.ErrorRes)) {
		choices, err := c.getChoices(courses[index])
		if err != nil {
			setError(&res.ErrorRes{
				Err:        err,
				StatusCode: http.StatusServiceUnavailable,
			})
			return
		}
		subjectChoices[index] = choices
	}); errRes != nil {
		return nil, errRes
	}

	catalog := make([]models.SubjectChoices, 0, len(subjectChoices))
	for _, choices := range subjectChoices {
		if choices != nil && len(choices.Choices) > 0 {
			catalog = append(catalog, *choices)
		}
	}
	sort.Slice(catalog, func(i, j int) bool {
		if catalog[i].Level != catalog[j].Level {
			return catalog[i].Level < catalog[j].Level
		}
		return catalog[i].Name < catalog[j].Name
	})
	return catalog, nil
}

func NewCatalogService() *CatalogService {
	if catalogService == nil {
		catalogService = &CatalogService{}
	}
	return catalogService
}
