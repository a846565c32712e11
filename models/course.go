package models

import (
	"github.com/CPU-commits/Intranet_BRegistration/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const COURSES_COLLECTION = "subjects"

// COMPLETED_COLLECTION holds (student, course) completion marks,
// written by the grades service. Read-only here.
const COMPLETED_COLLECTION = "completed"

// Course is the catalog entry a SubjectChoices group is built from.
// Prerequisite evaluation belongs to the catalog query, not to
// registration.
type Course struct {
	ID     primitive.ObjectID   `json:"_id" bson:"_id"`
	Level  uint8                `json:"level" bson:"level" example:"1"`
	Name   string               `json:"name" bson:"name" example:"Data Structures I"`
	Code   string               `json:"code" bson:"code" example:"CSE 127"`
	PreReq []primitive.ObjectID `json:"pre_req" bson:"pre_req"`
}

var courseModel *CourseModel

type CourseModel struct {
	CollectionName string
}

func (course *CourseModel) Use() *mongo.Collection {
	return DbConnect().GetCollection(course.CollectionName)
}

func (course *CourseModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := course.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (course *CourseModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := course.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (course *CourseModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := course.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (course *CourseModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := course.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewCourseModel() *CourseModel {
	if courseModel == nil {
		courseModel = &CourseModel{
			CollectionName: COURSES_COLLECTION,
		}
	}
	return courseModel
}
