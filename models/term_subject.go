package models

import (
	"errors"

	"github.com/CPU-commits/Intranet_BRegistration/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const TERM_SUBJECTS_COLLECTION = "term_subjects"

// SubjectID identifies one registerable subject. Stable across
// client and server, totally ordered.
type SubjectID int64

// TermSubject is one registerable choice: a lecture plus optional
// tutorial/lab companions, offered as a numbered group of a course.
type TermSubject struct {
	ID       SubjectID          `json:"_id" bson:"_id" example:"104"`
	Course   primitive.ObjectID `json:"course" bson:"course" example:"637d5de216f58bc8ec7f7f51"`
	Group    uint8              `json:"group" bson:"group" example:"2"`
	MaxSeats uint32             `json:"max_seats" bson:"max_seats" example:"30"`
	Lecture  ClassMeeting       `json:"lec" bson:"lec"`
	Tutorial *ClassMeeting      `json:"tut,omitempty" bson:"tut,omitempty"`
	Lab      *ClassMeeting      `json:"lab,omitempty" bson:"lab,omitempty"`
}

var (
	ErrNotALecture  = errors.New("subject lec meeting is not a lecture")
	ErrNotATutorial = errors.New("subject tut meeting is not a tutorial")
	ErrNotALab      = errors.New("subject lab meeting is not a lab")
)

// Meetings flattens the subject into its scheduled occurrences,
// lecture first.
func (subject *TermSubject) Meetings() []ClassMeeting {
	meetings := []ClassMeeting{subject.Lecture}
	if subject.Tutorial != nil {
		meetings = append(meetings, *subject.Tutorial)
	}
	if subject.Lab != nil {
		meetings = append(meetings, *subject.Lab)
	}
	return meetings
}

func (subject *TermSubject) Validate() error {
	if subject.Lecture.Kind != LECTURE {
		return ErrNotALecture
	}
	if subject.Tutorial != nil && subject.Tutorial.Kind != TUTORIAL {
		return ErrNotATutorial
	}
	if subject.Lab != nil && subject.Lab.Kind != LAB {
		return ErrNotALab
	}
	for _, meeting := range subject.Meetings() {
		meeting := meeting
		if err := meeting.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SubjectChoices groups the alternative groups/sections offered for
// one catalog course. At most one choice may be selected at a time.
type SubjectChoices struct {
	Level   uint8         `json:"level" bson:"level" example:"1"`
	Name    string        `json:"name" bson:"name" example:"Data Structures I"`
	Code    string        `json:"code" bson:"code" example:"CSE 127"`
	Choices []TermSubject `json:"choices" bson:"choices"`
}

var termSubjectModel *TermSubjectModel

type TermSubjectModel struct {
	CollectionName string
}

func (subject *TermSubjectModel) Use() *mongo.Collection {
	return DbConnect().GetCollection(subject.CollectionName)
}

func (subject *TermSubjectModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := subject.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (subject *TermSubjectModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := subject.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (subject *TermSubjectModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := subject.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (subject *TermSubjectModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := subject.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func NewTermSubjectModel() *TermSubjectModel {
	if termSubjectModel == nil {
		termSubjectModel = &TermSubjectModel{
			CollectionName: TERM_SUBJECTS_COLLECTION,
		}
	}
	return termSubjectModel
}
