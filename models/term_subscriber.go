package models

import (
	"github.com/CPU-commits/Intranet_BRegistration/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const TERM_SUBSCRIBERS_COLLECTION = "term_subscribers"

// TermSubscriber is one (student, subject) subscription row. A
// student's rows are replaced wholesale by the registration
// transaction, never patched.
type TermSubscriber struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Student primitive.ObjectID `json:"student" bson:"student"`
	Subject SubjectID          `json:"subject" bson:"subject"`
	Date    primitive.DateTime `json:"date" bson:"date"`
}

var termSubscriberModel *TermSubscriberModel

type TermSubscriberModel struct {
	CollectionName string
}

func (subscriber *TermSubscriberModel) Use() *mongo.Collection {
	return DbConnect().GetCollection(subscriber.CollectionName)
}

func (subscriber *TermSubscriberModel) GetOne(filter bson.D) *mongo.SingleResult {
	cursor := subscriber.Use().FindOne(db.Ctx, filter)
	return cursor
}

func (subscriber *TermSubscriberModel) GetAll(filter bson.D, options *options.FindOptions) (*mongo.Cursor, error) {
	cursor, err := subscriber.Use().Find(db.Ctx, filter, options)
	return cursor, err
}

func (subscriber *TermSubscriberModel) Aggreagate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	cursor, err := subscriber.Use().Aggregate(db.Ctx, pipeline)
	return cursor, err
}

func (subscriber *TermSubscriberModel) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	result, err := subscriber.Use().InsertOne(db.Ctx, data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EnsureCollections creates the collections this service owns, with
// their validators. Called once at server startup.
func EnsureCollections() error {
	collections, err := DbConnect().GetCollections()
	if err != nil {
		return err
	}
	for _, collection := range collections {
		if collection == TERM_SUBSCRIBERS_COLLECTION {
			return nil
		}
	}
	var jsonSchema = bson.M{
		"bsonType": "object",
		"required": []string{
			"student",
			"subject",
			"date",
		},
		"properties": bson.M{
			"student": bson.M{"bsonType": "objectId"},
			"subject": bson.M{"bsonType": "long"},
			"date":    bson.M{"bsonType": "date"},
		},
	}
	var validators = bson.M{
		"$jsonSchema": jsonSchema,
	}
	opts := &options.CreateCollectionOptions{
		Validator: validators,
	}
	return DbConnect().CreateCollection(TERM_SUBSCRIBERS_COLLECTION, opts)
}

func NewTermSubscriberModel() *TermSubscriberModel {
	if termSubscriberModel == nil {
		termSubscriberModel = &TermSubscriberModel{
			CollectionName: TERM_SUBSCRIBERS_COLLECTION,
		}
	}
	return termSubscriberModel
}
