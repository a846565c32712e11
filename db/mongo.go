package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/CPU-commits/Intranet_BRegistration/settings"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var settingsData = settings.GetSettings()

// Ctx is the shared context for every collection operation
var Ctx = context.Background()

type MongoConn struct {
	client *mongo.Client
	dbName string
}

func (conn *MongoConn) GetCollection(collection string) *mongo.Collection {
	return conn.client.Database(conn.dbName).Collection(collection)
}

func (conn *MongoConn) GetCollections() ([]string, error) {
	collections, err := conn.client.Database(conn.dbName).ListCollectionNames(Ctx, struct{}{})
	if err != nil {
		return nil, err
	}
	return collections, nil
}

func (conn *MongoConn) CreateCollection(
	collection string,
	opts *options.CreateCollectionOptions,
) error {
	return conn.client.Database(conn.dbName).CreateCollection(Ctx, collection, opts)
}

// Client exposes the raw client for session-scoped transactions
func (conn *MongoConn) Client() *mongo.Client {
	return conn.client
}

func NewConnection(host, dbName string) *MongoConn {
	uri := fmt.Sprintf(
		"%s://%s:%s@%s",
		settingsData.MONGO_CONNECTION,
		settingsData.MONGO_ROOT_USERNAME,
		settingsData.MONGO_ROOT_PASSWORD,
		host,
	)
	ctx, cancel := context.WithTimeout(Ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Error connecting to MongoDB: %s", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("MongoDB is not responding: %s", err)
	}
	return &MongoConn{
		client: client,
		dbName: dbName,
	}
}
