package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexCeodResultCollection())
}

// Close releases the indexer connection
func (m *MongoDBIndexer) Close() error {
	return m.Client.Disconnect(m.ctx)
}

func (m *MongoDBIndexer) IndexCeodResultCollection() error {
	if err := m.createIndex(CeodResultCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(CeodResultCollection, mongo.IndexModel{
		Keys: bson.M{
			"ts": -1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(CeodResultCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "city", Value: 1},
			{Key: "neighborhood", Value: 1},
		},
	})
}
