//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/bitmark-inc/ceod-api/store CeodStore

package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second

	DuplicateKeyCode = 11000
)

// CeodStore - interface for survey storage backends
type CeodStore interface {
	Survey
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

func (m mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) CeodStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
