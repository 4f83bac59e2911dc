package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/ceod-api/schema"
	"github.com/bitmark-inc/ceod-api/score"
)

var (
	ErrSurveyNotFound = fmt.Errorf("survey record not found")
	ErrEmptyPatch     = fmt.Errorf("nothing to update")
)

// Survey - persistence operations of classified survey records
type Survey interface {
	CreateSurvey(ctx context.Context, record schema.SurveyRecord) (*schema.SurveyRecord, error)
	GetSurvey(ctx context.Context, id string) (*schema.SurveyRecord, error)
	ListSurveys(ctx context.Context, filter schema.SurveyFilter) ([]schema.SurveyRecord, error)
	UpdateSurvey(ctx context.Context, id string, patch schema.SurveyPatch) (*schema.SurveyRecord, error)
	DeleteSurvey(ctx context.Context, id string) error
}

// prepareSurvey assigns the identity and creation time of a new record
func prepareSurvey(record *schema.SurveyRecord, now time.Time) {
	record.ID = uuid.New().String()
	record.Timestamp = now.UTC().Unix()
}

// amendSurvey applies a patch and recomputes the classification from the
// merged counts so the stored result never disagrees with them.
func amendSurvey(record *schema.SurveyRecord, patch schema.SurveyPatch) error {
	if patch.Empty() {
		return ErrEmptyPatch
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	patch.Apply(record)
	record.Result = score.Classify(record.Observation)

	return nil
}

// CreateSurvey stores a new classified record
func (m *mongoDB) CreateSurvey(ctx context.Context, record schema.SurveyRecord) (*schema.SurveyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	prepareSurvey(&record, time.Now())

	if _, err := m.collection(schema.CeodResultCollection).InsertOne(ctx, &record); err != nil {
		return nil, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("survey record created: %s", record.ID)

	return &record, nil
}

// GetSurvey returns a record by its id
func (m *mongoDB) GetSurvey(ctx context.Context, id string) (*schema.SurveyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var record schema.SurveyRecord
	if err := m.collection(schema.CeodResultCollection).FindOne(ctx, bson.M{"id": id}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}

	return &record, nil
}

// ListSurveys returns records from the newest to the oldest
func (m *mongoDB) ListSurveys(ctx context.Context, filter schema.SurveyFilter) ([]schema.SurveyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.CeodResultCollection).Find(ctx, surveyQuery(filter), options.Find().SetSort(bson.M{"ts": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]schema.SurveyRecord, 0)
	for cursor.Next(ctx) {
		var r schema.SurveyRecord
		if err := cursor.Decode(&r); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("listed %d survey records", len(records))

	return records, nil
}

func surveyQuery(filter schema.SurveyFilter) bson.M {
	query := bson.M{}
	if filter.City != "" {
		query["city"] = bson.M{
			"$regex": primitive.Regex{
				Pattern: fmt.Sprintf(".*%s.*", regexp.QuoteMeta(filter.City)),
				Options: "i",
			},
		}
	}
	return query
}

// UpdateSurvey amends the location or the counts of a record. The
// classification is written together with the amended counts.
func (m *mongoDB) UpdateSurvey(ctx context.Context, id string, patch schema.SurveyPatch) (*schema.SurveyRecord, error) {
	record, err := m.GetSurvey(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := amendSurvey(record, patch); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.CeodResultCollection).UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{
			"city":         record.City,
			"neighborhood": record.Neighborhood,
			"carious":      record.Carious,
			"extracted":    record.Extracted,
			"filled":       record.Filled,
			"children":     record.Children,
			"result":       record.Result,
		},
	})
	if err != nil {
		return nil, err
	}

	if result.MatchedCount == 0 {
		return nil, ErrSurveyNotFound
	}

	return record, nil
}

// DeleteSurvey removes a record permanently
func (m *mongoDB) DeleteSurvey(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.CeodResultCollection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrSurveyNotFound
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("survey record deleted: %s", id)

	return nil
}
