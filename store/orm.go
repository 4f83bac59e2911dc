package store

import (
	"context"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/ceod-api/schema"
)

const ormLogPrefix = "orm"

// ORMStore is a CeodStore backed by a relational database through gorm
type ORMStore struct {
	ormDB *gorm.DB
}

func NewORMStore(ormDB *gorm.DB) *ORMStore {
	return &ORMStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *ORMStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// Close closes the database connections
func (s *ORMStore) Close() {
	log.WithField("prefix", ormLogPrefix).Info("closing orm db connections")
	if err := s.ormDB.Close(); err != nil {
		log.WithField("prefix", ormLogPrefix).WithError(err).Error("can not close orm db")
	}
}

// CreateSurvey stores a new classified record
func (s *ORMStore) CreateSurvey(ctx context.Context, record schema.SurveyRecord) (*schema.SurveyRecord, error) {
	prepareSurvey(&record, time.Now())

	if err := s.ormDB.Create(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetSurvey returns a record by its id
func (s *ORMStore) GetSurvey(ctx context.Context, id string) (*schema.SurveyRecord, error) {
	var record schema.SurveyRecord
	if err := s.ormDB.Where("id = ?", id).First(&record).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}

	return &record, nil
}

// ListSurveys returns records from the newest to the oldest
func (s *ORMStore) ListSurveys(ctx context.Context, filter schema.SurveyFilter) ([]schema.SurveyRecord, error) {
	records := []schema.SurveyRecord{}

	q := s.ormDB.Order("ts DESC")
	if filter.City != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+escapeLike(strings.ToLower(filter.City))+"%")
	}

	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// UpdateSurvey amends a record inside a transaction holding its row lock,
// writing the recomputed classification together with the counts.
func (s *ORMStore) UpdateSurvey(ctx context.Context, id string, patch schema.SurveyPatch) (*schema.SurveyRecord, error) {
	tx := s.ormDB.BeginTx(ctx, nil)
	if tx.Error != nil {
		return nil, tx.Error
	}

	var record schema.SurveyRecord
	if err := tx.Set("gorm:query_option", "FOR UPDATE").Where("id = ?", id).First(&record).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrSurveyNotFound
		}
		return nil, err
	}

	if err := amendSurvey(&record, patch); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Save(&record).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// DeleteSurvey removes a record permanently
func (s *ORMStore) DeleteSurvey(ctx context.Context, id string) error {
	result := s.ormDB.Delete(schema.SurveyRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSurveyNotFound
	}

	return nil
}
