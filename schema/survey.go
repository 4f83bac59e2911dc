package schema

import (
	"errors"
	"strings"
)

const (
	CeodResultCollection = "ceodResults"
)

var (
	ErrEmptyCity         = errors.New("city must not be empty")
	ErrEmptyNeighborhood = errors.New("neighborhood must not be empty")
)

// SurveyRecord is a classified observation stored for one city neighborhood.
type SurveyRecord struct {
	ID           string `json:"id" bson:"id" gorm:"primary_key"`
	City         string `json:"city" bson:"city" gorm:"not null"`
	Neighborhood string `json:"neighborhood" bson:"neighborhood" gorm:"not null"`
	Observation  `bson:",inline" gorm:"embedded"`
	Result       Result `json:"result" bson:"result" gorm:"embedded;embedded_prefix:result_"`
	Timestamp    int64  `json:"timestamp" bson:"ts" gorm:"column:ts;index"`
}

// TableName keeps the relational table in line with the mongo collection
func (SurveyRecord) TableName() string {
	return "ceod_results"
}

// ValidateLocation trims the location fields and rejects blank values.
func (r *SurveyRecord) ValidateLocation() error {
	r.City = strings.TrimSpace(r.City)
	r.Neighborhood = strings.TrimSpace(r.Neighborhood)

	if r.City == "" {
		return ErrEmptyCity
	}
	if r.Neighborhood == "" {
		return ErrEmptyNeighborhood
	}
	return nil
}

// SurveyPatch carries the fields of an amendment. Nil fields are left untouched.
type SurveyPatch struct {
	City         *string `json:"city"`
	Neighborhood *string `json:"neighborhood"`
	Carious      *int    `json:"carious"`
	Extracted    *int    `json:"extracted"`
	Filled       *int    `json:"filled"`
	Children     *int    `json:"children"`
}

// Empty reports whether the patch changes nothing.
func (p SurveyPatch) Empty() bool {
	return p.City == nil && p.Neighborhood == nil &&
		p.Carious == nil && p.Extracted == nil && p.Filled == nil && p.Children == nil
}

// Validate rejects a patch that would blank out a location field.
func (p SurveyPatch) Validate() error {
	if p.City != nil && strings.TrimSpace(*p.City) == "" {
		return ErrEmptyCity
	}
	if p.Neighborhood != nil && strings.TrimSpace(*p.Neighborhood) == "" {
		return ErrEmptyNeighborhood
	}
	return nil
}

// Apply merges the patch into the record. Counts are normalized after merging.
// The returned flag tells whether any count was part of the patch.
func (p SurveyPatch) Apply(r *SurveyRecord) bool {
	if p.City != nil {
		r.City = strings.TrimSpace(*p.City)
	}
	if p.Neighborhood != nil {
		r.Neighborhood = strings.TrimSpace(*p.Neighborhood)
	}

	countsChanged := false
	if p.Carious != nil {
		r.Carious = *p.Carious
		countsChanged = true
	}
	if p.Extracted != nil {
		r.Extracted = *p.Extracted
		countsChanged = true
	}
	if p.Filled != nil {
		r.Filled = *p.Filled
		countsChanged = true
	}
	if p.Children != nil {
		r.Children = *p.Children
		countsChanged = true
	}
	r.Observation = r.Observation.Normalize()

	return countsChanged
}

// SurveyFilter narrows a survey listing.
type SurveyFilter struct {
	// City matches case-insensitively as a substring when set.
	City string `form:"city"`
}
