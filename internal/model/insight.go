package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Insight stores a generated insight snapshot for a user. The current API
// computes insights on demand and does not read or write this table; it is
// migrated to keep the persisted layout complete.
type Insight struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID       `json:"user" gorm:"type:char(36);not null;index"`
	Type        string          `json:"type" gorm:"size:50;not null"`
	Data        json.RawMessage `json:"data" gorm:"type:json"`
	GeneratedAt time.Time       `json:"generatedAt" gorm:"autoCreateTime"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Insight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
