package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense categories accepted by the API. Input is matched
// case-insensitively and stored lowercase.
const (
	CategoryShopping      = "shopping"
	CategoryHealth        = "health"
	CategoryTravel        = "travel"
	CategoryFood          = "food"
	CategoryEntertainment = "entertainment"
)

// Categories returns the fixed set of valid expense categories.
func Categories() []string {
	return []string{
		CategoryShopping,
		CategoryHealth,
		CategoryTravel,
		CategoryFood,
		CategoryEntertainment,
	}
}

// Expense represents a single spending record owned by a user. The owner
// reference is immutable; every read and write is scoped to it.
type Expense struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID       `json:"user" gorm:"type:char(36);not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Category    string          `json:"category" gorm:"size:20;not null;index"`
	Description string          `json:"description" gorm:"size:100;not null"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
