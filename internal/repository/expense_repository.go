package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pennywise/internal/model"
)

// ExpenseRepository defines expense persistence operations. Every read and
// write is scoped to the owning user; an id belonging to another user behaves
// like a missing record.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Expense, error)
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Expense, error)
	UpdateOwned(ctx context.Context, id, userID uuid.UUID, amount decimal.Decimal, category, description string) error
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository builds a GORM-backed repository.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// ListRecentByUser returns at most limit expenses ordered newest first by
// creation time.
func (r *expenseRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// UpdateOwned updates the record matching both id and owner. Zero matched
// rows is not an error: a missing or foreign id is a silent no-op.
func (r *expenseRepository) UpdateOwned(ctx context.Context, id, userID uuid.UUID, amount decimal.Decimal, category, description string) error {
	return r.db.WithContext(ctx).
		Model(&model.Expense{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"amount":      amount,
			"category":    category,
			"description": description,
		}).Error
}

// DeleteOwned deletes the record matching both id and owner. Non-existence is
// not distinguished from success.
func (r *expenseRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Expense{}).Error
}
