package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pennywise/internal/cache"
	"pennywise/internal/model"
	"pennywise/internal/repository"
	"pennywise/internal/validation"
)

// ExpenseService exposes owner-scoped CRUD over expense records.
type ExpenseService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.Expense, error)
	Create(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, category, description string) (*model.Expense, error)
	Update(ctx context.Context, userID, expenseID uuid.UUID, amount decimal.Decimal, category, description string) error
	Delete(ctx context.Context, userID, expenseID uuid.UUID) error
}

type expenseService struct {
	expenses repository.ExpenseRepository
	cache    *cache.Client
}

// NewExpenseService builds an ExpenseService with repository and cache.
func NewExpenseService(expenses repository.ExpenseRepository, cache *cache.Client) ExpenseService {
	return &expenseService{expenses: expenses, cache: cache}
}

func (s *expenseService) List(ctx context.Context, userID uuid.UUID) ([]model.Expense, error) {
	return s.expenses.ListByUser(ctx, userID)
}

// Create validates the payload and persists a new expense owned by userID.
// The category is lowercased before storage.
func (s *expenseService) Create(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, category, description string) (*model.Expense, error) {
	if err := validation.Expense(amount, category, description); err != nil {
		return nil, err
	}

	expense := &model.Expense{
		UserID:      userID,
		Amount:      amount,
		Category:    validation.NormalizeCategory(category),
		Description: description,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	_ = s.cache.Delete(ctx, statisticsCacheKey(userID, time.Now()))
	return expense, nil
}

// Update rewrites the expense matching both id and owner. A missing or
// foreign id is a silent no-op.
func (s *expenseService) Update(ctx context.Context, userID, expenseID uuid.UUID, amount decimal.Decimal, category, description string) error {
	if err := validation.Expense(amount, category, description); err != nil {
		return err
	}

	if err := s.expenses.UpdateOwned(ctx, expenseID, userID, amount, validation.NormalizeCategory(category), description); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}

	_ = s.cache.Delete(ctx, statisticsCacheKey(userID, time.Now()))
	return nil
}

// Delete removes the expense matching both id and owner; non-existence is not
// distinguished from success.
func (s *expenseService) Delete(ctx context.Context, userID, expenseID uuid.UUID) error {
	if err := s.expenses.DeleteOwned(ctx, expenseID, userID); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	_ = s.cache.Delete(ctx, statisticsCacheKey(userID, time.Now()))
	return nil
}
