package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/model"
)

// stubGenerator satisfies ai.TextGenerator without network access.
type stubGenerator struct {
	text   string
	err    error
	prompt string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	return g.text, g.err
}

func TestInsightService_Statistics(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("reduces the full expense set", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		repo.On("ListByUser", ctx, userID).Return([]model.Expense{
			expense(100, "food", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)),
			expense(200, "travel", time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC)),
		}, nil)

		svc := NewInsightService(repo, &stubGenerator{}, noCache, zap.NewNop())
		stats, err := svc.Statistics(ctx, userID)
		require.NoError(t, err)

		assert.Equal(t, "100", stats.CategorySpending["food"].String())
		assert.Equal(t, "200", stats.CategorySpending["travel"].String())
		assert.Equal(t, "300", stats.MonthlySpending["January"].String())
	})

	t.Run("empty set reports no expenses", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		repo.On("ListByUser", ctx, userID).Return([]model.Expense{}, nil)

		svc := NewInsightService(repo, &stubGenerator{}, noCache, zap.NewNop())
		_, err := svc.Statistics(ctx, userID)
		assert.ErrorIs(t, err, apperrors.ErrNoExpenses)
	})
}

// The cache key rotates with the calendar month so a cached current-month
// total written in January is never served in February.
func TestStatisticsCacheKeyScopedToMonth(t *testing.T) {
	userID := uuid.New()
	jan := time.Date(2024, time.January, 31, 23, 59, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 1, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, "insights:statistics:"+userID.String()+":2024-01", statisticsCacheKey(userID, jan))
	assert.NotEqual(t, statisticsCacheKey(userID, jan), statisticsCacheKey(userID, feb))
}

func TestInsightService_AIAnalysis(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	jan := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)
	recent := []model.Expense{
		expense(50, "food", feb),
		expense(200, "travel", jan),
		expense(100, "food", jan),
	}

	t.Run("narrates the aggregation", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		repo.On("ListRecentByUser", ctx, userID, analysisLimit).Return(recent, nil)

		gen := &stubGenerator{text: "Spend less on travel."}
		svc := NewInsightService(repo, gen, noCache, zap.NewNop())

		result, err := svc.AIAnalysis(ctx, userID)
		require.NoError(t, err)

		assert.Equal(t, "Spend less on travel.", result.Insights)
		assert.Equal(t, "350", result.ExpenseData.Total.String())

		// The prompt embeds the aggregation the response carries.
		assert.True(t, strings.Contains(gen.prompt, "Total Spending: ₹350"))
		assert.True(t, strings.Contains(gen.prompt, "- travel: 57.1%"))
		assert.True(t, strings.Contains(gen.prompt, "- January 2024: ₹300"))
		repo.AssertExpectations(t)
	})

	t.Run("empty set reports no expenses", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		repo.On("ListRecentByUser", ctx, userID, analysisLimit).Return([]model.Expense{}, nil)

		svc := NewInsightService(repo, &stubGenerator{}, noCache, zap.NewNop())
		_, err := svc.AIAnalysis(ctx, userID)
		assert.ErrorIs(t, err, apperrors.ErrNoExpenses)
	})

	t.Run("generator failure surfaces as upstream error", func(t *testing.T) {
		repo := new(MockExpenseRepository)
		repo.On("ListRecentByUser", ctx, userID, analysisLimit).Return(recent, nil)

		gen := &stubGenerator{err: errors.New("quota exceeded")}
		svc := NewInsightService(repo, gen, noCache, zap.NewNop())

		_, err := svc.AIAnalysis(ctx, userID)
		assert.ErrorIs(t, err, apperrors.ErrAIGeneration)
	})
}
