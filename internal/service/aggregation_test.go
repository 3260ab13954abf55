package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pennywise/internal/model"
)

func expense(amount int64, category string, createdAt time.Time) model.Expense {
	return model.Expense{
		ID:        uuid.New(),
		Amount:    decimal.NewFromInt(amount),
		Category:  category,
		CreatedAt: createdAt,
	}
}

func TestComputeStatistics(t *testing.T) {
	jan := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 5, 12, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.February, 20, 12, 0, 0, 0, time.UTC)

	expenses := []model.Expense{
		expense(100, "food", jan),
		expense(50, "food", feb),
		expense(200, "travel", jan),
	}

	stats := ComputeStatistics(expenses, now)

	assert.Equal(t, "50", stats.MonthlyTotalSpending.String())
	assert.Equal(t, "150", stats.CategorySpending["food"].String())
	assert.Equal(t, "200", stats.CategorySpending["travel"].String())
	assert.Equal(t, "300", stats.MonthlySpending["January"].String())
	assert.Equal(t, "50", stats.MonthlySpending["February"].String())

	require.NotNil(t, stats.HighestExpense)
	assert.Equal(t, "travel", stats.HighestExpense.Category)
	assert.Equal(t, "200", stats.HighestExpense.Amount.String())

	require.NotNil(t, stats.LowestExpense)
	assert.Equal(t, "50", stats.LowestExpense.Amount.String())
}

// Same calendar month in different years collides under the month-name key.
func TestComputeStatisticsMonthCollision(t *testing.T) {
	jan2023 := time.Date(2023, time.January, 3, 0, 0, 0, 0, time.UTC)
	jan2024 := time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC)

	stats := ComputeStatistics([]model.Expense{
		expense(10, "food", jan2023),
		expense(20, "food", jan2024),
	}, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "30", stats.MonthlySpending["January"].String())
	assert.True(t, stats.MonthlyTotalSpending.IsZero())
}

func TestComputeStatisticsTieBreaking(t *testing.T) {
	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	first := expense(100, "food", day)
	second := expense(100, "travel", day)

	stats := ComputeStatistics([]model.Expense{first, second}, day)

	// First encountered wins highest, last encountered wins lowest.
	assert.Equal(t, first.ID, stats.HighestExpense.ID)
	assert.Equal(t, second.ID, stats.LowestExpense.ID)
}

func TestComputeStatisticsEmpty(t *testing.T) {
	stats := ComputeStatistics(nil, time.Now())

	assert.True(t, stats.MonthlyTotalSpending.IsZero())
	assert.Empty(t, stats.CategorySpending)
	assert.Empty(t, stats.MonthlySpending)
	assert.Nil(t, stats.HighestExpense)
	assert.Nil(t, stats.LowestExpense)
}

func TestComputeAnalysis(t *testing.T) {
	jan := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 5, 12, 0, 0, 0, time.UTC)

	// Newest first, as the repository returns them.
	expenses := []model.Expense{
		expense(50, "food", feb),
		expense(200, "travel", jan),
		expense(100, "food", jan),
	}

	analysis := ComputeAnalysis(expenses)

	assert.Equal(t, "350", analysis.Total.String())
	assert.Equal(t, "42.9", analysis.CategoryPercentages["food"])
	assert.Equal(t, "57.1", analysis.CategoryPercentages["travel"])
	assert.Equal(t, "300", analysis.MonthlyTotals["January 2024"].String())
	assert.Equal(t, "50", analysis.MonthlyTotals["February 2024"].String())
	assert.Equal(t, jan, analysis.Timespan.Start)
	assert.Equal(t, feb, analysis.Timespan.End)
}

// Percentages rendered to one decimal must sum to 100 within 0.1 per category.
func TestComputeAnalysisPercentagesSum(t *testing.T) {
	day := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		expense(100, "food", day),
		expense(100, "travel", day),
		expense(100, "health", day),
	}

	analysis := ComputeAnalysis(expenses)

	sum := decimal.Zero
	for _, pct := range analysis.CategoryPercentages {
		parsed, err := decimal.NewFromString(pct)
		require.NoError(t, err)
		sum = sum.Add(parsed)
	}

	tolerance := decimal.NewFromFloat(0.1).Mul(decimal.NewFromInt(int64(len(analysis.CategoryPercentages))))
	diff := sum.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThanOrEqual(tolerance), "percentages sum to %s", sum)
}

func TestComputeAnalysisEmpty(t *testing.T) {
	analysis := ComputeAnalysis(nil)

	assert.True(t, analysis.Total.IsZero())
	assert.Empty(t, analysis.CategoryPercentages)
	assert.Empty(t, analysis.MonthlyTotals)
	assert.True(t, analysis.Timespan.Start.IsZero())
}
