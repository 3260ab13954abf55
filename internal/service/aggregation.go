package service

import (
	"time"

	"github.com/shopspring/decimal"

	"pennywise/internal/model"
)

// Statistics summarizes a user's full expense history.
type Statistics struct {
	MonthlyTotalSpending decimal.Decimal            `json:"monthlyTotalSpending"`
	CategorySpending     map[string]decimal.Decimal `json:"categorySpending"`
	MonthlySpending      map[string]decimal.Decimal `json:"monthlySpending"`
	HighestExpense       *model.Expense             `json:"highestExpense"`
	LowestExpense        *model.Expense             `json:"lowestExpense"`
}

// Timespan is the creation-time range covered by an analysis.
type Timespan struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Analysis is the aggregation fed to the narration prompt. Category
// percentages are pre-rendered to one decimal place.
type Analysis struct {
	Total               decimal.Decimal            `json:"total"`
	CategoryPercentages map[string]string          `json:"categoryPercentages"`
	MonthlyTotals       map[string]decimal.Decimal `json:"monthlyTotals"`
	Timespan            Timespan                   `json:"timespan"`
}

// ComputeStatistics reduces a user's expenses into totals and extremes.
//
// The current-month total counts records created in now's calendar month and
// year. Monthly totals are keyed by month name only, so the same month of
// different years collides. For equal amounts the first record encountered
// wins the highest slot and the last encountered wins the lowest slot,
// matching a stable descending sort by amount.
func ComputeStatistics(expenses []model.Expense, now time.Time) Statistics {
	stats := Statistics{
		CategorySpending: make(map[string]decimal.Decimal),
		MonthlySpending:  make(map[string]decimal.Decimal),
	}

	for i := range expenses {
		e := &expenses[i]

		if e.CreatedAt.Month() == now.Month() && e.CreatedAt.Year() == now.Year() {
			stats.MonthlyTotalSpending = stats.MonthlyTotalSpending.Add(e.Amount)
		}

		stats.CategorySpending[e.Category] = stats.CategorySpending[e.Category].Add(e.Amount)

		month := e.CreatedAt.Month().String()
		stats.MonthlySpending[month] = stats.MonthlySpending[month].Add(e.Amount)

		if stats.HighestExpense == nil || e.Amount.GreaterThan(stats.HighestExpense.Amount) {
			stats.HighestExpense = e
		}
		if stats.LowestExpense == nil || e.Amount.LessThanOrEqual(stats.LowestExpense.Amount) {
			stats.LowestExpense = e
		}
	}

	return stats
}

var oneHundred = decimal.NewFromInt(100)

// ComputeAnalysis aggregates an already-limited, newest-first expense slice
// for narration: total spend, per-category share of total rounded to one
// decimal, per-month totals keyed by month and year, and the creation-time
// span from oldest to newest record.
func ComputeAnalysis(expenses []model.Expense) Analysis {
	analysis := Analysis{
		CategoryPercentages: make(map[string]string),
		MonthlyTotals:       make(map[string]decimal.Decimal),
	}
	if len(expenses) == 0 {
		return analysis
	}

	categoryTotals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		analysis.Total = analysis.Total.Add(e.Amount)
		categoryTotals[e.Category] = categoryTotals[e.Category].Add(e.Amount)

		month := e.CreatedAt.Format("January 2006")
		analysis.MonthlyTotals[month] = analysis.MonthlyTotals[month].Add(e.Amount)
	}

	for category, amount := range categoryTotals {
		analysis.CategoryPercentages[category] = amount.Mul(oneHundred).Div(analysis.Total).StringFixed(1)
	}

	// Input is newest first, so the span runs from the last record to the first.
	analysis.Timespan = Timespan{
		Start: expenses[len(expenses)-1].CreatedAt,
		End:   expenses[0].CreatedAt,
	}

	return analysis
}
