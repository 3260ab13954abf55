package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pennywise/internal/ai"
	"pennywise/internal/cache"
	apperrors "pennywise/internal/errors"
	"pennywise/internal/repository"
)

const (
	statisticsCacheTTL = 5 * time.Minute
	// analysisLimit caps the AI analysis at the most recent records.
	analysisLimit = 100
)

// AIAnalysis pairs the generated prose with the aggregation it narrates.
type AIAnalysis struct {
	Insights    string   `json:"insights"`
	ExpenseData Analysis `json:"expenseData"`
}

// InsightService computes aggregations over a user's expenses and narrates
// them through the text-generation capability.
type InsightService interface {
	Statistics(ctx context.Context, userID uuid.UUID) (*Statistics, error)
	AIAnalysis(ctx context.Context, userID uuid.UUID) (*AIAnalysis, error)
}

type insightService struct {
	expenses  repository.ExpenseRepository
	generator ai.TextGenerator
	cache     *cache.Client
	logger    *zap.Logger
}

// NewInsightService builds an InsightService.
func NewInsightService(expenses repository.ExpenseRepository, generator ai.TextGenerator, cache *cache.Client, logger *zap.Logger) InsightService {
	return &insightService{
		expenses:  expenses,
		generator: generator,
		cache:     cache,
		logger:    logger,
	}
}

// statisticsCacheKey scopes the entry to the calendar month because the
// cached value embeds a current-month total; the key rotates at the month
// boundary so a stale total is never served into the new month.
func statisticsCacheKey(userID uuid.UUID, month time.Time) string {
	return "insights:statistics:" + userID.String() + ":" + month.Format("2006-01")
}

// Statistics reduces the user's full expense set. Results are cached briefly;
// expense mutations invalidate the entry.
func (s *insightService) Statistics(ctx context.Context, userID uuid.UUID) (*Statistics, error) {
	now := time.Now()
	key := statisticsCacheKey(userID, now)

	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached Statistics
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	expenses, err := s.expenses.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	if len(expenses) == 0 {
		return nil, apperrors.ErrNoExpenses
	}

	stats := ComputeStatistics(expenses, now)

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, key, payload, statisticsCacheTTL)
	}
	return &stats, nil
}

// AIAnalysis aggregates the 100 most recent expenses and asks the generator
// to narrate them. A generation failure does not discard the aggregation; it
// is simply not returned for this request.
func (s *insightService) AIAnalysis(ctx context.Context, userID uuid.UUID) (*AIAnalysis, error) {
	expenses, err := s.expenses.ListRecentByUser(ctx, userID, analysisLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent expenses: %w", err)
	}
	if len(expenses) == 0 {
		return nil, apperrors.ErrNoExpenses
	}

	analysis := ComputeAnalysis(expenses)

	text, err := s.generator.Generate(ctx, buildAnalysisPrompt(analysis))
	if err != nil {
		s.logger.Error("ai generation failed",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return nil, apperrors.ErrAIGeneration
	}

	return &AIAnalysis{
		Insights:    text,
		ExpenseData: analysis,
	}, nil
}

// buildAnalysisPrompt renders the fixed financial-advisor prompt. Map keys
// are sorted so the prompt is deterministic for a given aggregation.
func buildAnalysisPrompt(a Analysis) string {
	categories := make([]string, 0, len(a.CategoryPercentages))
	for category := range a.CategoryPercentages {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	months := make([]string, 0, len(a.MonthlyTotals))
	for month := range a.MonthlyTotals {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool {
		ti, _ := time.Parse("January 2006", months[i])
		tj, _ := time.Parse("January 2006", months[j])
		return ti.Before(tj)
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "As a financial advisor, analyze this expense data and provide detailed insights:\n\n")
	fmt.Fprintf(&sb, "Total Spending: ₹%s\n", a.Total.String())
	fmt.Fprintf(&sb, "Time Period: %s to %s\n\n",
		a.Timespan.Start.Format("1/2/2006"),
		a.Timespan.End.Format("1/2/2006"),
	)

	sb.WriteString("Category Breakdown (% of total):\n")
	for _, category := range categories {
		fmt.Fprintf(&sb, "- %s: %s%%\n", category, a.CategoryPercentages[category])
	}

	sb.WriteString("\nMonthly Spending:\n")
	for _, month := range months {
		fmt.Fprintf(&sb, "- %s: ₹%s\n", month, a.MonthlyTotals[month].String())
	}

	sb.WriteString(`
Please provide:
1. Key Observations:
   - Identify the main spending categories
   - Note any unusual patterns or spikes
   - Compare monthly variations

2. Budget Optimization:
   - Suggest specific areas to reduce spending
   - Recommend realistic saving targets
   - Propose category-wise budget allocations

3. Risk Analysis:
   - Highlight potential overspending categories
   - Identify unsustainable patterns
   - Note any concerning trends

4. Positive Habits:
   - Recognize good financial decisions
   - Point out well-managed categories
   - Suggest habits to maintain

5. Action Items:
   - List 3-4 specific, actionable steps
   - Prioritize immediate changes
   - Suggest long-term strategies

Please format the response in clear sections with bullet points where appropriate.`)

	return sb.String()
}
