package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pennywise/internal/service"
)

// InsightHandler handles read-only insight endpoints.
type InsightHandler struct {
	insightService service.InsightService
	debug          bool
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(insightService service.InsightService, debug bool) *InsightHandler {
	return &InsightHandler{insightService: insightService, debug: debug}
}

// Statistics godoc
// @Summary Deterministic spending statistics
// @Tags insights
// @Produce json
// @Security TokenAuth
// @Success 200 {object} service.Statistics
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /insights/statistics [get]
func (h *InsightHandler) Statistics(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.insightService.Statistics(c.Request().Context(), userID)
	if err != nil {
		return respondError(err, h.debug)
	}

	return c.JSON(http.StatusOK, stats)
}

// AIAnalysis godoc
// @Summary AI narration of recent spending
// @Tags insights
// @Produce json
// @Security TokenAuth
// @Success 200 {object} service.AIAnalysis
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /insights/ai-analysis [get]
func (h *InsightHandler) AIAnalysis(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	analysis, err := h.insightService.AIAnalysis(c.Request().Context(), userID)
	if err != nil {
		return respondError(err, h.debug)
	}

	return c.JSON(http.StatusOK, analysis)
}
