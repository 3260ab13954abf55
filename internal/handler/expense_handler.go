package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/model"
	"pennywise/internal/service"
)

// ExpenseHandler handles owner-scoped expense CRUD endpoints.
type ExpenseHandler struct {
	expenseService service.ExpenseService
	debug          bool
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(expenseService service.ExpenseService, debug bool) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, debug: debug}
}

// ExpenseRequest represents a create or update payload.
type ExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description" validate:"required"`
}

// ListResponse wraps the caller's expenses.
type ListResponse struct {
	Expenses []model.Expense `json:"expenses"`
	Message  string          `json:"message"`
}

// List godoc
// @Summary List the caller's expenses
// @Tags expenses
// @Produce json
// @Security TokenAuth
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expenses [get]
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	expenses, err := h.expenseService.List(c.Request().Context(), userID)
	if err != nil {
		return respondError(err, h.debug)
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}

	return c.JSON(http.StatusOK, ListResponse{
		Expenses: expenses,
		Message:  "expenses recorded",
	})
}

// Create godoc
// @Summary Record a new expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body ExpenseRequest true "Expense payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Amount, category, and description are required",
			Code:  "MISSING_FIELDS",
		})
	}

	if _, err := h.expenseService.Create(c.Request().Context(), userID, req.Amount, req.Category, req.Description); err != nil {
		return respondError(err, h.debug)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "expense added",
	})
}

// Update godoc
// @Summary Rewrite an expense owned by the caller
// @Tags expenses
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Expense ID"
// @Param request body ExpenseRequest true "Expense payload"
// @Success 203 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid expense id",
			Code:  "INVALID_ID",
		})
	}

	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Amount, category, and description are required",
			Code:  "MISSING_FIELDS",
		})
	}

	if err := h.expenseService.Update(c.Request().Context(), userID, expenseID, req.Amount, req.Category, req.Description); err != nil {
		return respondError(err, h.debug)
	}

	// 203 mirrors the public contract; a non-matching id still reports success.
	return c.JSON(http.StatusNonAuthoritativeInfo, map[string]string{
		"message": "expense changed",
	})
}

// Delete godoc
// @Summary Delete an expense owned by the caller
// @Tags expenses
// @Produce json
// @Security TokenAuth
// @Param id path string true "Expense ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid expense id",
			Code:  "INVALID_ID",
		})
	}

	if err := h.expenseService.Delete(c.Request().Context(), userID, expenseID); err != nil {
		return respondError(err, h.debug)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "expense deleted",
	})
}
