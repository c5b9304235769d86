package handlers

import (
	"time"

	"kopilka/internal/dto"
	"kopilka/internal/models"
	"kopilka/internal/repository"
	"kopilka/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RecurringExpenseHandler struct {
	expenses   *repository.RecurringExpenseRepository
	accounts   *repository.AccountRepository
	categories *repository.CategoryRepository
	ledger     *service.LedgerService
	logger     *zap.Logger
}

func NewRecurringExpenseHandler(
	expenses *repository.RecurringExpenseRepository,
	accounts *repository.AccountRepository,
	categories *repository.CategoryRepository,
	ledger *service.LedgerService,
	logger *zap.Logger,
) *RecurringExpenseHandler {
	return &RecurringExpenseHandler{
		expenses:   expenses,
		accounts:   accounts,
		categories: categories,
		ledger:     ledger,
		logger:     logger,
	}
}

// List godoc
// @Summary List recurring expenses
// @Tags recurring-expenses
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.RecurringExpenseResponse
// @Router /recurring-expenses [get]
func (h *RecurringExpenseHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	expenses, err := h.expenses.ListByUser(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list recurring expenses")
	}

	resp := make([]dto.RecurringExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, recurringToResponse(&e))
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary Create a recurring expense
// @Tags recurring-expenses
// @Accept json
// @Produce json
// @Param request body dto.RecurringExpenseRequest true "Recurring expense"
// @Security Bearer
// @Success 201 {object} dto.RecurringExpenseResponse
// @Failure 400 {object} map[string]string
// @Router /recurring-expenses [post]
func (h *RecurringExpenseHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.RecurringExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	expense, err := h.recurringFromRequest(c, userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create recurring expense")
	}
	expense.ID = uuid.New()
	now := time.Now()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if err := h.expenses.Create(c.Context(), expense); err != nil {
		return respondError(c, h.logger, err, "Failed to create recurring expense")
	}

	return c.Status(fiber.StatusCreated).JSON(recurringToResponse(expense))
}

// Get godoc
// @Summary Retrieve a recurring expense
// @Tags recurring-expenses
// @Produce json
// @Param id path string true "Recurring expense ID"
// @Security Bearer
// @Success 200 {object} dto.RecurringExpenseResponse
// @Failure 404 {object} map[string]string
// @Router /recurring-expenses/{id} [get]
func (h *RecurringExpenseHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid recurring expense ID")
	}

	expense, err := h.expenses.GetByID(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get recurring expense")
	}

	return c.JSON(recurringToResponse(expense))
}

// Update godoc
// @Summary Update a recurring expense
// @Tags recurring-expenses
// @Accept json
// @Produce json
// @Param id path string true "Recurring expense ID"
// @Param request body dto.RecurringExpenseRequest true "Recurring expense"
// @Security Bearer
// @Success 200 {object} dto.RecurringExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /recurring-expenses/{id} [put]
func (h *RecurringExpenseHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid recurring expense ID")
	}

	var req dto.RecurringExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	expense, err := h.recurringFromRequest(c, userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update recurring expense")
	}

	existing, err := h.expenses.GetByID(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get recurring expense")
	}

	expense.ID = existing.ID
	expense.LastPaidDate = existing.LastPaidDate
	expense.CreatedAt = existing.CreatedAt
	expense.UpdatedAt = time.Now()
	if req.IsActive == nil {
		expense.IsActive = existing.IsActive
	}

	if err := h.expenses.Update(c.Context(), expense); err != nil {
		return respondError(c, h.logger, err, "Failed to update recurring expense")
	}

	return c.JSON(recurringToResponse(expense))
}

// Delete godoc
// @Summary Delete a recurring expense
// @Tags recurring-expenses
// @Param id path string true "Recurring expense ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /recurring-expenses/{id} [delete]
func (h *RecurringExpenseHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid recurring expense ID")
	}

	if err := h.expenses.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete recurring expense")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Pay godoc
// @Summary Pay a recurring expense
// @Description Records the expense transaction and advances last_paid_date in one atomic step.
// @Tags recurring-expenses
// @Accept json
// @Produce json
// @Param id path string true "Recurring expense ID"
// @Param request body dto.PayRecurringRequest true "Payment"
// @Security Bearer
// @Success 200 {object} dto.RecurringExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /recurring-expenses/{id}/pay [post]
func (h *RecurringExpenseHandler) Pay(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid recurring expense ID")
	}

	var req dto.PayRecurringRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	var date time.Time
	if req.Date != "" {
		date, err = parseDate(req.Date)
		if err != nil {
			return badRequest(c, "Invalid date, expected YYYY-MM-DD")
		}
	}

	accountID, err := parseUUIDPtr(req.AccountID)
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}

	expense, err := h.ledger.PayRecurringExpense(c.Context(), userID, id, date, accountID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to pay recurring expense")
	}

	return c.JSON(recurringToResponse(expense))
}

func (h *RecurringExpenseHandler) recurringFromRequest(c *fiber.Ctx, userID uuid.UUID, req *dto.RecurringExpenseRequest) (*models.RecurringExpense, error) {
	if req.Name == "" {
		return nil, &service.ValidationError{Message: "Name is required"}
	}
	if !req.Amount.IsPositive() {
		return nil, &service.ValidationError{Message: "Amount must be positive"}
	}
	if req.DueDay < 1 || req.DueDay > 31 {
		return nil, &service.ValidationError{Message: "Due day must be between 1 and 31"}
	}

	accountID, err := parseUUIDPtr(req.AccountID)
	if err != nil {
		return nil, &service.ValidationError{Message: "Invalid account ID"}
	}
	if accountID != nil {
		if _, err := h.accounts.GetByID(c.Context(), userID, *accountID); err != nil {
			return nil, err
		}
	}

	categoryID, err := parseUUIDPtr(req.CategoryID)
	if err != nil {
		return nil, &service.ValidationError{Message: "Invalid category ID"}
	}
	if categoryID != nil {
		if _, err := h.categories.GetByID(c.Context(), userID, *categoryID); err != nil {
			return nil, err
		}
	}

	expense := &models.RecurringExpense{
		UserID:     userID,
		Name:       req.Name,
		Amount:     req.Amount,
		CategoryID: categoryID,
		AccountID:  accountID,
		DueDay:     req.DueDay,
		IsActive:   true,
	}
	if req.IsActive != nil {
		expense.IsActive = *req.IsActive
	}
	return expense, nil
}

func recurringToResponse(e *models.RecurringExpense) dto.RecurringExpenseResponse {
	return dto.RecurringExpenseResponse{
		ID:           e.ID.String(),
		Name:         e.Name,
		Amount:       e.Amount,
		CategoryID:   uuidPtrString(e.CategoryID),
		AccountID:    uuidPtrString(e.AccountID),
		DueDay:       e.DueDay,
		IsActive:     e.IsActive,
		LastPaidDate: formatDatePtr(e.LastPaidDate),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}
