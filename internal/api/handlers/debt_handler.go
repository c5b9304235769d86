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

type DebtHandler struct {
	debts  *repository.DebtRepository
	logger *zap.Logger
}

func NewDebtHandler(debts *repository.DebtRepository, logger *zap.Logger) *DebtHandler {
	return &DebtHandler{
		debts:  debts,
		logger: logger,
	}
}

// List godoc
// @Summary List debts
// @Tags debts
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.DebtResponse
// @Router /debts [get]
func (h *DebtHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	debts, err := h.debts.ListByUser(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list debts")
	}

	resp := make([]dto.DebtResponse, 0, len(debts))
	for _, d := range debts {
		resp = append(resp, debtToResponse(&d))
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary Create a debt
// @Tags debts
// @Accept json
// @Produce json
// @Param request body dto.DebtRequest true "Debt"
// @Security Bearer
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string
// @Router /debts [post]
func (h *DebtHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.DebtRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	debt, err := debtFromRequest(userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create debt")
	}
	debt.ID = uuid.New()
	now := time.Now()
	debt.CreatedAt = now
	debt.UpdatedAt = now

	if err := h.debts.Create(c.Context(), debt); err != nil {
		return respondError(c, h.logger, err, "Failed to create debt")
	}

	return c.Status(fiber.StatusCreated).JSON(debtToResponse(debt))
}

// Get godoc
// @Summary Retrieve a debt
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Security Bearer
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} map[string]string
// @Router /debts/{id} [get]
func (h *DebtHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid debt ID")
	}

	debt, err := h.debts.GetByID(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get debt")
	}

	return c.JSON(debtToResponse(debt))
}

// Update godoc
// @Summary Update a debt
// @Description Remaining amount and settled flag are edited directly; there is no dedicated repayment operation.
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt ID"
// @Param request body dto.DebtRequest true "Debt"
// @Security Bearer
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /debts/{id} [put]
func (h *DebtHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid debt ID")
	}

	var req dto.DebtRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	debt, err := debtFromRequest(userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update debt")
	}

	existing, err := h.debts.GetByID(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get debt")
	}

	debt.ID = existing.ID
	debt.CreatedAt = existing.CreatedAt
	debt.UpdatedAt = time.Now()
	if req.IsSettled == nil {
		debt.IsSettled = existing.IsSettled
	}

	if err := h.debts.Update(c.Context(), debt); err != nil {
		return respondError(c, h.logger, err, "Failed to update debt")
	}

	return c.JSON(debtToResponse(debt))
}

// Delete godoc
// @Summary Delete a debt
// @Tags debts
// @Param id path string true "Debt ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /debts/{id} [delete]
func (h *DebtHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid debt ID")
	}

	if err := h.debts.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete debt")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func debtFromRequest(userID uuid.UUID, req *dto.DebtRequest) (*models.Debt, error) {
	if req.Name == "" {
		return nil, &service.ValidationError{Message: "Name is required"}
	}
	if !models.DebtType(req.Type).Valid() {
		return nil, &service.ValidationError{Message: "Type must be OWED_TO_ME or I_OWE"}
	}
	if !req.TotalAmount.IsPositive() {
		return nil, &service.ValidationError{Message: "Total amount must be positive"}
	}
	if req.RemainingAmount < 0 {
		return nil, &service.ValidationError{Message: "Remaining amount cannot be negative"}
	}

	dueDate, err := parseDatePtr(req.DueDate)
	if err != nil {
		return nil, &service.ValidationError{Message: "Invalid due date, expected YYYY-MM-DD"}
	}

	debt := &models.Debt{
		UserID:          userID,
		Name:            req.Name,
		Description:     req.Description,
		Type:            models.DebtType(req.Type),
		TotalAmount:     req.TotalAmount,
		RemainingAmount: req.RemainingAmount,
		DueDate:         dueDate,
	}
	if req.IsSettled != nil {
		debt.IsSettled = *req.IsSettled
	}
	return debt, nil
}

func debtToResponse(d *models.Debt) dto.DebtResponse {
	return dto.DebtResponse{
		ID:              d.ID.String(),
		Name:            d.Name,
		Description:     d.Description,
		Type:            string(d.Type),
		TotalAmount:     d.TotalAmount,
		RemainingAmount: d.RemainingAmount,
		DueDate:         formatDatePtr(d.DueDate),
		IsSettled:       d.IsSettled,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
	}
}
