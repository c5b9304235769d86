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

type SavingsGoalHandler struct {
	goals  *repository.SavingsGoalRepository
	ledger *service.LedgerService
	logger *zap.Logger
}

func NewSavingsGoalHandler(goals *repository.SavingsGoalRepository, ledger *service.LedgerService, logger *zap.Logger) *SavingsGoalHandler {
	return &SavingsGoalHandler{
		goals:  goals,
		ledger: ledger,
		logger: logger,
	}
}

// List godoc
// @Summary List savings goals
// @Tags savings-goals
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.SavingsGoalResponse
// @Router /savings-goals [get]
func (h *SavingsGoalHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	goals, err := h.goals.ListByUser(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list savings goals")
	}

	resp := make([]dto.SavingsGoalResponse, 0, len(goals))
	for _, g := range goals {
		resp = append(resp, goalToResponse(&g))
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary Create a savings goal
// @Tags savings-goals
// @Accept json
// @Produce json
// @Param request body dto.SavingsGoalRequest true "Savings goal"
// @Security Bearer
// @Success 201 {object} dto.SavingsGoalResponse
// @Failure 400 {object} map[string]string
// @Router /savings-goals [post]
func (h *SavingsGoalHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SavingsGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}
	if !req.TargetAmount.IsPositive() {
		return badRequest(c, "Target amount must be positive")
	}

	targetDate, err := parseDatePtr(req.TargetDate)
	if err != nil {
		return badRequest(c, "Invalid target date, expected YYYY-MM-DD")
	}

	now := time.Now()
	goal := &models.SavingsGoal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		TargetDate:   targetDate,
		Color:        colorOrDefault(req.Color, "#FFB84C"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.goals.Create(c.Context(), goal); err != nil {
		return respondError(c, h.logger, err, "Failed to create savings goal")
	}

	return c.Status(fiber.StatusCreated).JSON(goalToResponse(goal))
}

// Get godoc
// @Summary Retrieve a savings goal
// @Tags savings-goals
// @Produce json
// @Param id path string true "Goal ID"
// @Security Bearer
// @Success 200 {object} dto.SavingsGoalResponse
// @Failure 404 {object} map[string]string
// @Router /savings-goals/{id} [get]
func (h *SavingsGoalHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid goal ID")
	}

	goal, err := h.goals.GetByID(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get savings goal")
	}

	return c.JSON(goalToResponse(goal))
}

// Update godoc
// @Summary Update a savings goal
// @Description Updates name, target amount, target date and color. Progress changes go through add-funds.
// @Tags savings-goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.SavingsGoalRequest true "Savings goal"
// @Security Bearer
// @Success 200 {object} dto.SavingsGoalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /savings-goals/{id} [put]
func (h *SavingsGoalHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid goal ID")
	}

	var req dto.SavingsGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}
	if !req.TargetAmount.IsPositive() {
		return badRequest(c, "Target amount must be positive")
	}

	targetDate, err := parseDatePtr(req.TargetDate)
	if err != nil {
		return badRequest(c, "Invalid target date, expected YYYY-MM-DD")
	}

	goal, err := h.goals.GetByID(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get savings goal")
	}

	goal.Name = req.Name
	goal.TargetAmount = req.TargetAmount
	goal.TargetDate = targetDate
	goal.Color = colorOrDefault(req.Color, goal.Color)
	goal.UpdatedAt = time.Now()

	if err := h.goals.Update(c.Context(), goal); err != nil {
		return respondError(c, h.logger, err, "Failed to update savings goal")
	}

	return c.JSON(goalToResponse(goal))
}

// Delete godoc
// @Summary Delete a savings goal
// @Tags savings-goals
// @Param id path string true "Goal ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /savings-goals/{id} [delete]
func (h *SavingsGoalHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid goal ID")
	}

	if err := h.goals.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete savings goal")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AddFunds godoc
// @Summary Contribute funds to a goal
// @Description Advances the goal's progress and records a matching expense transaction in one atomic step.
// @Tags savings-goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.AddFundsRequest true "Contribution"
// @Security Bearer
// @Success 200 {object} dto.SavingsGoalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /savings-goals/{id}/add-funds [post]
func (h *SavingsGoalHandler) AddFunds(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid goal ID")
	}

	var req dto.AddFundsRequest
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

	goal, err := h.ledger.ContributeToGoal(c.Context(), userID, id, req.Amount, date, accountID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to add funds")
	}

	return c.JSON(goalToResponse(goal))
}

func goalToResponse(g *models.SavingsGoal) dto.SavingsGoalResponse {
	return dto.SavingsGoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    formatDatePtr(g.TargetDate),
		Color:         g.Color,
		IsCompleted:   g.IsCompleted,
		CreatedAt:     g.CreatedAt.Format(time.RFC3339),
	}
}
