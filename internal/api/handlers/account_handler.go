package handlers

import (
	"time"

	"kopilka/internal/dto"
	"kopilka/internal/models"
	"kopilka/internal/money"
	"kopilka/internal/repository"
	"kopilka/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountHandler struct {
	accounts *repository.AccountRepository
	ledger   *service.LedgerService
	logger   *zap.Logger
}

func NewAccountHandler(accounts *repository.AccountRepository, ledger *service.LedgerService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		ledger:   ledger,
		logger:   logger,
	}
}

// List godoc
// @Summary List accounts with computed balances
// @Tags accounts
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.AccountResponse
// @Router /accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	accounts, err := h.accounts.ListByUser(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list accounts")
	}

	balances, err := h.ledger.AccountBalances(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to compute balances")
	}

	resp := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, accountToResponse(&a, balances[a.ID]))
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.AccountRequest true "Account"
// @Security Bearer
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string
// @Router /accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}
	if !models.AccountType(req.Type).Valid() {
		return badRequest(c, "Type must be CASH, DEBIT or CREDIT")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	account := &models.Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Type:      models.AccountType(req.Type),
		Balance:   req.Balance,
		Color:     colorOrDefault(req.Color, "#97A97C"),
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.accounts.Create(c.Context(), account); err != nil {
		return respondError(c, h.logger, err, "Failed to create account")
	}

	// A fresh account has no history, so the computed balance equals
	// the stored baseline.
	return c.Status(fiber.StatusCreated).JSON(accountToResponse(account, account.Balance))
}

// Get godoc
// @Summary Retrieve an account with its computed balance
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Security Bearer
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string
// @Router /accounts/{id} [get]
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}

	account, err := h.accounts.GetByID(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get account")
	}

	balance, err := h.ledger.AccountBalance(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to compute balance")
	}

	return c.JSON(accountToResponse(account, balance))
}

// Update godoc
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body dto.AccountRequest true "Account"
// @Security Bearer
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accounts/{id} [put]
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}

	var req dto.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}
	if !models.AccountType(req.Type).Valid() {
		return badRequest(c, "Type must be CASH, DEBIT or CREDIT")
	}

	account, err := h.accounts.GetByID(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get account")
	}

	account.Name = req.Name
	account.Type = models.AccountType(req.Type)
	account.Balance = req.Balance
	account.Color = colorOrDefault(req.Color, account.Color)
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.UpdatedAt = time.Now()

	if err := h.accounts.Update(c.Context(), account); err != nil {
		return respondError(c, h.logger, err, "Failed to update account")
	}

	balance, err := h.ledger.AccountBalance(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to compute balance")
	}

	return c.JSON(accountToResponse(account, balance))
}

// Delete godoc
// @Summary Delete an account
// @Tags accounts
// @Param id path string true "Account ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /accounts/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid account ID")
	}

	if err := h.accounts.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete account")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func accountToResponse(a *models.Account, computed money.Money) dto.AccountResponse {
	return dto.AccountResponse{
		ID:              a.ID.String(),
		Name:            a.Name,
		Type:            string(a.Type),
		Balance:         a.Balance,
		ComputedBalance: computed,
		Color:           a.Color,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
	}
}
