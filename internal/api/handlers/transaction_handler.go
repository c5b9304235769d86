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

type TransactionHandler struct {
	transactions *repository.TransactionRepository
	accounts     *repository.AccountRepository
	categories   *repository.CategoryRepository
	ledger       *service.LedgerService
	logger       *zap.Logger
}

func NewTransactionHandler(
	transactions *repository.TransactionRepository,
	accounts *repository.AccountRepository,
	categories *repository.CategoryRepository,
	ledger *service.LedgerService,
	logger *zap.Logger,
) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		accounts:     accounts,
		categories:   categories,
		ledger:       ledger,
		logger:       logger,
	}
}

// List godoc
// @Summary List transactions
// @Description Non-deleted transactions, newest first. month and year together restrict to one calendar month.
// @Tags transactions
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Security Bearer
// @Success 200 {array} dto.TransactionResponse
// @Router /transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)
	if month < 0 || month > 12 {
		return badRequest(c, "Month must be between 1 and 12")
	}

	transactions, err := h.transactions.ListByUser(c.Context(), userID, month, year)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list transactions")
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, transactionToResponse(&t))
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	txn, err := h.transactionFromRequest(c, userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create transaction")
	}
	txn.ID = uuid.New()
	now := time.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	if err := h.transactions.Create(c.Context(), txn); err != nil {
		return respondError(c, h.logger, err, "Failed to create transaction")
	}

	created, err := h.transactions.GetByID(c.Context(), userID, txn.ID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create transaction")
	}
	return c.Status(fiber.StatusCreated).JSON(transactionToResponse(created))
}

// Get godoc
// @Summary Retrieve a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid transaction ID")
	}

	txn, err := h.transactions.GetByID(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get transaction")
	}

	return c.JSON(transactionToResponse(txn))
}

// Update godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.TransactionRequest true "Transaction"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid transaction ID")
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	txn, err := h.transactionFromRequest(c, userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update transaction")
	}
	txn.ID = id
	txn.UpdatedAt = time.Now()

	if err := h.transactions.Update(c.Context(), txn); err != nil {
		return respondError(c, h.logger, err, "Failed to update transaction")
	}

	updated, err := h.transactions.GetByID(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update transaction")
	}
	return c.JSON(transactionToResponse(updated))
}

// Delete godoc
// @Summary Soft-delete a transaction
// @Description Marks the transaction deleted; the row is kept but excluded from every query and aggregate.
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid transaction ID")
	}

	if err := h.transactions.SoftDelete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete transaction")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary Monthly financial summary
// @Description Period totals exclude transfers; account balances are lifetime; upcoming fixed expenses refer to the current month.
// @Tags transactions
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Security Bearer
// @Success 200 {object} dto.SummaryResponse
// @Router /transactions/summary [get]
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)
	if month < 0 || month > 12 {
		return badRequest(c, "Month must be between 1 and 12")
	}

	summary, err := h.ledger.Summary(c.Context(), userID, month, year)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to build summary")
	}

	return c.JSON(summary)
}

// Transfer godoc
// @Summary Transfer between two accounts
// @Description Writes a paired expense/income flagged as transfer; excluded from income/expense totals.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/transfer [post]
func (h *TransactionHandler) Transfer(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	fromID, err := uuid.Parse(req.FromAccount)
	if err != nil {
		return badRequest(c, "Invalid from_account ID")
	}
	toID, err := uuid.Parse(req.ToAccount)
	if err != nil {
		return badRequest(c, "Invalid to_account ID")
	}

	var date time.Time
	if req.Date != "" {
		date, err = parseDate(req.Date)
		if err != nil {
			return badRequest(c, "Invalid date, expected YYYY-MM-DD")
		}
	}

	if err := h.ledger.Transfer(c.Context(), userID, fromID, toID, req.Amount, date, req.Description); err != nil {
		return respondError(c, h.logger, err, "Failed to transfer")
	}

	return c.JSON(fiber.Map{
		"message": "Transfer completed",
	})
}

// transactionFromRequest validates a create/update payload and resolves
// its references against the caller's own records.
func (h *TransactionHandler) transactionFromRequest(c *fiber.Ctx, userID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	if !models.TransactionType(req.Type).Valid() {
		return nil, &service.ValidationError{Message: "Type must be IN or OUT"}
	}
	if !models.PaymentMethod(req.PaymentMethod).Valid() {
		return nil, &service.ValidationError{Message: "Payment method must be CASH, CARD or TRANSFER"}
	}
	if !req.Amount.IsPositive() {
		return nil, &service.ValidationError{Message: "Amount must be positive"}
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, &service.ValidationError{Message: "Invalid date, expected YYYY-MM-DD"}
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

	return &models.Transaction{
		UserID:        userID,
		AccountID:     accountID,
		CategoryID:    categoryID,
		Type:          models.TransactionType(req.Type),
		Amount:        req.Amount,
		Date:          date,
		Subcategory:   req.Subcategory,
		Description:   req.Description,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
	}, nil
}

func transactionToResponse(t *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            t.ID.String(),
		AccountID:     uuidPtrString(t.AccountID),
		CategoryID:    uuidPtrString(t.CategoryID),
		CategoryName:  t.CategoryName,
		CategoryColor: t.CategoryColor,
		Type:          string(t.Type),
		Amount:        t.Amount,
		Date:          formatDate(t.Date),
		Subcategory:   t.Subcategory,
		Description:   t.Description,
		PaymentMethod: string(t.PaymentMethod),
		IsTransfer:    t.IsTransfer,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
}
