package handlers

import (
	"time"

	"kopilka/internal/dto"
	"kopilka/internal/models"
	"kopilka/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categories *repository.CategoryRepository
	logger     *zap.Logger
}

func NewCategoryHandler(categories *repository.CategoryRepository, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		logger:     logger,
	}
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	categories, err := h.categories.ListByUser(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list categories")
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, categoryToResponse(&cat))
	}
	return c.JSON(resp)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest true "Category"
// @Security Bearer
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Router /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}
	if !models.CategoryType(req.Type).Valid() {
		return badRequest(c, "Type must be IN or OUT")
	}

	now := time.Now()
	cat := &models.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Type:      models.CategoryType(req.Type),
		Color:     colorOrDefault(req.Color, "#000000"),
		Icon:      req.Icon,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.categories.Create(c.Context(), cat); err != nil {
		return respondError(c, h.logger, err, "Failed to create category")
	}

	return c.Status(fiber.StatusCreated).JSON(categoryToResponse(cat))
}

// Get godoc
// @Summary Retrieve a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Security Bearer
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}

	cat, err := h.categories.GetByID(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get category")
	}

	return c.JSON(categoryToResponse(cat))
}

// Update godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.CategoryRequest true "Category"
// @Security Bearer
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "Name is required")
	}
	if !models.CategoryType(req.Type).Valid() {
		return badRequest(c, "Type must be IN or OUT")
	}

	cat, err := h.categories.GetByID(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get category")
	}

	cat.Name = req.Name
	cat.Type = models.CategoryType(req.Type)
	cat.Color = colorOrDefault(req.Color, cat.Color)
	cat.Icon = req.Icon
	cat.UpdatedAt = time.Now()

	if err := h.categories.Update(c.Context(), cat); err != nil {
		return respondError(c, h.logger, err, "Failed to update category")
	}

	return c.JSON(categoryToResponse(cat))
}

// Delete godoc
// @Summary Delete a category
// @Description Deleting a category detaches it from referencing transactions and recurring expenses
// @Tags categories
// @Param id path string true "Category ID"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid category ID")
	}

	if err := h.categories.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete category")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func categoryToResponse(cat *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Type:      string(cat.Type),
		Color:     cat.Color,
		Icon:      cat.Icon,
		CreatedAt: cat.CreatedAt.Format(time.RFC3339),
	}
}

func colorOrDefault(color, fallback string) string {
	if color == "" {
		return fallback
	}
	return color
}
