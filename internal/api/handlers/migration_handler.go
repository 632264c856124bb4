package handlers

import (
	"FreshTrack-Backend/domain"
	"FreshTrack-Backend/internal/api/presenters"
	"FreshTrack-Backend/pkg/migration"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MigrationHandler interface {
		ImportLocalItems(c *fiber.Ctx) error
	}

	migrationHandler struct {
		migrationService migration.MigrationService
		validator        *validator.Validate
	}
)

func NewMigrationHandler(migrationService migration.MigrationService, validator *validator.Validate) MigrationHandler {
	return &migrationHandler{
		migrationService: migrationService,
		validator:        validator,
	}
}

func (h *migrationHandler) ImportLocalItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ImportLocalItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportLocalItems, err)
	}

	res, err := h.migrationService.ImportLocalItems(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportLocalItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessImportLocalItems)
}
