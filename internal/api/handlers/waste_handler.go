package handlers

import (
	"FreshTrack-Backend/domain"
	"FreshTrack-Backend/internal/api/presenters"
	"FreshTrack-Backend/pkg/waste"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WasteHandler interface {
		LogDisposal(c *fiber.Ctx) error
		GetWasteLog(c *fiber.Ctx) error
		GetWasteSummary(c *fiber.Ctx) error
		CreateWasteGoal(c *fiber.Ctx) error
		GetWasteGoals(c *fiber.Ctx) error
		DeactivateGoal(c *fiber.Ctx) error
	}

	wasteHandler struct {
		wasteService waste.WasteService
		validator    *validator.Validate
	}
)

func NewWasteHandler(wasteService waste.WasteService, validator *validator.Validate) WasteHandler {
	return &wasteHandler{
		wasteService: wasteService,
		validator:    validator,
	}
}

func (h *wasteHandler) LogDisposal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogDisposalRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogDisposal, err)
	}

	res, err := h.wasteService.LogDisposal(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogDisposal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogDisposal)
}

func (h *wasteHandler) GetWasteLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	entries, count, err := h.wasteService.GetWasteLog(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWasteLog, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"entries": entries,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": count,
		},
	}, fiber.StatusOK, domain.MessageSuccessGetWasteLog)
}

func (h *wasteHandler) GetWasteSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	windowDays, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || windowDays < 1 {
		windowDays = waste.DefaultSummaryWindowDays
	}

	summary, err := h.wasteService.GetWasteSummary(c.Context(), userID, windowDays)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWasteSummary, err)
	}

	return presenters.SuccessResponse(c, summary, fiber.StatusOK, domain.MessageSuccessGetWasteSummary)
}

func (h *wasteHandler) CreateWasteGoal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateWasteGoalRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateWasteGoal, err)
	}

	res, err := h.wasteService.CreateWasteGoal(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateWasteGoal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateWasteGoal)
}

func (h *wasteHandler) GetWasteGoals(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	goals, err := h.wasteService.GetWasteGoals(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWasteGoals, err)
	}

	return presenters.SuccessResponse(c, goals, fiber.StatusOK, domain.MessageSuccessGetWasteGoals)
}

func (h *wasteHandler) DeactivateGoal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	goalID := c.Params("id")

	if err := h.wasteService.DeactivateGoal(c.Context(), goalID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeactivateGoal, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeactivateGoal)
}
