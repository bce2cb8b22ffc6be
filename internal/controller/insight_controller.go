package controller

import (
	"strconv"

	"legaldocai-be/internal/dto"
	"legaldocai-be/internal/pkg/serverutils"
	"legaldocai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInsightController interface {
	RegisterRoutes(r fiber.Router)
	Summarize(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
	ClearSummary(ctx *fiber.Ctx) error
}

type insightController struct {
	insightService service.IInsightService
}

func NewInsightController(insightService service.IInsightService) IInsightController {
	return &insightController{
		insightService: insightService,
	}
}

func (c *insightController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insight/v1")
	h.Post("summarize", c.Summarize)
	h.Post("ask", c.Ask)
	h.Delete("summary/:pageIndex", c.ClearSummary)
}

func (c *insightController) Summarize(ctx *fiber.Ctx) error {
	var req dto.SummarizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Malformed summarize request")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.insightService.Summarize(ctx.Context(), req.PageIndex)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get AI summary", res))
}

func (c *insightController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Malformed ask request")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.insightService.Ask(ctx.Context(), req.PageIndex, req.Question)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get AI answer", res))
}

func (c *insightController) ClearSummary(ctx *fiber.Ctx) error {
	pageIndex, err := strconv.Atoi(ctx.Params("pageIndex"))
	if err != nil {
		return serverutils.NewValidationError("Invalid page index")
	}

	if err := c.insightService.ClearSummary(ctx.Context(), pageIndex); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success clear AI summary", nil))
}
