package controller

import (
	"legaldocai-be/internal/constant"
	"legaldocai-be/internal/dto"
	"legaldocai-be/internal/pkg/serverutils"
	"legaldocai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IShellController interface {
	RegisterRoutes(r fiber.Router)
	Step(ctx *fiber.Ctx) error
	NextStep(ctx *fiber.Ctx) error
	PrevStep(ctx *fiber.Ctx) error
	GoToStep(ctx *fiber.Ctx) error
}

type shellController struct {
	sessionService service.ISessionService
}

func NewShellController(sessionService service.ISessionService) IShellController {
	return &shellController{
		sessionService: sessionService,
	}
}

func (c *shellController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/shell/v1")
	h.Get("step", c.Step)
	h.Post("step/next", c.NextStep)
	h.Post("step/prev", c.PrevStep)
	h.Post("step/goto", c.GoToStep)
}

func (c *shellController) Step(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get step", stepResponse(c.sessionService.Step())))
}

func (c *shellController) NextStep(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success advance step", stepResponse(c.sessionService.NextStep())))
}

func (c *shellController) PrevStep(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success rewind step", stepResponse(c.sessionService.PrevStep())))
}

func (c *shellController) GoToStep(ctx *fiber.Ctx) error {
	var req dto.GoToStepRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Malformed step request")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	step, err := c.sessionService.GoToStep(req.Key)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success go to step", stepResponse(step)))
}

func stepResponse(step int) *dto.StepResponse {
	keys := map[int]string{
		constant.StepUpload:    "upload",
		constant.StepData:      "data",
		constant.StepAnalytics: "analytics",
		constant.StepHistory:   "history",
	}
	return &dto.StepResponse{Step: step, Key: keys[step]}
}
