package controller

import (
	"strconv"

	"legaldocai-be/internal/constant"
	"legaldocai-be/internal/dto"
	"legaldocai-be/internal/mapper"
	"legaldocai-be/internal/pkg/serverutils"
	"legaldocai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHistoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type historyController struct {
	sessionService service.ISessionService
	sessionMapper  *mapper.SessionMapper
}

func NewHistoryController(sessionService service.ISessionService) IHistoryController {
	return &historyController{
		sessionService: sessionService,
		sessionMapper:  mapper.NewSessionMapper(),
	}
}

func (c *historyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/history/v1")
	h.Get("", c.List)
	h.Post(":index/select", c.Select)
	h.Delete(":index", c.Delete)
}

func (c *historyController) List(ctx *fiber.Ctx) error {
	history := c.sessionService.History()
	activeIndex := c.sessionService.ActiveIndex()

	items := make([]*dto.HistoryItemResponse, len(history))
	for i, session := range history {
		items[i] = c.sessionMapper.ToHistoryItem(session, i, i == activeIndex)
	}

	message := "Success get history"
	if len(items) == 0 {
		message = constant.MsgNoHistory
	}
	return ctx.JSON(serverutils.SuccessResponse(message, items))
}

// Select restores a past session as the active one. An entry whose
// preview blob is gone yields a clear error and leaves the active
// session unchanged.
func (c *historyController) Select(ctx *fiber.Ctx) error {
	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return serverutils.NewValidationError("Invalid history index")
	}

	session, err := c.sessionService.Select(index)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success select session", fiber.Map{
		"session":   c.sessionMapper.ToSessionResponse(session),
		"results":   session.Results,
		"analytics": session.Analytics,
		"step":      c.sessionService.Step(),
	}))
}

func (c *historyController) Delete(ctx *fiber.Ctx) error {
	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return serverutils.NewValidationError("Invalid history index")
	}

	if err := c.sessionService.Remove(index); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete session", nil))
}
