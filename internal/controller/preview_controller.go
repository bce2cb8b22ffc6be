package controller

import (
	"legaldocai-be/internal/dto"
	"legaldocai-be/internal/pkg/serverutils"
	"legaldocai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPreviewController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	Navigate(ctx *fiber.Ctx) error
	GoTo(ctx *fiber.Ctx) error
	File(ctx *fiber.Ctx) error
}

type previewController struct {
	previewService service.IPreviewService
}

func NewPreviewController(previewService service.IPreviewService) IPreviewController {
	return &previewController{
		previewService: previewService,
	}
}

func (c *previewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/preview/v1")
	h.Get("state", c.State)
	h.Post("navigate", c.Navigate)
	h.Post("goto", c.GoTo)
	h.Get("file/:token", c.File)
}

func (c *previewController) State(ctx *fiber.Ctx) error {
	res, err := c.previewService.Current()
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get preview state", res))
}

func (c *previewController) Navigate(ctx *fiber.Ctx) error {
	var req dto.NavigateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Malformed navigate request")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.previewService.Navigate(req.Delta)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success navigate preview", res))
}

func (c *previewController) GoTo(ctx *fiber.Ctx) error {
	var req dto.GoToPageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Malformed goto request")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.previewService.GoTo(req.Page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success go to page", res))
}

// File streams the stored blob for a preview token. The browser's own
// viewer renders it, so the original content type is preserved.
func (c *previewController) File(ctx *fiber.Ctx) error {
	file, err := c.previewService.Blob(ctx.Params("token"))
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+file.Name+`"`)
	return ctx.Send(file.Data)
}
