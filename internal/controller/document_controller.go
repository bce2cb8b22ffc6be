package controller

import (
	"legaldocai-be/internal/dto"
	"legaldocai-be/internal/pkg/serverutils"
	"legaldocai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Pages(ctx *fiber.Ctx) error
	SelectPage(ctx *fiber.Ctx) error
	ToggleSection(ctx *fiber.Ctx) error
	CollapseAll(ctx *fiber.Ctx) error
	ExportJSON(ctx *fiber.Ctx) error
	ExportText(ctx *fiber.Ctx) error
	CopyText(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Get("pages", c.Pages)
	h.Put("page", c.SelectPage)
	h.Put("sections/toggle", c.ToggleSection)
	h.Put("sections/collapse", c.CollapseAll)
	h.Get("export/json", c.ExportJSON)
	h.Get("export/text", c.ExportText)
	h.Get("copy", c.CopyText)
}

// Pages returns the filtered view of the active session for the given
// search query. The underlying snapshot is never mutated.
func (c *documentController) Pages(ctx *fiber.Ctx) error {
	res, err := c.documentService.Pages(ctx.Query("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get pages", res))
}

func (c *documentController) SelectPage(ctx *fiber.Ctx) error {
	var req dto.SelectPageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Malformed page selection")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.documentService.SelectPage(req.Index)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success select page", res))
}

func (c *documentController) ToggleSection(ctx *fiber.Ctx) error {
	var req dto.ToggleSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Malformed toggle request")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	flags, err := c.documentService.ToggleSection(req.Section)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success toggle section", flags))
}

func (c *documentController) CollapseAll(ctx *fiber.Ctx) error {
	var req dto.CollapseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Malformed collapse request")
	}

	flags, err := c.documentService.SetCollapsedAll(req.Collapsed)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set collapse", flags))
}

// ExportJSON streams the selected page's record as a download; parsing
// the body reproduces the page exactly.
func (c *documentController) ExportJSON(ctx *fiber.Ctx) error {
	payload, err := c.documentService.ExportJSON()
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, payload.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+payload.Filename+`"`)
	return ctx.SendString(payload.Body)
}

func (c *documentController) ExportText(ctx *fiber.Ctx) error {
	payload, err := c.documentService.ExportText()
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, payload.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+payload.Filename+`"`)
	return ctx.SendString(payload.Body)
}

// CopyText hands the selected page's raw text to the client; placing it
// on the clipboard and the transient "copied" confirmation are
// presentation concerns.
func (c *documentController) CopyText(ctx *fiber.Ctx) error {
	text, err := c.documentService.PageText()
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get page text", fiber.Map{"text": text}))
}
