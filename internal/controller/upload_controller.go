package controller

import (
	"encoding/base64"

	"legaldocai-be/internal/dto"
	"legaldocai-be/internal/mapper"
	"legaldocai-be/internal/pkg/serverutils"
	"legaldocai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Capture(ctx *fiber.Ctx) error
}

type uploadController struct {
	uploadService  service.IUploadService
	sessionService service.ISessionService
	sessionMapper  *mapper.SessionMapper
}

func NewUploadController(uploadService service.IUploadService, sessionService service.ISessionService) IUploadController {
	return &uploadController{
		uploadService:  uploadService,
		sessionService: sessionService,
		sessionMapper:  mapper.NewSessionMapper(),
	}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Post("upload", c.Upload)
	h.Post("capture", c.Capture)
}

// Upload validates, forwards to the analyzer, then commits the result
// as a new session. The upload service never mutates the session store
// itself; the commit happens here.
func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewValidationError("Please select or capture a file first.")
	}

	clientID := parseClientID(ctx.FormValue("client_id"))

	result, file, err := c.uploadService.Submit(ctx.Context(), fileHeader, clientID)
	if err != nil {
		return err
	}

	session := c.sessionService.Commit(result.Results, result.Analytics, file)
	return ctx.JSON(serverutils.SuccessResponse("Upload successful!", dto.UploadResponse{
		Session:   c.sessionMapper.ToSessionResponse(session),
		Results:   result.Results,
		Analytics: result.Analytics,
		Step:      c.sessionService.Step(),
	}))
}

func (c *uploadController) Capture(ctx *fiber.Ctx) error {
	var req dto.CaptureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("Malformed capture request")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	imageData, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return serverutils.NewValidationError("Captured image is not valid base64")
	}

	result, file, err := c.uploadService.SubmitCapture(ctx.Context(), imageData, parseClientID(req.ClientId))
	if err != nil {
		return err
	}

	session := c.sessionService.Commit(result.Results, result.Analytics, file)
	return ctx.JSON(serverutils.SuccessResponse("Upload successful!", dto.UploadResponse{
		Session:   c.sessionMapper.ToSessionResponse(session),
		Results:   result.Results,
		Analytics: result.Analytics,
		Step:      c.sessionService.Step(),
	}))
}

// parseClientID tolerates a missing client id: progress reporting is
// best-effort and anonymous uploads still work.
func parseClientID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
