package service

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"legaldocai-be/internal/constant"
	"legaldocai-be/internal/entity"
	"legaldocai-be/internal/pkg/logger"
	"legaldocai-be/internal/pkg/serverutils"
	internalWS "legaldocai-be/internal/websocket"
	"legaldocai-be/pkg/analyzer"

	"github.com/google/uuid"
)

// progressResetDelay keeps the bar from lingering after completion.
const progressResetDelay = 600 * time.Millisecond

// IUploadService validates uploads and forwards them to the analyzer
// backend. It never touches the session store: the controller commits
// the returned data through the session service.
type IUploadService interface {
	Submit(ctx context.Context, fileHeader *multipart.FileHeader, clientID uuid.UUID) (*analyzer.UploadResult, *entity.UploadedFile, error)
	SubmitCapture(ctx context.Context, imageData []byte, clientID uuid.UUID) (*analyzer.UploadResult, *entity.UploadedFile, error)
}

type uploadService struct {
	backend analyzer.Backend
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewUploadService(backend analyzer.Backend, hub *internalWS.Hub, log logger.ILogger) IUploadService {
	return &uploadService{
		backend: backend,
		hub:     hub,
		logger:  log,
	}
}

func (s *uploadService) Submit(ctx context.Context, fileHeader *multipart.FileHeader, clientID uuid.UUID) (*analyzer.UploadResult, *entity.UploadedFile, error) {
	if fileHeader == nil {
		return nil, nil, serverutils.NewValidationError("Please select or capture a file first.")
	}
	if !extensionAllowed(fileHeader.Filename) {
		return nil, nil, serverutils.NewValidationError(constant.MsgInvalidFileType)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, serverutils.NewValidationError("Unable to read uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, nil, serverutils.NewValidationError("Unable to read uploaded file")
	}

	file := &entity.UploadedFile{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}
	return s.forward(ctx, file, clientID)
}

// SubmitCapture packages raw captured image bytes as a synthetic PNG
// and runs them through the same pipeline as a picked file.
func (s *uploadService) SubmitCapture(ctx context.Context, imageData []byte, clientID uuid.UUID) (*analyzer.UploadResult, *entity.UploadedFile, error) {
	if len(imageData) == 0 {
		return nil, nil, serverutils.NewValidationError("Captured image is empty")
	}
	file := &entity.UploadedFile{
		Name:        constant.CapturedImageName,
		ContentType: "image/png",
		Data:        imageData,
	}
	return s.forward(ctx, file, clientID)
}

func (s *uploadService) forward(ctx context.Context, file *entity.UploadedFile, clientID uuid.UUID) (*analyzer.UploadResult, *entity.UploadedFile, error) {
	result, err := s.backend.Upload(ctx, file, func(percent int) {
		s.pushProgress(clientID, percent)
	})

	// Reset the bar a moment after completion, success or failure.
	defer time.AfterFunc(progressResetDelay, func() {
		s.pushProgress(clientID, 0)
	})

	if err != nil {
		s.logger.Error("UploadService", "Upload forwarding failed", map[string]interface{}{
			"file":  file.Name,
			"error": err.Error(),
		})
		return nil, nil, serverutils.NewBackendError(constant.MsgUploadFailed)
	}

	s.logger.Info("UploadService", "Upload analyzed", map[string]interface{}{
		"file":  file.Name,
		"pages": len(result.Results),
	})
	return result, file, nil
}

func (s *uploadService) pushProgress(clientID uuid.UUID, percent int) {
	if s.hub == nil || clientID == uuid.Nil {
		return
	}
	s.hub.SendToClient(clientID, "upload_progress", map[string]interface{}{"percent": percent})
}

func extensionAllowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range constant.AllowedUploadExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
