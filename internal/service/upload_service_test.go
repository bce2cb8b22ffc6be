package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"legaldocai-be/internal/constant"
	"legaldocai-be/internal/entity"
	"legaldocai-be/internal/pkg/serverutils"
	"legaldocai-be/pkg/analyzer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// fakeBackend serves a scripted result without any network.
type fakeBackend struct {
	result *analyzer.UploadResult
	err    error
	calls  int

	lastFile *entity.UploadedFile
}

func (b *fakeBackend) Upload(_ context.Context, file *entity.UploadedFile, onProgress func(int)) (*analyzer.UploadResult, error) {
	b.calls++
	b.lastFile = file
	if onProgress != nil {
		onProgress(50)
		onProgress(100)
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.result, nil
}

func makeFileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	assert.NoError(t, err)
	return form.File["file"][0]
}

func okResult() *analyzer.UploadResult {
	return &analyzer.UploadResult{
		Results:   entity.NormalizePages(twoPageResults()),
		Analytics: sampleAnalytics(),
	}
}

func TestSubmitForwardsAcceptedFile(t *testing.T) {
	backend := &fakeBackend{result: okResult()}
	uploads := NewUploadService(backend, nil, nopLogger{})

	header := makeFileHeader(t, "contract.pdf", []byte("%PDF-1.4"))
	result, file, err := uploads.Submit(context.Background(), header, uuid.Nil)

	assert.NoError(t, err)
	assert.Len(t, result.Results, 2)
	assert.Equal(t, "contract.pdf", file.Name)
	assert.Equal(t, []byte("%PDF-1.4"), file.Data)
	assert.Equal(t, "contract.pdf", backend.lastFile.Name)
}

func TestSubmitExtensionAllowList(t *testing.T) {
	tests := []struct {
		filename string
		allowed  bool
	}{
		{"contract.pdf", true},
		{"contract.PDF", true},
		{"report.docx", true},
		{"sheet.xls", true},
		{"sheet.xlsx", true},
		{"scan.png", true},
		{"scan.jpg", true},
		{"scan.jpeg", true},
		{"notes.txt", false},
		{"archive.zip", false},
		{"script.exe", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			backend := &fakeBackend{result: okResult()}
			uploads := NewUploadService(backend, nil, nopLogger{})

			header := makeFileHeader(t, tt.filename, []byte("data"))
			_, _, err := uploads.Submit(context.Background(), header, uuid.Nil)

			if tt.allowed {
				assert.NoError(t, err)
				assert.Equal(t, 1, backend.calls)
				return
			}
			assert.Error(t, err)
			apiErr, ok := err.(*serverutils.ApiError)
			assert.True(t, ok)
			assert.Equal(t, constant.MsgInvalidFileType, apiErr.Message)
			assert.Equal(t, 0, backend.calls, "rejected files never reach the network")
		})
	}
}

func TestSubmitBackendFailureUsesFixedMessage(t *testing.T) {
	backend := &fakeBackend{err: errors.New("dial tcp 127.0.0.1:8000: connection refused")}
	uploads := NewUploadService(backend, nil, nopLogger{})

	header := makeFileHeader(t, "contract.pdf", []byte("%PDF"))
	_, _, err := uploads.Submit(context.Background(), header, uuid.Nil)

	assert.Error(t, err)
	apiErr, ok := err.(*serverutils.ApiError)
	assert.True(t, ok)
	assert.Equal(t, constant.MsgUploadFailed, apiErr.Message, "transport details never leak to the client")
}

func TestSubmitNilHeaderRejected(t *testing.T) {
	uploads := NewUploadService(&fakeBackend{result: okResult()}, nil, nopLogger{})

	_, _, err := uploads.Submit(context.Background(), nil, uuid.Nil)
	assert.Error(t, err)
}

func TestSubmitCaptureSyntheticName(t *testing.T) {
	backend := &fakeBackend{result: okResult()}
	uploads := NewUploadService(backend, nil, nopLogger{})

	_, file, err := uploads.SubmitCapture(context.Background(), []byte{0x89, 'P', 'N', 'G'}, uuid.Nil)

	assert.NoError(t, err)
	assert.Equal(t, constant.CapturedImageName, file.Name)
	assert.Equal(t, "image/png", file.ContentType)
}

func TestSubmitCaptureEmptyRejected(t *testing.T) {
	backend := &fakeBackend{result: okResult()}
	uploads := NewUploadService(backend, nil, nopLogger{})

	_, _, err := uploads.SubmitCapture(context.Background(), nil, uuid.Nil)
	assert.Error(t, err)
	assert.Equal(t, 0, backend.calls)
}
