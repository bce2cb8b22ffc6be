// Package analyzer is the HTTP client for the external document
// analysis backend. It forwards one file as a multipart upload, reports
// transfer progress, validates the response shape at the boundary and
// normalizes missing containers before anything downstream sees them.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"legaldocai-be/internal/entity"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// UploadResult is the normalized (results, analytics) pair. Results is
// never nil and every page carries non-nil entity lists.
type UploadResult struct {
	Results   []entity.PageResult
	Analytics entity.Analytics
}

// Backend abstracts the analyzer so the upload service can be tested
// against a fake.
type Backend interface {
	Upload(ctx context.Context, file *entity.UploadedFile, onProgress func(percent int)) (*UploadResult, error)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	schema     *jsonschema.Schema
}

// Ensure Client implements Backend
var _ Backend = &Client{}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 300 * time.Second,
		},
		schema: jsonschema.MustCompileString("upload_response.json", uploadResponseSchema),
	}
}

type uploadResponse struct {
	Results   []entity.PageResult `json:"results"`
	Analytics *entity.Analytics   `json:"analytics"`
}

func (c *Client) Upload(ctx context.Context, file *entity.UploadedFile, onProgress func(percent int)) (*UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	body := &progressReader{
		r:          bytes.NewReader(buf.Bytes()),
		total:      int64(buf.Len()),
		onProgress: onProgress,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/upload", body)
	if err != nil {
		return nil, fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.ContentLength = int64(buf.Len())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyzer returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := c.validate(respBody); err != nil {
		return nil, fmt.Errorf("analyzer response rejected: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}

	result := &UploadResult{
		Results: entity.NormalizePages(parsed.Results),
	}
	if parsed.Analytics != nil {
		result.Analytics = *parsed.Analytics
	}
	return result, nil
}

// validate checks the response body against the wire schema so shape
// violations are caught here, not in scattered consumers.
func (c *Client) validate(body []byte) error {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("malformed json: %w", err)
	}
	if err := c.schema.Validate(v); err != nil {
		log.Printf("[WARN] analyzer: schema violation: %v", err)
		return err
	}
	return nil
}

// progressReader reports fractional progress as the request body drains.
// Reported percentages are monotonically non-decreasing.
type progressReader struct {
	r          io.Reader
	total      int64
	sent       int64
	last       int
	onProgress func(percent int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.total > 0 && p.onProgress != nil {
		p.sent += int64(n)
		percent := int(p.sent * 100 / p.total)
		if percent > 100 {
			percent = 100
		}
		if percent > p.last {
			p.last = percent
			p.onProgress(percent)
		}
	}
	return n, err
}
