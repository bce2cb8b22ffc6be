package dto

// PreviewState is the paging state of the active preview. Boundary
// flags tell the client which navigation control to disable.
type PreviewState struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	AtStart    bool   `json:"at_start"`
	AtEnd      bool   `json:"at_end"`
	PreviewURL string `json:"preview_url"`
	Name       string `json:"name"`
}

type NavigateRequest struct {
	Delta int `json:"delta" validate:"required,oneof=-1 1"`
}

type GoToPageRequest struct {
	Page int `json:"page" validate:"min=1"`
}
