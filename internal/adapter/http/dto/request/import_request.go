package request

import (
	"errors"
	"strings"

	"settlement_console/internal/usecase"
)

var ErrMissingPayload = errors.New("either text or rows is required")

// ImportRequest is the JSON body of a batch import. Exactly one of Text
// (pasted sheet content) or Rows (an already decoded grid) is used; Text
// wins when both are set.
type ImportRequest struct {
	Month    string  `json:"month" binding:"required" example:"2023-10"`
	Category string  `json:"category" example:"Installation"`
	Metric   string  `json:"metric" example:"ALL"`
	Text     string  `json:"text" example:"订单号,客户,地址\nJD001,张三,北京"`
	Rows     [][]any `json:"rows" swaggertype:"array,string"`
}

func (r ImportRequest) ToUseCase(kind string) usecase.ImportRequest {
	return usecase.ImportRequest{Kind: kind, Month: r.Month, Category: r.Category, Metric: r.Metric}
}

func (r ImportRequest) HasText() bool {
	return strings.TrimSpace(r.Text) != ""
}

func (r ImportRequest) Validate() error {
	if !r.HasText() && len(r.Rows) == 0 {
		return ErrMissingPayload
	}
	return nil
}

// ImportFileForm is the multipart form accompanying an uploaded sheet.
type ImportFileForm struct {
	Month    string `form:"month" binding:"required"`
	Category string `form:"category"`
	Metric   string `form:"metric"`
}

func (f ImportFileForm) ToUseCase(kind string) usecase.ImportRequest {
	return usecase.ImportRequest{Kind: kind, Month: f.Month, Category: f.Category, Metric: f.Metric}
}
