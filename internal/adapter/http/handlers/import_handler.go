package handlers

import (
	"net/http"

	request "settlement_console/internal/adapter/http/dto/request"
	response "settlement_console/internal/adapter/http/dto/response"
	"settlement_console/internal/infrastructure/sheets"
	"settlement_console/internal/usecase"
	"settlement_console/internal/usecase/ingest"

	"github.com/gin-gonic/gin"
)

// ImportHandler accepts batch imports as pasted text, a JSON grid or an
// uploaded sheet.
type ImportHandler struct {
	usecase usecase.IImportUseCase
}

func NewImportHandler(uc usecase.IImportUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc}
}

// Import godoc
// @Summary      Import a batch from pasted text or a JSON grid
// @Tags         imports
// @Accept       json
// @Produce      json
// @Param        kind     path      string                  true  "order, settlement, kpi or part"
// @Param        payload  body      request.ImportRequest   true  "Batch"
// @Success      200      {object}  response.ImportReportResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /imports/{kind} [post]
func (h *ImportHandler) Import(c *gin.Context) {
	var payload request.ImportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	if err := payload.Validate(); err != nil {
		invalidRequest(c, err)
		return
	}

	req := payload.ToUseCase(c.Param("kind"))
	var (
		report ingest.Report
		err    error
	)
	if payload.HasText() {
		report, err = h.usecase.ImportText(c.Request.Context(), req, payload.Text)
	} else {
		report, err = h.usecase.ImportGrid(c.Request.Context(), req, payload.Rows)
	}
	if err != nil {
		writeError(c, mapConsoleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImportReport(report))
}

// ImportFile godoc
// @Summary      Import a batch from an uploaded xlsx, csv or html sheet
// @Tags         imports
// @Accept       multipart/form-data
// @Produce      json
// @Param        kind      path      string  true   "order, settlement, kpi or part"
// @Param        month     formData  string  true   "YYYY-MM"
// @Param        category  formData  string  false  "Order type, settlement category or part type"
// @Param        metric    formData  string  false  "KPI metric mode"
// @Param        file      formData  file    true   "Sheet"
// @Success      200       {object}  response.ImportReportResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      422       {object}  pkg.HTTPError
// @Router       /imports/{kind}/file [post]
func (h *ImportHandler) ImportFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, sheets.MaxUploadBytes+1<<20)

	var form request.ImportFileForm
	if err := c.ShouldBind(&form); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, errMissingFile)
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, mapConsoleError(err))
		return
	}
	defer f.Close()

	report, err := h.usecase.ImportFile(c.Request.Context(), form.ToUseCase(c.Param("kind")), f)
	if err != nil {
		writeError(c, mapConsoleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromImportReport(report))
}
