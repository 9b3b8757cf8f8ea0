package handlers

import (
	"net/http"

	response "settlement_console/internal/adapter/http/dto/response"
	"settlement_console/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// Dashboard godoc
// @Summary      Landing-page overview
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Router       /dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDashboard(h.usecase.Dashboard(c.Request.Context())))
}

// Reports godoc
// @Summary      Aggregates behind the report charts
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.ReportsResponse
// @Router       /reports [get]
func (h *ReportHandler) Reports(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromReports(h.usecase.Reports(c.Request.Context())))
}

// TechnicianOrders godoc
// @Summary      Orders assigned to one technician
// @Tags         technicians
// @Produce      json
// @Param        id   path      string  true  "Technician ID"
// @Success      200  {array}   response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /technicians/{id}/orders [get]
func (h *ReportHandler) TechnicianOrders(c *gin.Context) {
	orders, err := h.usecase.TechnicianOrders(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapConsoleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}
