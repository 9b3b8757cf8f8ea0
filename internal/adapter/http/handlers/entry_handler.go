package handlers

import (
	"context"
	"net/http"

	request "settlement_console/internal/adapter/http/dto/request"
	response "settlement_console/internal/adapter/http/dto/response"
	"settlement_console/internal/domain/entities"
	"settlement_console/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EntryHandler serves the single-record forms and the list views.
type EntryHandler struct {
	usecase usecase.IEntryUseCase
}

func NewEntryHandler(uc usecase.IEntryUseCase) *EntryHandler {
	return &EntryHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.CreateOrderRequest  true  "Order"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *EntryHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, mapConsoleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders godoc
// @Summary      List orders, newest first
// @Tags         orders
// @Produce      json
// @Param        type  query     string  false  "Installation or Repair"
// @Success      200   {array}   response.OrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *EntryHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context(), c.Query("type"))
	if err != nil {
		writeError(c, mapConsoleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// SubmitSettlement godoc
// @Summary      Submit a settlement claim
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        settlement  body      request.SubmitSettlementRequest  true  "Settlement"
// @Success      201         {object}  response.SettlementResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /settlements [post]
func (h *EntryHandler) SubmitSettlement(c *gin.Context) {
	var payload request.SubmitSettlementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	s, err := h.usecase.SubmitSettlement(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, mapConsoleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSettlement(s))
}

// ListSettlements godoc
// @Summary      Pending settlements and review history
// @Tags         settlements
// @Produce      json
// @Success      200  {object}  response.SettlementListResponse
// @Router       /settlements [get]
func (h *EntryHandler) ListSettlements(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSettlementListing(h.usecase.ListSettlements(c.Request.Context())))
}

// ApproveSettlement godoc
// @Summary      Approve a pending settlement
// @Tags         settlements
// @Produce      json
// @Param        id   path      string  true  "Settlement ID"
// @Success      200  {object}  response.SettlementResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /settlements/{id}/approve [patch]
func (h *EntryHandler) ApproveSettlement(c *gin.Context) {
	h.reviewSettlement(c, h.usecase.ApproveSettlement)
}

// RejectSettlement godoc
// @Summary      Reject a pending settlement
// @Tags         settlements
// @Produce      json
// @Param        id   path      string  true  "Settlement ID"
// @Success      200  {object}  response.SettlementResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /settlements/{id}/reject [patch]
func (h *EntryHandler) RejectSettlement(c *gin.Context) {
	h.reviewSettlement(c, h.usecase.RejectSettlement)
}

func (h *EntryHandler) reviewSettlement(
	c *gin.Context,
	review func(ctx context.Context, id string) (entities.Settlement, error),
) {
	s, err := review(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapConsoleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettlement(s))
}

// RecordKPI godoc
// @Summary      Record all four monthly scores of a technician
// @Tags         kpis
// @Accept       json
// @Produce      json
// @Param        kpi  body      request.KPIRequest  true  "KPI"
// @Success      201  {object}  response.KPIResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /kpis [post]
func (h *EntryHandler) RecordKPI(c *gin.Context) {
	var payload request.KPIRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	rec, err := h.usecase.RecordKPI(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, mapConsoleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromKPI(rec))
}

// UpsertKPI godoc
// @Summary      Merge some scores into a technician's monthly record
// @Tags         kpis
// @Accept       json
// @Produce      json
// @Param        kpi  body      request.KPIRequest  true  "Partial KPI"
// @Success      200  {object}  response.KPIResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /kpis [put]
func (h *EntryHandler) UpsertKPI(c *gin.Context) {
	var payload request.KPIRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	rec, err := h.usecase.UpsertKPI(c.Request.Context(), payload.ToPatch())
	if err != nil {
		writeError(c, mapConsoleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromKPI(rec))
}

// ListKPIs godoc
// @Summary      List KPI records
// @Tags         kpis
// @Produce      json
// @Success      200  {array}  response.KPIResponse
// @Router       /kpis [get]
func (h *EntryHandler) ListKPIs(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromKPIs(h.usecase.ListKPIs(c.Request.Context())))
}

// RecordPartSale godoc
// @Summary      Record a parts sale
// @Tags         parts
// @Accept       json
// @Produce      json
// @Param        sale  body      request.RecordPartSaleRequest  true  "Part sale"
// @Success      201   {object}  response.PartSaleResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /parts [post]
func (h *EntryHandler) RecordPartSale(c *gin.Context) {
	var payload request.RecordPartSaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	p, err := h.usecase.RecordPartSale(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, mapConsoleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPartSale(p))
}

// ListPartSales godoc
// @Summary      List parts sales
// @Tags         parts
// @Produce      json
// @Success      200  {array}  response.PartSaleResponse
// @Router       /parts [get]
func (h *EntryHandler) ListPartSales(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPartSales(h.usecase.ListPartSales(c.Request.Context())))
}

// ListTechnicians godoc
// @Summary      List the technician registry
// @Tags         technicians
// @Produce      json
// @Success      200  {array}  response.TechnicianResponse
// @Router       /technicians [get]
func (h *EntryHandler) ListTechnicians(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTechnicians(h.usecase.ListTechnicians(c.Request.Context())))
}
