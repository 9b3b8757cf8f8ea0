package routes

import (
	"settlement_console/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders      = "/orders"
	PathSettlements = "/settlements"
	PathKPIs        = "/kpis"
	PathParts       = "/parts"
	PathTechnicians = "/technicians"
	PathImports     = "/imports"
	PathDashboard   = "/dashboard"
	PathReports     = "/reports"
)

func addConsoleRoutes(rg *gin.RouterGroup, entry *handlers.EntryHandler, imports *handlers.ImportHandler, reports *handlers.ReportHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", entry.ListOrders)
		orders.POST("", entry.CreateOrder)
	}

	settlements := rg.Group(PathSettlements)
	{
		settlements.GET("", entry.ListSettlements)
		settlements.POST("", entry.SubmitSettlement)
		settlements.PATCH("/:id/approve", entry.ApproveSettlement)
		settlements.PATCH("/:id/reject", entry.RejectSettlement)
	}

	kpis := rg.Group(PathKPIs)
	{
		kpis.GET("", entry.ListKPIs)
		kpis.POST("", entry.RecordKPI)
		kpis.PUT("", entry.UpsertKPI)
	}

	parts := rg.Group(PathParts)
	{
		parts.GET("", entry.ListPartSales)
		parts.POST("", entry.RecordPartSale)
	}

	technicians := rg.Group(PathTechnicians)
	{
		technicians.GET("", entry.ListTechnicians)
		technicians.GET("/:id/orders", reports.TechnicianOrders)
	}

	batch := rg.Group(PathImports)
	{
		batch.POST("/:kind", imports.Import)
		batch.POST("/:kind/file", imports.ImportFile)
	}

	rg.GET(PathDashboard, reports.Dashboard)
	rg.GET(PathReports, reports.Reports)
}
