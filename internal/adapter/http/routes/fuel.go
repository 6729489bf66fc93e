package routes

import (
	"controle_abastecimento/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathResponsibles = "/responsibles"
	PathVehicles     = "/vehicles"
	PathFuelRecords  = "/fuel-records"
	PathDashboard    = "/dashboard"
	PathReports      = "/reports"
)

func addRegistryRoutes(rg *gin.RouterGroup, responsibleHandler *handlers.ResponsibleHandler, vehicleHandler *handlers.VehicleHandler) {
	responsibles := rg.Group(PathResponsibles)
	{
		responsibles.POST("", responsibleHandler.CreateResponsible)
		responsibles.GET("", responsibleHandler.ListResponsibles)
		responsibles.DELETE("/:id", responsibleHandler.DeleteResponsible)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/models", vehicleHandler.ListModels)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}
}

func addFuelRecordRoutes(rg *gin.RouterGroup, h *handlers.FuelRecordHandler) {
	records := rg.Group(PathFuelRecords)
	{
		records.POST("", h.CreateFuelRecord)
		records.GET("", h.ListFuelRecords)
		// Form helpers, registered before /:id.
		records.GET("/odometer-suggestions", h.OdometerSuggestions)
		records.GET("/average-preview", h.AveragePreview)
		records.GET("/:id", h.GetFuelRecord)
		records.PUT("/:id", h.UpdateFuelRecord)
		records.DELETE("/:id", h.DeleteFuelRecord)
	}
}

func addAnalysisRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, reportHandler *handlers.ReportHandler) {
	rg.GET(PathDashboard, dashboardHandler.GetDashboard)

	reports := rg.Group(PathReports)
	{
		reports.GET("/:kind", reportHandler.GetReport)
		reports.GET("/:kind/export", reportHandler.ExportReport)
	}
}
