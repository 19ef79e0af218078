package routes

import (
	"github.com/gin-gonic/gin"

	"gamyam/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	leadHandler *handlers.LeadHandler,
	dealHandler *handlers.DealHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// LEADS
	leads := r.Group("/leads")
	{
		leads.POST("/", leadHandler.Create)
		leads.GET("/", leadHandler.List)
		leads.GET("/:id", leadHandler.GetByID)
		leads.PUT("/:id", leadHandler.Update)
		leads.DELETE("/:id", leadHandler.Delete)
	}

	// DEALS
	deals := r.Group("/deals")
	{
		deals.POST("/", dealHandler.Create)
		deals.GET("/", dealHandler.List)
		deals.GET("/:id", dealHandler.GetByID)
		deals.PUT("/:id", dealHandler.Update)
		deals.DELETE("/:id", dealHandler.Delete)
		deals.POST("/:id/stage", dealHandler.UpdateStage)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/summary", reportHandler.GetSummary)
		reports.GET("/summary/pdf", reportHandler.DownloadSummaryPDF)
		reports.POST("/summary/email", reportHandler.EmailSummary)
		reports.GET("/deals/filter", reportHandler.FilterDeals)
	}

	return r
}
