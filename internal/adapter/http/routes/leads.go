package routes

import (
	"contractor_pipeline/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads     = "/leads"
	PathCompanies = "/companies"
)

func addLeadRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler, companyHandler *handlers.CompanyHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PUT("/:id", leadHandler.UpdateLead)
		leads.POST("/:id/status", leadHandler.SetLeadStatus)
		leads.DELETE("/:id", leadHandler.DeleteLead)
	}

	companies := rg.Group(PathCompanies)
	{
		companies.POST("", companyHandler.CreateCompany)
		companies.GET("/:id", companyHandler.GetCompany)
		companies.PUT("/:id", companyHandler.UpdateCompany)
		companies.DELETE("/:id", companyHandler.DeleteCompany)
	}
}
