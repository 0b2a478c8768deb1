package handlers

import (
	"net/http"

	request "contractor_pipeline/internal/adapter/http/dto/request"
	response "contractor_pipeline/internal/adapter/http/dto/response"
	"contractor_pipeline/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	usecase usecase.ICompanyUseCase
}

func NewCompanyHandler(uc usecase.ICompanyUseCase) *CompanyHandler {
	return &CompanyHandler{usecase: uc}
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var payload request.CompanyRequest
	if !bindJSON(c, &payload) {
		return
	}
	company, err := h.usecase.CreateCompany(c.Request.Context(), tenantOf(c), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCompany(company))
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.usecase.GetCompany(c.Request.Context(), tenantOf(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompany(company))
}

func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var payload request.CompanyRequest
	if !bindJSON(c, &payload) {
		return
	}
	company, err := h.usecase.UpdateCompany(c.Request.Context(), tenantOf(c), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCompany(company))
}

func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	if err := h.usecase.DeleteCompany(c.Request.Context(), tenantOf(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
