package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilmpay/ilmpay/internal/application/content/dto"
	"github.com/ilmpay/ilmpay/internal/application/content/services"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
	"github.com/ilmpay/ilmpay/internal/shared/utils"
)

// SupportLogoHandler serves the public supporter logo list and the admin CRUD.
type SupportLogoHandler struct {
	service *services.SupportLogoService
	logger  logger.Interface
}

func NewSupportLogoHandler(service *services.SupportLogoService, logger logger.Interface) *SupportLogoHandler {
	return &SupportLogoHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/support-logos
func (h *SupportLogoHandler) List(c *gin.Context) {
	logos, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list support logos", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Support logos retrieved successfully", logos)
}

// Get handles GET /api/admin/support-logos/:id
func (h *SupportLogoHandler) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	logo, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Support logo retrieved successfully", logo)
}

// Create handles POST /api/admin/support-logos
func (h *SupportLogoHandler) Create(c *gin.Context) {
	var req dto.CreateSupportLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	logo, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to create support logo", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, logo, "Support logo created successfully")
}

// Update handles PUT /api/admin/support-logos/:id
func (h *SupportLogoHandler) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSupportLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	logo, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Support logo updated successfully", logo)
}

// Delete handles DELETE /api/admin/support-logos/:id
func (h *SupportLogoHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Reorder handles PUT /api/admin/support-logos/reorder
func (h *SupportLogoHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Reorder(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Support logos reordered successfully", nil)
}
