package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilmpay/ilmpay/internal/application/content/dto"
	"github.com/ilmpay/ilmpay/internal/application/content/services"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
	"github.com/ilmpay/ilmpay/internal/shared/utils"
)

// BenefitHandler serves the public benefit list and the admin CRUD.
type BenefitHandler struct {
	service *services.BenefitService
	logger  logger.Interface
}

func NewBenefitHandler(service *services.BenefitService, logger logger.Interface) *BenefitHandler {
	return &BenefitHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/benefits
func (h *BenefitHandler) List(c *gin.Context) {
	benefits, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list benefits", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Benefits retrieved successfully", benefits)
}

// Get handles GET /api/admin/benefits/:id
func (h *BenefitHandler) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	benefit, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Benefit retrieved successfully", benefit)
}

// Create handles POST /api/admin/benefits
func (h *BenefitHandler) Create(c *gin.Context) {
	var req dto.CreateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	benefit, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to create benefit", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, benefit, "Benefit created successfully")
}

// Update handles PUT /api/admin/benefits/:id
func (h *BenefitHandler) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	benefit, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Benefit updated successfully", benefit)
}

// Delete handles DELETE /api/admin/benefits/:id
func (h *BenefitHandler) Delete(c *gin.Context) {
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

// Reorder handles PUT /api/admin/benefits/reorder
func (h *BenefitHandler) Reorder(c *gin.Context) {
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

	utils.SuccessResponse(c, http.StatusOK, "Benefits reordered successfully", nil)
}
