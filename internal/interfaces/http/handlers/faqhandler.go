package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilmpay/ilmpay/internal/application/content/dto"
	"github.com/ilmpay/ilmpay/internal/application/content/services"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
	"github.com/ilmpay/ilmpay/internal/shared/utils"
)

// FAQHandler serves the public FAQ list and the admin CRUD. Answers go out
// twice: raw markdown for the admin editor and rendered HTML for the site.
type FAQHandler struct {
	service *services.FAQService
	logger  logger.Interface
}

func NewFAQHandler(service *services.FAQService, logger logger.Interface) *FAQHandler {
	return &FAQHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/faqs
func (h *FAQHandler) List(c *gin.Context) {
	faqs, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list FAQs", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "FAQs retrieved successfully", faqs)
}

// Get handles GET /api/admin/faqs/:id
func (h *FAQHandler) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	faq, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "FAQ retrieved successfully", faq)
}

// Create handles POST /api/admin/faqs
func (h *FAQHandler) Create(c *gin.Context) {
	var req dto.CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	faq, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to create FAQ", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, faq, "FAQ created successfully")
}

// Update handles PUT /api/admin/faqs/:id
func (h *FAQHandler) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	faq, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "FAQ updated successfully", faq)
}

// Delete handles DELETE /api/admin/faqs/:id
func (h *FAQHandler) Delete(c *gin.Context) {
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

// Reorder handles PUT /api/admin/faqs/reorder
func (h *FAQHandler) Reorder(c *gin.Context) {
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

	utils.SuccessResponse(c, http.StatusOK, "FAQs reordered successfully", nil)
}
