package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilmpay/ilmpay/internal/application/content/dto"
	"github.com/ilmpay/ilmpay/internal/application/content/services"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
	"github.com/ilmpay/ilmpay/internal/shared/utils"
)

// TestimonialHandler serves the public testimonial list and the admin CRUD.
type TestimonialHandler struct {
	service *services.TestimonialService
	logger  logger.Interface
}

func NewTestimonialHandler(service *services.TestimonialService, logger logger.Interface) *TestimonialHandler {
	return &TestimonialHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list testimonials", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Testimonials retrieved successfully", testimonials)
}

// Get handles GET /api/admin/testimonials/:id
func (h *TestimonialHandler) Get(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	testimonial, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Testimonial retrieved successfully", testimonial)
}

// Create handles POST /api/admin/testimonials
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req dto.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	testimonial, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to create testimonial", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, testimonial, "Testimonial created successfully")
}

// Update handles PUT /api/admin/testimonials/:id
func (h *TestimonialHandler) Update(c *gin.Context) {
	id, ok := utils.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	testimonial, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Testimonial updated successfully", testimonial)
}

// Delete handles DELETE /api/admin/testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
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

// Reorder handles PUT /api/admin/testimonials/reorder
func (h *TestimonialHandler) Reorder(c *gin.Context) {
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

	utils.SuccessResponse(c, http.StatusOK, "Testimonials reordered successfully", nil)
}
