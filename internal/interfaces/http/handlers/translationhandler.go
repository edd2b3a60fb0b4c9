package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilmpay/ilmpay/internal/application/translation"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
	"github.com/ilmpay/ilmpay/internal/shared/utils"
)

// TranslationHandler serves per-language UI string bundles and the admin
// upsert/delete operations.
type TranslationHandler struct {
	service *translation.Service
	logger  logger.Interface
}

func NewTranslationHandler(service *translation.Service, logger logger.Interface) *TranslationHandler {
	return &TranslationHandler{
		service: service,
		logger:  logger,
	}
}

// GetBundle handles GET /api/translations/:lang
func (h *TranslationHandler) GetBundle(c *gin.Context) {
	lang := c.Param("lang")

	bundle, err := h.service.GetBundle(c.Request.Context(), lang)
	if err != nil {
		h.logger.Errorw("failed to get translation bundle", "language", lang, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Translations retrieved successfully", bundle)
}

// ListLanguages handles GET /api/admin/translations/languages
func (h *TranslationHandler) ListLanguages(c *gin.Context) {
	languages, err := h.service.ListLanguages(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Languages retrieved successfully", languages)
}

// Upsert handles PUT /api/admin/translations
func (h *TranslationHandler) Upsert(c *gin.Context) {
	var req translation.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Upsert(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Translation saved successfully", nil)
}

// Delete handles DELETE /api/admin/translations/:lang/:key
func (h *TranslationHandler) Delete(c *gin.Context) {
	lang := c.Param("lang")
	key := c.Param("key")

	if err := h.service.Delete(c.Request.Context(), key, lang); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
