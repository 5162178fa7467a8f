package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"car-market-backend/internal/metrics"
	"car-market-backend/internal/models"
	"car-market-backend/internal/telegram"
)

type PhotosHandler struct {
	resolver PhotoResolver
}

func NewPhotosHandler(resolver PhotoResolver) *PhotosHandler {
	return &PhotosHandler{
		resolver: resolver,
	}
}

// Get godoc
// @Summary     Fetch a listing photo
// @Description Resolves the file id against Telegram and streams the bytes through
// @Tags        photos
// @Produce     octet-stream
// @Param       file_id path string true "Telegram file id"
// @Success     200 {file} binary
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /photo/{file_id} [get]
func (h *PhotosHandler) Get(c *gin.Context) {
	fileID := c.Param("file_id")

	photo, err := h.resolver.ResolvePhoto(fileID)
	if errors.Is(err, telegram.ErrFileNotFound) {
		metrics.PhotoFetches.WithLabelValues("not_found").Inc()
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "photo not found or expired"})
		return
	}
	if err != nil {
		metrics.PhotoFetches.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to fetch photo",
			Message: err.Error(),
		})
		return
	}
	defer photo.Body.Close()

	metrics.PhotoFetches.WithLabelValues("ok").Inc()
	c.DataFromReader(http.StatusOK, photo.ContentLength, photo.ContentType, photo.Body, nil)
}
