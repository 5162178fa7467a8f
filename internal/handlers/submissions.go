package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"car-market-backend/internal/metrics"
	"car-market-backend/internal/models"
)

type SubmissionsHandler struct {
	store    SubmissionStore
	validate *validator.Validate
}

func NewSubmissionsHandler(store SubmissionStore) *SubmissionsHandler {
	return &SubmissionsHandler{
		store:    store,
		validate: validator.New(),
	}
}

// Create godoc
// @Summary     Submit a listing
// @Description Accepts a price listing from the bot and stores it pending review
// @Tags        submissions
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       submission body models.CreateSubmissionRequest true "Listing payload"
// @Success     201 {object} models.CreateSubmissionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /submissions [post]
func (h *SubmissionsHandler) Create(c *gin.Context) {
	var req models.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing required fields",
			Message: err.Error(),
		})
		return
	}

	sub := &models.Submission{
		UserID:      req.UserID,
		Server:      req.Server,
		Car:         req.Car,
		Price:       req.Price,
		PhotoFileID: req.PhotoFileID,
	}
	if req.UserName != "" {
		sub.UserName.String = req.UserName
		sub.UserName.Valid = true
	}
	if req.FilePath != "" {
		sub.FilePath.String = req.FilePath
		sub.FilePath.Valid = true
	}

	id, err := h.store.Create(sub)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to store submission",
			Message: err.Error(),
		})
		return
	}

	metrics.SubmissionsReceived.Inc()
	c.JSON(http.StatusCreated, models.CreateSubmissionResponse{
		ID:      id,
		Message: "submission received",
	})
}

// List godoc
// @Summary     List pending submissions
// @Description Returns all submissions awaiting review, newest first
// @Tags        submissions
// @Produce     json
// @Success     200 {object} models.SubmissionListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /submissions [get]
func (h *SubmissionsHandler) List(c *gin.Context) {
	submissions, err := h.store.ListPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list submissions",
			Message: err.Error(),
		})
		return
	}

	responses := make([]models.SubmissionResponse, len(submissions))
	for i, sub := range submissions {
		responses[i] = models.FromSubmission(sub)
	}

	c.JSON(http.StatusOK, models.SubmissionListResponse{Submissions: responses})
}
