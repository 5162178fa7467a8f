package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"car-market-backend/internal/metrics"
	"car-market-backend/internal/models"
	"car-market-backend/internal/store"
)

type ModerationHandler struct {
	store     SubmissionStore
	publisher Publisher
	log       zerolog.Logger
}

func NewModerationHandler(submissionStore SubmissionStore, publisher Publisher, log zerolog.Logger) *ModerationHandler {
	return &ModerationHandler{
		store:     submissionStore,
		publisher: publisher,
		log:       log,
	}
}

// Approve godoc
// @Summary     Approve a submission
// @Description Publishes the submission to the channel, then deletes it
// @Tags        moderation
// @Produce     json
// @Param       id path int true "Submission ID"
// @Success     200 {object} models.ModerationResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /submissions/{id}/approve [post]
func (h *ModerationHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid submission id"})
		return
	}

	sub, err := h.store.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "submission not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to load submission",
			Message: err.Error(),
		})
		return
	}

	if err := h.publisher.PublishListing(sub); err != nil {
		// Row stays; the reviewer can retry once the channel is reachable.
		metrics.PublishFailures.Inc()
		h.log.Error().Err(err).Int64("submission_id", id).Msg("failed to publish submission")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to publish submission",
			Message: err.Error(),
		})
		return
	}

	if err := h.store.Delete(id); err != nil && !errors.Is(err, store.ErrNotFound) {
		// The post is already in the channel. Approving again would post a
		// duplicate, so this inconsistency needs an operator.
		h.log.Error().Err(err).Int64("submission_id", id).
			Msg("submission published but not deleted; manual cleanup required to avoid a duplicate post")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "published but failed to delete submission",
			Message: err.Error(),
		})
		return
	}

	metrics.SubmissionsApproved.Inc()
	h.log.Info().Int64("submission_id", id).Msg("submission approved and published")
	c.JSON(http.StatusOK, models.ModerationResponse{Success: true})
}

// Reject godoc
// @Summary     Reject a submission
// @Description Deletes the submission without publishing
// @Tags        moderation
// @Produce     json
// @Param       id path int true "Submission ID"
// @Success     200 {object} models.ModerationResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /submissions/{id}/reject [post]
func (h *ModerationHandler) Reject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid submission id"})
		return
	}

	err = h.store.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		// Already decided by a concurrent reviewer; nothing left to do.
		c.JSON(http.StatusOK, models.ModerationResponse{
			Success: true,
			Message: "submission already removed",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to delete submission",
			Message: err.Error(),
		})
		return
	}

	metrics.SubmissionsRejected.Inc()
	h.log.Info().Int64("submission_id", id).Msg("submission rejected")
	c.JSON(http.StatusOK, models.ModerationResponse{Success: true})
}
