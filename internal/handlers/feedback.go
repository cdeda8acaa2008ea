package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/feedback-backend/internal/logger"
	"github.com/yungbote/feedback-backend/internal/services"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type FeedbackHandler struct {
	log             *logger.Logger
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(log *logger.Logger, feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		log:             log.With("handler", "FeedbackHandler"),
		feedbackService: feedbackService,
	}
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req struct {
		UserRating int    `json:"user_rating"`
		UserReview string `json:"user_review"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondDetail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	submission, err := h.feedbackService.Submit(c.Request.Context(), req.UserRating, req.UserReview)
	if err != nil {
		if services.IsValidationError(err) {
			RespondDetail(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("Submit failed", "error", err)
		RespondDetail(c, http.StatusInternalServerError, "failed to save submission")
		return
	}
	RespondOK(c, submission)
}

func (h *FeedbackHandler) ListSubmissions(c *gin.Context) {
	limit := parseQueryInt(c, "limit", defaultListLimit)
	offset := parseQueryInt(c, "offset", 0)
	if limit < 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	submissions, total, err := h.feedbackService.ListSubmissions(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Error("ListSubmissions failed", "error", err)
		RespondDetail(c, http.StatusInternalServerError, "failed to load submissions")
		return
	}
	RespondOK(c, gin.H{"submissions": submissions, "total": total})
}

func (h *FeedbackHandler) GetSubmission(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondDetail(c, http.StatusBadRequest, "invalid submission id")
		return
	}

	submission, err := h.feedbackService.GetSubmission(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			RespondDetail(c, http.StatusNotFound, "Submission not found")
			return
		}
		h.log.Error("GetSubmission failed", "error", err, "submission_id", id)
		RespondDetail(c, http.StatusInternalServerError, "failed to load submission")
		return
	}
	RespondOK(c, submission)
}

func (h *FeedbackHandler) Stats(c *gin.Context) {
	stats, err := h.feedbackService.Stats(c.Request.Context())
	if err != nil {
		h.log.Error("Stats failed", "error", err)
		RespondDetail(c, http.StatusInternalServerError, "failed to load stats")
		return
	}
	RespondOK(c, stats)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return val
}
