package handlers

import (
	"net/http"

	"github.com/quintus06/Clipbox-sub000/internal/models"
	"github.com/quintus06/Clipbox-sub000/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubmissionHandler struct {
	submissionService *services.SubmissionService
	reviewService     *services.ReviewService
}

func NewSubmissionHandler(db *gorm.DB, events *services.EventsService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: services.NewSubmissionService(db, events),
		reviewService:     services.NewReviewService(db, events),
	}
}

// CreateSubmission godoc
// @Summary Submit a clip
// @Description Submit a clip against an active campaign (clippers only)
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateSubmissionRequest true "Create submission request"
// @Success 201 {object} models.SubmissionResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	var req models.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	response, err := h.submissionService.CreateSubmission(user, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetMySubmissions godoc
// @Summary Get own submissions
// @Description Get all submissions of the authenticated clipper, most recent first
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SubmissionResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/submissions [get]
func (h *SubmissionHandler) GetMySubmissions(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	submissions, err := h.submissionService.ListForClipper(user)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}

// ApproveSubmission godoc
// @Summary Approve a submission
// @Description Approve a pending submission, computing and debiting its payout
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} models.SubmissionResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/submissions/{id}/approve [patch]
func (h *SubmissionHandler) ApproveSubmission(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	submissionID := c.Param("id")

	response, err := h.reviewService.Approve(user, submissionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission approved", "submission": response})
}

// RejectSubmission godoc
// @Summary Reject a submission
// @Description Reject a pending submission with reviewer notes (min 10 characters)
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Param request body models.RejectSubmissionRequest true "Reject request"
// @Success 200 {object} models.SubmissionResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/submissions/{id}/reject [patch]
func (h *SubmissionHandler) RejectSubmission(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	submissionID := c.Param("id")

	var req models.RejectSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	response, err := h.reviewService.Reject(user, submissionID, req.ReviewerNotes)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission rejected", "submission": response})
}

// UpdateSubmissionMetrics godoc
// @Summary Refresh submission metrics
// @Description Update engagement counters of a submission (admin only)
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Param request body models.UpdateSubmissionMetricsRequest true "Metrics update"
// @Success 200 {object} models.SubmissionResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/submissions/{id}/metrics [patch]
func (h *SubmissionHandler) UpdateSubmissionMetrics(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	submissionID := c.Param("id")

	var req models.UpdateSubmissionMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	response, err := h.submissionService.UpdateMetrics(user, submissionID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
