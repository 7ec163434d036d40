package handlers

import (
	"net/http"

	"github.com/quintus06/Clipbox-sub000/internal/models"
	"github.com/quintus06/Clipbox-sub000/internal/services"
	"github.com/quintus06/Clipbox-sub000/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CampaignHandler struct {
	campaignService   *services.CampaignService
	budgetService     *services.BudgetService
	submissionService *services.SubmissionService
}

func NewCampaignHandler(db *gorm.DB, events *services.EventsService) *CampaignHandler {
	return &CampaignHandler{
		campaignService:   services.NewCampaignService(db),
		budgetService:     services.NewBudgetService(db, events),
		submissionService: services.NewSubmissionService(db, events),
	}
}

// CreateCampaign godoc
// @Summary Create a new campaign
// @Description Create an active campaign, funding its budget from the available balance
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateCampaignRequest true "Create campaign request"
// @Success 201 {object} models.CampaignResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	response, err := h.campaignService.CreateCampaign(user, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetMyCampaigns godoc
// @Summary Get own campaigns
// @Description Get all campaigns of the authenticated advertiser
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CampaignResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns [get]
func (h *CampaignHandler) GetMyCampaigns(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	campaigns, err := h.campaignService.GetCampaignsByAdvertiser(user)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// GetCampaignByID godoc
// @Summary Get campaign by ID
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.CampaignResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id} [get]
func (h *CampaignHandler) GetCampaignByID(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	campaignID := c.Param("id")

	campaign, err := h.campaignService.GetCampaignByID(user, campaignID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// DiscoverCampaigns godoc
// @Summary Browse active campaigns
// @Description Paginated list of active campaigns open for submissions
// @Tags campaigns
// @Produce json
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/discover [get]
func (h *CampaignHandler) DiscoverCampaigns(c *gin.Context) {
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)

	campaigns, total, err := h.campaignService.DiscoverCampaigns(page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaigns":  campaigns,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// IncreaseBudget godoc
// @Summary Increase campaign budget
// @Description Raise the campaign budget, debiting the delta from the available balance
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Param request body models.IncreaseBudgetRequest true "Increase budget request"
// @Success 200 {object} models.CampaignResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/increase-budget [patch]
func (h *CampaignHandler) IncreaseBudget(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	campaignID := c.Param("id")

	var req models.IncreaseBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	campaign, err := h.budgetService.IncreaseBudget(user, campaignID, req.NewBudget)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Budget increased",
		"budget":           campaign.Budget,
		"remaining_budget": campaign.RemainingBudget,
	})
}

// PauseCampaign godoc
// @Summary Pause a campaign
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.CampaignResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/pause [patch]
func (h *CampaignHandler) PauseCampaign(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	campaign, err := h.campaignService.Pause(user, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// ResumeCampaign godoc
// @Summary Resume a paused campaign
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.CampaignResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/resume [patch]
func (h *CampaignHandler) ResumeCampaign(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	campaign, err := h.campaignService.Resume(user, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// CompleteCampaign godoc
// @Summary Complete a campaign
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.CampaignResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/complete [patch]
func (h *CampaignHandler) CompleteCampaign(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	campaign, err := h.campaignService.Complete(user, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// GetCampaignSubmissions godoc
// @Summary Get a campaign's submissions
// @Description List submissions against a campaign (advertiser owner or admin)
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {array} models.SubmissionResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/campaigns/{id}/submissions [get]
func (h *CampaignHandler) GetCampaignSubmissions(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	submissions, err := h.submissionService.ListForCampaign(user, c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submissions)
}
