package handlers

import (
	"net/http"

	"github.com/quintus06/Clipbox-sub000/internal/models"
	"github.com/quintus06/Clipbox-sub000/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SocialAccountHandler struct {
	accountService *services.SocialAccountService
}

func NewSocialAccountHandler(db *gorm.DB) *SocialAccountHandler {
	return &SocialAccountHandler{accountService: services.NewSocialAccountService(db)}
}

// ConnectAccount godoc
// @Summary Connect a social account
// @Description Register a social media account for the authenticated clipper
// @Tags social-accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ConnectAccountRequest true "Connect account request"
// @Success 201 {object} models.SocialAccount
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/social-accounts [post]
func (h *SocialAccountHandler) ConnectAccount(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	var req models.ConnectAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	account, err := h.accountService.Connect(user, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

// GetMyAccounts godoc
// @Summary Get own social accounts
// @Tags social-accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SocialAccount
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/social-accounts [get]
func (h *SocialAccountHandler) GetMyAccounts(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	accounts, err := h.accountService.ListMine(user)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// DeleteAccount godoc
// @Summary Delete a social account
// @Tags social-accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/social-accounts/{id} [delete]
func (h *SocialAccountHandler) DeleteAccount(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	if err := h.accountService.Delete(user, c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
