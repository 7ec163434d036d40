package handlers

import (
	"net/http"

	"github.com/quintus06/Clipbox-sub000/internal/models"
	"github.com/quintus06/Clipbox-sub000/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BalanceHandler struct {
	budgetService *services.BudgetService
}

func NewBalanceHandler(db *gorm.DB, events *services.EventsService) *BalanceHandler {
	return &BalanceHandler{budgetService: services.NewBudgetService(db, events)}
}

// GetBalance godoc
// @Summary Get own balance
// @Description Balance snapshot with recent ledger entries (advertisers only)
// @Tags balance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.BalanceResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/balance [get]
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	balance, err := h.budgetService.GetBalance(user)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, balance)
}

// Deposit godoc
// @Summary Deposit funds
// @Description Credit the advertiser's available balance
// @Tags balance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DepositRequest true "Deposit request"
// @Success 200 {object} models.Balance
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/balance/deposit [post]
func (h *BalanceHandler) Deposit(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	var req models.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	balance, err := h.budgetService.Deposit(user, req.Amount)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, balance)
}
