package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/quintus06/Clipbox-sub000/internal/services/excel"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	excelService *excel.Service
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{excelService: excel.NewExcelService(db)}
}

// ExportCampaignSubmissions godoc
// @Summary Export campaign submissions
// @Description Export every submission of a campaign as an Excel workbook (admins only)
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {file} binary "Excel file"
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/campaigns/{id}/submissions/export [get]
func (h *AdminHandler) ExportCampaignSubmissions(c *gin.Context) {
	campaignID := c.Param("id")

	result, err := h.excelService.ExportCampaignSubmissions(campaignID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Set headers for file download
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Header("Content-Transfer-Encoding", "binary")

	c.Data(http.StatusOK, xlsxContentType, result.Content.Bytes())
}
