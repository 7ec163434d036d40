package excel

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
	"github.com/quintus06/Clipbox-sub000/internal/database/repository"
)

// Service builds Excel exports of campaign submissions for offline
// reconciliation by the settlement team.
type Service struct {
	campaignRepo   *repository.CampaignRepository
	submissionRepo *repository.SubmissionRepository
}

// NewExcelService creates a new Excel service instance
func NewExcelService(db *gorm.DB) *Service {
	return &Service{
		campaignRepo:   repository.NewCampaignRepository(db),
		submissionRepo: repository.NewSubmissionRepository(db),
	}
}

// ExportResult contains the generated workbook and its download filename.
type ExportResult struct {
	Filename string
	Content  *bytes.Buffer
}

var exportHeaders = []string{
	"Submission ID", "Clipper", "Clip URL", "Platform", "Status",
	"Views", "Likes", "Shares", "Comments", "Amount Earned", "Submitted At", "Reviewed At",
}

// ExportCampaignSubmissions exports every submission of a campaign to an
// Excel workbook.
func (s *Service) ExportCampaignSubmissions(campaignID string) (*ExportResult, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrCampaignNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	submissions, err := s.submissionRepo.GetByCampaignID(campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get submissions: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Submissions"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, submission := range submissions {
		amountEarned := 0.0
		if submission.AmountEarned != nil {
			amountEarned = *submission.AmountEarned
		}
		reviewedAt := ""
		if submission.ApprovedAt != nil {
			reviewedAt = submission.ApprovedAt.Format(time.RFC3339)
		} else if submission.RejectedAt != nil {
			reviewedAt = submission.RejectedAt.Format(time.RFC3339)
		}

		values := []interface{}{
			submission.ID,
			submission.Clipper.DisplayName,
			submission.ClipURL,
			submission.Platform,
			submission.Status,
			submission.Views,
			submission.Likes,
			submission.Shares,
			submission.Comments,
			amountEarned,
			submission.SubmittedAt.Format(time.RFC3339),
			reviewedAt,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	content, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("campaign_%s_submissions_%d.xlsx", campaign.ID, time.Now().Unix())
	return &ExportResult{Filename: filename, Content: content}, nil
}
