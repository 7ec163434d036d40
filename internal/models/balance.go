package models

import (
	"time"
)

// Balance entry types.
const (
	EntryTypeDebit  = "DEBIT"
	EntryTypeCredit = "CREDIT"
)

// Balance tracks an advertiser's ledger state: funds not yet committed to a
// campaign (available), committed but unpaid (pending), and paid out
// (withdrawn). Mutated only inside row-locked transactions.
type Balance struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AdvertiserID string    `json:"advertiser_id" gorm:"not null;uniqueIndex;type:uuid"`
	Available    float64   `json:"available" gorm:"type:decimal(15,2);not null;default:0"`
	Pending      float64   `json:"pending" gorm:"type:decimal(15,2);not null;default:0"`
	Withdrawn    float64   `json:"withdrawn" gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Advertiser User `json:"advertiser,omitempty" gorm:"foreignKey:AdvertiserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Balance model
func (Balance) TableName() string {
	return "balances"
}

// BalanceEntry is the audit trail for every balance mutation, consumed by the
// external settlement process.
type BalanceEntry struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AdvertiserID   string    `json:"advertiser_id" gorm:"not null;index;type:uuid"`
	CampaignID     *string   `json:"campaign_id,omitempty" gorm:"type:uuid;index"`
	EntryType      string    `json:"entry_type" gorm:"type:varchar(10);not null"` // DEBIT or CREDIT
	Amount         float64   `json:"amount" gorm:"type:decimal(15,2);not null"`
	Reason         string    `json:"reason" gorm:"type:varchar(255);not null"`
	AvailableAfter float64   `json:"available_after" gorm:"type:decimal(15,2);not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`
}

// TableName specifies the table name for the BalanceEntry model
func (BalanceEntry) TableName() string {
	return "balance_entries"
}

// DepositRequest represents the request to top up an advertiser balance
type DepositRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0" example:"500"`
}

// BalanceResponse represents the advertiser balance snapshot
type BalanceResponse struct {
	Available float64        `json:"available"`
	Pending   float64        `json:"pending"`
	Withdrawn float64        `json:"withdrawn"`
	Entries   []BalanceEntry `json:"entries,omitempty"`
}
