package models

import "time"

const (
	InvestmentStatusActive    = "ACTIVE"
	InvestmentStatusCompleted = "COMPLETED"
)

type Investment struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Owner of the investment.
	UserID uint `gorm:"not null;index" json:"user_id"`
	// Tier type, must match a PackageSettings row at creation time.
	Type   string  `gorm:"type:enum('SILVER','GOLD','PLATINUM','DIAMOND','MASTER','ELITE');not null" json:"type"`
	Amount float64 `gorm:"type:decimal(15,2);not null" json:"amount"`
	// Rate in effect when the investment was created. Later catalog edits
	// do not touch running investments.
	InterestRate float64 `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	// Fixed per-day accrual. Stored at 6 decimal places so that
	// amount + daily_return*30 rounds back to the exact whole-period return.
	DailyReturn float64   `gorm:"type:decimal(15,6);not null" json:"daily_return"`
	StartDate   time.Time `gorm:"not null" json:"start_date"`
	EndDate     time.Time `gorm:"not null;index" json:"end_date"`
	Status      string    `gorm:"type:enum('ACTIVE','COMPLETED');not null;default:'ACTIVE';index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

func (Investment) TableName() string {
	return "investments"
}
