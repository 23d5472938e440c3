package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// FakeStats is the single persisted row of cosmetic platform counters shown
// on the landing page. Admin-editable; never derived from real data.
type FakeStats struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TotalUsers      int64     `gorm:"not null;default:5698" json:"totalUsers"`
	ActiveUsers     int64     `gorm:"not null;default:1756" json:"activeUsers"`
	TotalInvestment float64   `gorm:"type:decimal(15,2);not null;default:96854" json:"totalInvestment"`
	TotalPayout     float64   `gorm:"type:decimal(15,2);not null;default:25356" json:"totalPayout"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (FakeStats) TableName() string {
	return "fake_stats"
}

// GetFakeStats returns the singleton row, creating it with defaults on
// first access.
func GetFakeStats(db *gorm.DB) (*FakeStats, error) {
	var stats FakeStats
	err := db.First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stats = FakeStats{
			TotalUsers:      5698,
			ActiveUsers:     1756,
			TotalInvestment: 96854,
			TotalPayout:     25356,
		}
		if err := db.Create(&stats).Error; err != nil {
			return nil, err
		}
		return &stats, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
