package models

import "time"

// PackageSettings is one tier of the investment catalog. Rows are seeded at
// startup and mutated only through the admin panel; the engine treats them
// as read-only.
type PackageSettings struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Type         string    `gorm:"type:enum('SILVER','GOLD','PLATINUM','DIAMOND','MASTER','ELITE');uniqueIndex;not null" json:"type"`
	InterestRate float64   `gorm:"type:decimal(5,2);not null" json:"interestRate"`
	MinAmount    float64   `gorm:"type:decimal(15,2);not null" json:"minAmount"`
	MaxAmount    float64   `gorm:"type:decimal(15,2);not null" json:"maxAmount"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (PackageSettings) TableName() string {
	return "package_settings"
}

// PackageTypes lists the valid tier names in display order.
var PackageTypes = []string{"SILVER", "GOLD", "PLATINUM", "DIAMOND", "MASTER", "ELITE"}

// IsValidPackageType reports whether t is one of the known tier names.
func IsValidPackageType(t string) bool {
	for _, p := range PackageTypes {
		if p == t {
			return true
		}
	}
	return false
}

// DefaultPackageSettings returns the seed catalog used when a tier row is
// missing at startup.
func DefaultPackageSettings() []PackageSettings {
	return []PackageSettings{
		{Type: "SILVER", InterestRate: 7, MinAmount: 5, MaxAmount: 100},
		{Type: "GOLD", InterestRate: 10, MinAmount: 100, MaxAmount: 500},
		{Type: "PLATINUM", InterestRate: 16, MinAmount: 500, MaxAmount: 1000},
		{Type: "DIAMOND", InterestRate: 25, MinAmount: 1000, MaxAmount: 5000},
		{Type: "MASTER", InterestRate: 34, MinAmount: 5000, MaxAmount: 10000},
		{Type: "ELITE", InterestRate: 40, MinAmount: 10000, MaxAmount: 20000},
	}
}
