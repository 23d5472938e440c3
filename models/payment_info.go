package models

import "time"

// PaymentInfo is an admin-configured payment destination shown to users on
// the deposit screen. At most one row per type is active; updating a type
// deactivates the previous row and inserts a fresh one.
type PaymentInfo struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Type           string    `gorm:"type:enum('CREDIT_CARD','M10','CRYPTO');not null;index" json:"type"`
	CardNumber     string    `gorm:"size:30" json:"cardNumber,omitempty"`
	CardHolderName string    `gorm:"size:100" json:"cardHolderName,omitempty"`
	CardBank       string    `gorm:"size:100" json:"cardBank,omitempty"`
	M10PhoneNumber string    `gorm:"size:30" json:"m10PhoneNumber,omitempty"`
	CryptoAddress  string    `gorm:"size:120" json:"cryptoAddress,omitempty"`
	CryptoCurrency string    `gorm:"size:20;default:'BTC'" json:"cryptoCurrency,omitempty"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (PaymentInfo) TableName() string {
	return "payment_infos"
}
