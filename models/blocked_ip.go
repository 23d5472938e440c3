package models

import "time"

type BlockedIP struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	IPAddress string    `gorm:"size:45;uniqueIndex;not null" json:"ipAddress"`
	Reason    string    `gorm:"type:text" json:"reason"`
	BlockedBy uint      `gorm:"not null" json:"blockedBy"`
	CreatedAt time.Time `json:"blockedAt"`
}

func (BlockedIP) TableName() string {
	return "blocked_ips"
}
