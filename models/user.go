package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password     string     `gorm:"size:255;not null" json:"-"`
	Balance      float64    `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Level        uint       `gorm:"not null;default:1" json:"level"`
	XP           uint       `gorm:"column:xp;not null;default:0" json:"xp"`
	NextLevelXP  uint       `gorm:"column:next_level_xp;not null;default:100" json:"nextLevelXp"`
	IsAdmin      bool       `gorm:"not null;default:false" json:"isAdmin"`
	IsBlocked    bool       `gorm:"not null;default:false" json:"isBlocked"`
	ProfileImage string     `gorm:"size:255;default:'default-avatar.png'" json:"profileImage"`
	PhoneNumber  string     `gorm:"size:30;default:''" json:"phoneNumber"`
	Country      string     `gorm:"size:60;default:''" json:"country"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"-"`
}

func (User) TableName() string {
	return "users"
}
