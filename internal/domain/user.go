package domain

import (
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	IsAdmin      bool      `json:"isAdmin" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session is one authenticated browser. ID is the hex SHA-256 digest of
// the bearer token, never the token itself, so a copy of this table does
// not yield usable credentials.
type Session struct {
	ID        string    `json:"-" gorm:"primaryKey;size:64"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
}

func (Session) TableName() string { return "sessions" }
