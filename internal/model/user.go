package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name           string    `gorm:"size:200;not null"`
	Email          string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash   string    `gorm:"not null"`
	Phone          string    `gorm:"size:30"`
	DepositBalance float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Addresses      []Address `gorm:"foreignKey:UserID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
