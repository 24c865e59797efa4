package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Library struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name         string    `gorm:"size:200;not null"`
	Slug         string    `gorm:"size:255;not null;uniqueIndex"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	Phone        string    `gorm:"size:30"`
	AddressLine  string
	City         string `gorm:"size:100;index"`
	State        string `gorm:"size:100"`
	PostalCode   string `gorm:"size:20;index"`
	OpeningTime  string `gorm:"size:5"`
	ClosingTime  string `gorm:"size:5"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (l *Library) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
