package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID                 uuid.UUID `gorm:"type:char(36);primaryKey"`
	Slug               string    `gorm:"size:255;not null;uniqueIndex"`
	Title              string    `gorm:"size:255;not null"`
	ISBN               string    `gorm:"size:20;index"`
	Description        string    `gorm:"type:text"`
	Publisher          string    `gorm:"size:200"`
	PublishedYear      int
	Language           string `gorm:"size:50;index"`
	TotalPages         int
	CoverImageURL      string
	RentalPricePerWeek float64    `gorm:"type:decimal(10,2);not null;default:0"`
	DepositAmount      float64    `gorm:"type:decimal(10,2);not null;default:0"`
	Condition          Condition  `gorm:"size:20;not null;default:good"`
	AverageRating      float64    `gorm:"type:decimal(3,2);not null;default:0"`
	TotalRatings       int        `gorm:"not null;default:0"`
	TotalRentals       int        `gorm:"not null;default:0"`
	IsFeatured         bool       `gorm:"not null;default:false"`
	AuthorID           *uuid.UUID `gorm:"type:char(36);index"`
	Author             *Author
	GenreID            uuid.UUID `gorm:"type:char(36);not null;index"`
	Genre              Genre
	LibraryBooks       []LibraryBook `gorm:"foreignKey:BookID"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
