package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEmptyAuthorName = errors.New("author name must not be empty")

type Author struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name      string    `gorm:"size:200;not null;uniqueIndex"`
	Bio       string
	ImageURL  string
	Books     []Book `json:"books,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Author) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// BeforeSave trims the name, which is the find-or-create key.
func (a *Author) BeforeSave(tx *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return ErrEmptyAuthorName
	}
	return nil
}
