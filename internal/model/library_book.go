package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStock = errors.New("available copies must be between 0 and total copies")

// LibraryBook links a book to one library that carries it.
type LibraryBook struct {
	LibraryID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	BookID          uuid.UUID `gorm:"type:char(36);primaryKey;index"`
	Library         Library
	Book            Book
	TotalCopies     int  `gorm:"not null;default:0"`
	AvailableCopies int  `gorm:"not null;default:0"`
	IsAvailable     bool `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SetStock assigns both copy counters and recomputes IsAvailable.
func (lb *LibraryBook) SetStock(total, available int) error {
	if total < 0 || available < 0 || available > total {
		return ErrInvalidStock
	}
	lb.TotalCopies = total
	lb.AvailableCopies = available
	lb.IsAvailable = available > 0
	return nil
}
