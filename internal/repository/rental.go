package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const rentalWeek = 7 * 24 * time.Hour

type RentalInput struct {
	BookID    uuid.UUID
	LibraryID uuid.UUID
	Weeks     int
}

type RentalRepository interface {
	Create(ctx context.Context, userID uuid.UUID, in RentalInput) (*model.Rental, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Rental, error)
}

type GormRentalRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormRentalRepository(db *gorm.DB) *GormRentalRepository {
	return &GormRentalRepository{db: db, now: time.Now}
}

// Create rents one copy in a single transaction: the book deposit is held
// from the wallet, one available copy is taken from the library and the
// book's rental counter is bumped. Balance and stock are guarded by
// conditional updates so concurrent rentals cannot overdraw either.
func (r *GormRentalRepository) Create(ctx context.Context, userID uuid.UUID, in RentalInput) (*model.Rental, error) {
	var rental model.Rental

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book model.Book
		if err := tx.First(&book, "id = ?", in.BookID).Error; err != nil {
			return err
		}

		var user model.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		held := tx.Model(&model.User{}).
			Where("id = ? AND deposit_balance >= ?", userID, book.DepositAmount).
			Update("deposit_balance", gorm.Expr("deposit_balance - ?", book.DepositAmount))
		if held.Error != nil {
			return held.Error
		}
		if held.RowsAffected == 0 {
			return ErrInsufficientDeposit
		}

		var link model.LibraryBook
		if err := tx.First(&link, "library_id = ? AND book_id = ?", in.LibraryID, in.BookID).Error; err != nil {
			return err
		}

		// is_available is assigned first: MySQL evaluates SET left to right.
		taken := tx.Exec(
			`UPDATE library_books
			SET is_available = available_copies > 1, available_copies = available_copies - 1, updated_at = ?
			WHERE library_id = ? AND book_id = ? AND available_copies > 0`,
			r.now(), in.LibraryID, in.BookID,
		)
		if taken.Error != nil {
			return taken.Error
		}
		if taken.RowsAffected == 0 {
			return ErrOutOfStock
		}

		if err := tx.Model(&model.Book{}).
			Where("id = ?", in.BookID).
			UpdateColumn("total_rentals", gorm.Expr("total_rentals + ?", 1)).Error; err != nil {

			return err
		}

		now := r.now()
		rental = model.Rental{
			UserID:        userID,
			BookID:        in.BookID,
			LibraryID:     in.LibraryID,
			Weeks:         in.Weeks,
			RentAmount:    book.RentalPricePerWeek * float64(in.Weeks),
			DepositAmount: book.DepositAmount,
			Status:        model.RentalActive,
			DueAt:         now.Add(time.Duration(in.Weeks) * rentalWeek),
		}

		return tx.Omit(clause.Associations).Create(&rental).Error
	})
	if err != nil {
		return nil, err
	}

	return &rental, nil
}

func (r *GormRentalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Rental, error) {
	var rentals []model.Rental
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Library").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rentals).Error; err != nil {

		return nil, err
	}
	return rentals, nil
}
