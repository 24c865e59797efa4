package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// findOrCreateAttempts bounds the lookup/insert loop when a concurrent
// writer wins the unique index.
const findOrCreateAttempts = 3

type BookInput struct {
	Title              string
	ISBN               string
	Description        string
	Publisher          string
	PublishedYear      int
	Language           string
	TotalPages         int
	CoverImageURL      string
	RentalPricePerWeek float64
	DepositAmount      float64
	Condition          model.Condition
	AuthorName         string
	GenreName          string
	TotalCopies        int
}

// BookPatch holds the fields a library edit supplies; nil fields are left
// untouched.
type BookPatch struct {
	Title              *string
	ISBN               *string
	Description        *string
	Publisher          *string
	PublishedYear      *int
	Language           *string
	TotalPages         *int
	CoverImageURL      *string
	RentalPricePerWeek *float64
	DepositAmount      *float64
	Condition          *model.Condition
	AuthorName         *string
	GenreName          *string
}

type InventoryRepository interface {
	FindOrCreateAuthor(ctx context.Context, name string) (*model.Author, error)
	FindOrCreateGenre(ctx context.Context, name string) (*model.Genre, error)
	CreateBook(ctx context.Context, libraryID uuid.UUID, in BookInput) (*model.LibraryBook, error)
	UpdateBook(ctx context.Context, libraryID, bookID uuid.UUID, in BookPatch) (*model.LibraryBook, error)
	DeleteBook(ctx context.Context, libraryID, bookID uuid.UUID) (bookDeleted bool, err error)
	UpdateStock(ctx context.Context, libraryID, bookID uuid.UUID, total, available int) (*model.LibraryBook, error)
	ListLibraryBooks(ctx context.Context, libraryID uuid.UUID) ([]model.LibraryBook, error)
}

type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindOrCreateAuthor matches authors by exact name.
func (r *GormInventoryRepository) FindOrCreateAuthor(ctx context.Context, name string) (*model.Author, error) {
	name = strings.TrimSpace(name)
	return findOrCreate(r.db.WithContext(ctx), "name = ?", name, func() *model.Author {
		return &model.Author{Name: name}
	})
}

// FindOrCreateGenre matches genres by the slug derived from name. Names
// without a letter or digit have no slug and are rejected.
func (r *GormInventoryRepository) FindOrCreateGenre(ctx context.Context, name string) (*model.Genre, error) {
	name = strings.TrimSpace(name)
	s := slug.Make(name)
	if s == "" {
		return nil, ErrInvalidGenreName
	}
	return findOrCreate(r.db.WithContext(ctx), "slug = ?", s, func() *model.Genre {
		return &model.Genre{Name: name, Slug: s}
	})
}

func findOrCreate[T any](db *gorm.DB, where string, key any, build func() *T) (*T, error) {
	var err error

	for attempt := 0; attempt < findOrCreateAttempts; attempt++ {
		var found T
		err = db.Where(where, key).First(&found).Error
		if err == nil {
			return &found, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		created := build()
		err = db.Create(created).Error
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}

	return nil, err
}

// CreateBook inserts the book and the calling library's link with every
// copy available.
func (r *GormInventoryRepository) CreateBook(ctx context.Context, libraryID uuid.UUID, in BookInput) (*model.LibraryBook, error) {
	genre, err := r.FindOrCreateGenre(ctx, in.GenreName)
	if err != nil {
		return nil, err
	}

	book := model.Book{
		Slug:               slug.Unique(in.Title),
		Title:              strings.TrimSpace(in.Title),
		ISBN:               strings.TrimSpace(in.ISBN),
		Description:        in.Description,
		Publisher:          in.Publisher,
		PublishedYear:      in.PublishedYear,
		Language:           in.Language,
		TotalPages:         in.TotalPages,
		CoverImageURL:      in.CoverImageURL,
		RentalPricePerWeek: in.RentalPricePerWeek,
		DepositAmount:      in.DepositAmount,
		Condition:          in.Condition,
		GenreID:            genre.ID,
	}

	if strings.TrimSpace(in.AuthorName) != "" {
		author, err := r.FindOrCreateAuthor(ctx, in.AuthorName)
		if err != nil {
			return nil, err
		}
		book.AuthorID = &author.ID
	}

	link := model.LibraryBook{LibraryID: libraryID}
	if err := link.SetStock(in.TotalCopies, in.TotalCopies); err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&book).Error; err != nil {
			return err
		}

		link.BookID = book.ID
		return tx.Omit(clause.Associations).Create(&link).Error
	})
	if err != nil {
		return nil, err
	}

	return r.findLink(ctx, libraryID, book.ID)
}

// UpdateBook overwrites the supplied fields of a book the library carries.
// A new title re-derives the slug.
func (r *GormInventoryRepository) UpdateBook(ctx context.Context, libraryID, bookID uuid.UUID, in BookPatch) (*model.LibraryBook, error) {
	if _, err := r.findLink(ctx, libraryID, bookID); err != nil {
		return nil, err
	}

	updates := map[string]any{}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		updates["title"] = title
		updates["slug"] = slug.Unique(title)
	}
	if in.ISBN != nil {
		updates["isbn"] = strings.TrimSpace(*in.ISBN)
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Publisher != nil {
		updates["publisher"] = *in.Publisher
	}
	if in.PublishedYear != nil {
		updates["published_year"] = *in.PublishedYear
	}
	if in.Language != nil {
		updates["language"] = *in.Language
	}
	if in.TotalPages != nil {
		updates["total_pages"] = *in.TotalPages
	}
	if in.CoverImageURL != nil {
		updates["cover_image_url"] = *in.CoverImageURL
	}
	if in.RentalPricePerWeek != nil {
		updates["rental_price_per_week"] = *in.RentalPricePerWeek
	}
	if in.DepositAmount != nil {
		updates["deposit_amount"] = *in.DepositAmount
	}
	if in.Condition != nil {
		updates["condition"] = *in.Condition
	}
	if in.AuthorName != nil {
		if strings.TrimSpace(*in.AuthorName) == "" {
			updates["author_id"] = nil
		} else {
			author, err := r.FindOrCreateAuthor(ctx, *in.AuthorName)
			if err != nil {
				return nil, err
			}
			updates["author_id"] = author.ID
		}
	}
	if in.GenreName != nil {
		genre, err := r.FindOrCreateGenre(ctx, *in.GenreName)
		if err != nil {
			return nil, err
		}
		updates["genre_id"] = genre.ID
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&model.Book{}).
			Where("id = ?", bookID).
			Updates(updates).Error; err != nil {

			return nil, err
		}
	}

	return r.findLink(ctx, libraryID, bookID)
}

// DeleteBook drops the library's link. The book row goes too once no link
// and no rental references it.
func (r *GormInventoryRepository) DeleteBook(ctx context.Context, libraryID, bookID uuid.UUID) (bool, error) {
	db := r.db.WithContext(ctx)

	result := db.Delete(&model.LibraryBook{}, "library_id = ? AND book_id = ?", libraryID, bookID)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, ErrNotFound
	}

	var links int64
	if err := db.Model(&model.LibraryBook{}).Where("book_id = ?", bookID).Count(&links).Error; err != nil {
		return false, err
	}
	if links > 0 {
		return false, nil
	}

	var rentals int64
	if err := db.Model(&model.Rental{}).Where("book_id = ?", bookID).Count(&rentals).Error; err != nil {
		return false, err
	}
	if rentals > 0 {
		return false, nil
	}

	if err := db.Delete(&model.Book{}, "id = ?", bookID).Error; err != nil {
		if isForeignKeyViolation(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// UpdateStock writes both counters and isAvailable in one statement.
func (r *GormInventoryRepository) UpdateStock(ctx context.Context, libraryID, bookID uuid.UUID, total, available int) (*model.LibraryBook, error) {
	link, err := r.findLink(ctx, libraryID, bookID)
	if err != nil {
		return nil, err
	}

	if err := link.SetStock(total, available); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&model.LibraryBook{}).
		Where("library_id = ? AND book_id = ?", libraryID, bookID).
		Updates(map[string]any{
			"total_copies":     link.TotalCopies,
			"available_copies": link.AvailableCopies,
			"is_available":     link.IsAvailable,
		}).Error; err != nil {

		return nil, err
	}

	return link, nil
}

func (r *GormInventoryRepository) ListLibraryBooks(ctx context.Context, libraryID uuid.UUID) ([]model.LibraryBook, error) {
	var links []model.LibraryBook
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Book.Author").
		Preload("Book.Genre").
		Where("library_id = ?", libraryID).
		Order("updated_at DESC").
		Find(&links).Error; err != nil {

		return nil, err
	}
	return links, nil
}

func (r *GormInventoryRepository) findLink(ctx context.Context, libraryID, bookID uuid.UUID) (*model.LibraryBook, error) {
	var link model.LibraryBook
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Book.Author").
		Preload("Book.Genre").
		First(&link, "library_id = ? AND book_id = ?", libraryID, bookID).Error; err != nil {

		return nil, err
	}
	return &link, nil
}
