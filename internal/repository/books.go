package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/model"
	"gorm.io/gorm"
)

// BookRepository is the public read side of the catalog. Searching lives in
// the catalog package.
type BookRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	FindBySlug(ctx context.Context, slug string) (*model.Book, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genre").
		First(&book, "id = ?", id).Error; err != nil {

		return nil, err
	}
	return &book, nil
}

// FindBySlug loads a book with every library link and the library behind it.
func (r *GormBookRepository) FindBySlug(ctx context.Context, slug string) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genre").
		Preload("LibraryBooks", func(db *gorm.DB) *gorm.DB {
			return db.Order("available_copies DESC")
		}).
		Preload("LibraryBooks.Library").
		First(&book, "slug = ?", slug).Error; err != nil {

		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) ListGenres(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&genres).Error; err != nil {

		return nil, err
	}
	return genres, nil
}
