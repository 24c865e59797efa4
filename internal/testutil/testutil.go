// Package testutil provides in-memory databases and seed helpers for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/db"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/slug"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB opens a private in-memory SQLite database with every table
// migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	database, err := gorm.Open(sqlite.Open(dsn), db.Options())
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func SeedAuthor(t *testing.T, database *gorm.DB, name string) model.Author {
	t.Helper()

	author := model.Author{Name: name}
	if err := database.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", name, err)
	}

	return author
}

func SeedGenre(t *testing.T, database *gorm.DB, name string) model.Genre {
	t.Helper()

	genre := model.Genre{Name: name, Slug: slug.Make(name)}
	if err := database.Create(&genre).Error; err != nil {
		t.Fatalf("failed to seed genre %q: %v", name, err)
	}

	return genre
}

func SeedUser(t *testing.T, database *gorm.DB, email string, balance float64) model.User {
	t.Helper()

	user := model.User{
		Name:           "Reader " + email,
		Email:          email,
		PasswordHash:   "x",
		DepositBalance: balance,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user %q: %v", email, err)
	}

	return user
}

func SeedLibrary(t *testing.T, database *gorm.DB, name, city, postalCode string) model.Library {
	t.Helper()

	library := model.Library{
		Name:         name,
		Slug:         slug.Make(name),
		Email:        slug.Make(name) + "@libraries.test",
		PasswordHash: "x",
		City:         city,
		PostalCode:   postalCode,
	}
	if err := database.Create(&library).Error; err != nil {
		t.Fatalf("failed to seed library %q: %v", name, err)
	}

	return library
}

// BookSeed describes a book row for SeedBook; zero values get defaults.
type BookSeed struct {
	Title         string
	ISBN          string
	Language      string
	Condition     model.Condition
	Price         float64
	Deposit       float64
	AverageRating float64
	TotalRentals  int
	IsFeatured    bool
	CreatedAt     time.Time
	Author        *model.Author
	Genre         model.Genre
}

func SeedBook(t *testing.T, database *gorm.DB, s BookSeed) model.Book {
	t.Helper()

	if s.Language == "" {
		s.Language = "English"
	}
	if s.Condition == "" {
		s.Condition = model.ConditionGood
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	book := model.Book{
		Slug:               slug.Unique(s.Title),
		Title:              s.Title,
		ISBN:               s.ISBN,
		Language:           s.Language,
		Condition:          s.Condition,
		RentalPricePerWeek: s.Price,
		DepositAmount:      s.Deposit,
		AverageRating:      s.AverageRating,
		TotalRentals:       s.TotalRentals,
		IsFeatured:         s.IsFeatured,
		GenreID:            s.Genre.ID,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.CreatedAt,
	}
	if s.Author != nil {
		book.AuthorID = &s.Author.ID
	}

	if err := database.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", s.Title, err)
	}

	return book
}

func SeedStock(t *testing.T, database *gorm.DB, library model.Library, book model.Book, total, available int) model.LibraryBook {
	t.Helper()

	link := model.LibraryBook{LibraryID: library.ID, BookID: book.ID}
	if err := link.SetStock(total, available); err != nil {
		t.Fatalf("invalid stock seed: %v", err)
	}
	if err := database.Create(&link).Error; err != nil {
		t.Fatalf("failed to seed stock for %q: %v", book.Title, err)
	}

	return link
}
