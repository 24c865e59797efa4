package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/testutil"
)

func TestGormRentalRepository_Create(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewGormRentalRepository(database)
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	genre := testutil.SeedGenre(t, database, "Fiction")
	library := testutil.SeedLibrary(t, database, "A", "Pune", "411001")
	user := testutil.SeedUser(t, database, "reader@example.com", 500)
	book := testutil.SeedBook(t, database, testutil.BookSeed{Title: "Rentable", Genre: genre, Price: 30, Deposit: 200})
	testutil.SeedStock(t, database, library, book, 2, 1)

	rental, err := repo.Create(context.Background(), user.ID, RentalInput{BookID: book.ID, LibraryID: library.ID, Weeks: 2})
	require.NoError(t, err)

	assert.Equal(t, 60.0, rental.RentAmount)
	assert.Equal(t, 200.0, rental.DepositAmount)
	assert.Equal(t, model.RentalActive, rental.Status)
	assert.Equal(t, fixed.Add(14*24*time.Hour), rental.DueAt)

	var storedUser model.User
	require.NoError(t, database.First(&storedUser, "id = ?", user.ID).Error)
	assert.Equal(t, 300.0, storedUser.DepositBalance)

	var link model.LibraryBook
	require.NoError(t, database.First(&link, "library_id = ? AND book_id = ?", library.ID, book.ID).Error)
	assert.Equal(t, 0, link.AvailableCopies)
	assert.Equal(t, 2, link.TotalCopies)
	assert.False(t, link.IsAvailable)

	var storedBook model.Book
	require.NoError(t, database.First(&storedBook, "id = ?", book.ID).Error)
	assert.Equal(t, 1, storedBook.TotalRentals)
}

func TestGormRentalRepository_Create_Gates(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewGormRentalRepository(database)
	ctx := context.Background()

	genre := testutil.SeedGenre(t, database, "Fiction")
	library := testutil.SeedLibrary(t, database, "A", "Pune", "411001")
	rich := testutil.SeedUser(t, database, "rich@example.com", 1000)
	poor := testutil.SeedUser(t, database, "poor@example.com", 50)

	inStock := testutil.SeedBook(t, database, testutil.BookSeed{Title: "In", Genre: genre, Deposit: 100})
	testutil.SeedStock(t, database, library, inStock, 1, 1)
	soldOut := testutil.SeedBook(t, database, testutil.BookSeed{Title: "Out", Genre: genre, Deposit: 100})
	testutil.SeedStock(t, database, library, soldOut, 1, 0)

	tests := []struct {
		name    string
		user    uuid.UUID
		book    uuid.UUID
		library uuid.UUID
		wantErr error
	}{
		{"insufficient deposit", poor.ID, inStock.ID, library.ID, ErrInsufficientDeposit},
		{"out of stock", rich.ID, soldOut.ID, library.ID, ErrOutOfStock},
		{"unknown book", rich.ID, uuid.New(), library.ID, ErrNotFound},
		{"not carried by library", rich.ID, inStock.ID, uuid.New(), ErrNotFound},
		{"unknown user", uuid.New(), inStock.ID, library.ID, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(ctx, tt.user, RentalInput{BookID: tt.book, LibraryID: tt.library, Weeks: 1})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	var storedRich model.User
	require.NoError(t, database.First(&storedRich, "id = ?", rich.ID).Error)
	assert.Equal(t, 1000.0, storedRich.DepositBalance, "failed rentals roll back the hold")

	var rentals int64
	require.NoError(t, database.Model(&model.Rental{}).Count(&rentals).Error)
	assert.EqualValues(t, 0, rentals)
}

func TestGormRentalRepository_ListByUser(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewGormRentalRepository(database)
	ctx := context.Background()

	genre := testutil.SeedGenre(t, database, "Fiction")
	library := testutil.SeedLibrary(t, database, "A", "Pune", "411001")
	user := testutil.SeedUser(t, database, "reader@example.com", 0)
	other := testutil.SeedUser(t, database, "other@example.com", 0)
	book := testutil.SeedBook(t, database, testutil.BookSeed{Title: "Free", Genre: genre})
	testutil.SeedStock(t, database, library, book, 3, 3)

	for _, id := range []uuid.UUID{user.ID, user.ID, other.ID} {
		_, err := repo.Create(ctx, id, RentalInput{BookID: book.ID, LibraryID: library.ID, Weeks: 1})
		require.NoError(t, err)
	}

	rentals, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, rentals, 2)
	assert.Equal(t, "Free", rentals[0].Book.Title)
	assert.Equal(t, "A", rentals[0].Library.Name)
}
