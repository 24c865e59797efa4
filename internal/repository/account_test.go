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

func TestGormUserRepository_CreateAndFind(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewGormUserRepository(database)
	ctx := context.Background()

	user := &model.User{Name: "Ada", Email: "  Ada@Example.com ", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.Equal(t, "ada@example.com", user.Email)

	found, err := repo.FindByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	err = repo.Create(ctx, &model.User{Name: "Imposter", Email: "ada@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormUserRepository_UpdateAndDeposit(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewGormUserRepository(database)
	user := testutil.SeedUser(t, database, "reader@example.com", 100)
	ctx := context.Background()

	phone := " 555-0100 "
	updated, err := repo.Update(ctx, user.ID, UserUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-0100", updated.Phone)
	assert.Equal(t, user.Name, updated.Name)

	topped, err := repo.Deposit(ctx, user.ID, 250.5)
	require.NoError(t, err)
	assert.InDelta(t, 350.5, topped.DepositBalance, 0.001)

	_, err = repo.Deposit(ctx, uuid.New(), 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormLibraryRepository_SlugCollisionGetsTimestamp(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewGormLibraryRepository(database)
	fixed := time.Unix(1767225600, 0)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	first := &model.Library{Name: "City Central Library", Email: "one@libraries.test", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, "city-central-library", first.Slug)

	second := &model.Library{Name: "City Central  Library", Email: "two@libraries.test", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, "city-central-library-1767225600", second.Slug)

	found, err := repo.FindBySlug(ctx, second.Slug)
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
}

func TestGormLibraryRepository_DuplicateEmail(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewGormLibraryRepository(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Library{Name: "One", Email: "desk@libraries.test", PasswordHash: "x"}))

	err := repo.Create(ctx, &model.Library{Name: "Two", Email: "DESK@libraries.test", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestGormLibraryRepository_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewGormLibraryRepository(database)
	library := testutil.SeedLibrary(t, database, "Old Name", "Pune", "411001")
	ctx := context.Background()

	name, opening := "New Name", "09:00"
	updated, err := repo.Update(ctx, library.ID, LibraryUpdate{Name: &name, OpeningTime: &opening})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "09:00", updated.OpeningTime)
	assert.Equal(t, library.Slug, updated.Slug)
	assert.Equal(t, "Pune", updated.City)

	_, err = repo.Update(ctx, uuid.New(), LibraryUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormBookRepository_FindBySlug(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewGormBookRepository(database)
	genre := testutil.SeedGenre(t, database, "Fiction")
	author := testutil.SeedAuthor(t, database, "Author")
	libA := testutil.SeedLibrary(t, database, "A", "Pune", "411001")
	libB := testutil.SeedLibrary(t, database, "B", "Pune", "411002")
	ctx := context.Background()

	book := testutil.SeedBook(t, database, testutil.BookSeed{Title: "Detail", Genre: genre, Author: &author})
	testutil.SeedStock(t, database, libA, book, 2, 0)
	testutil.SeedStock(t, database, libB, book, 4, 3)

	found, err := repo.FindBySlug(ctx, book.Slug)
	require.NoError(t, err)

	require.NotNil(t, found.Author)
	assert.Equal(t, "Author", found.Author.Name)
	assert.Equal(t, "Fiction", found.Genre.Name)
	require.Len(t, found.LibraryBooks, 2)
	assert.Equal(t, "B", found.LibraryBooks[0].Library.Name, "most available first")

	byID, err := repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.Slug, byID.Slug)

	_, err = repo.FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	testutil.SeedGenre(t, database, "Biography")
	genres, err := repo.ListGenres(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Biography", genres[0].Name)
}
