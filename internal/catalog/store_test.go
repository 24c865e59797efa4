package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare/internal/db"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/testutil"
)

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	database := testutil.NewTestDB(t)
	sqlDB, err := database.DB()
	require.NoError(t, err)

	return NewStore(sqlx.NewDb(sqlDB, "sqlite3"), db.DialectName(database)), database
}

func titles(books []Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestStore_Search_PriceLowOrdersAscending(t *testing.T) {
	store, database := newTestStore(t)
	genre := testutil.SeedGenre(t, database, "Fiction")

	for _, price := range []float64{30, 10, 20} {
		testutil.SeedBook(t, database, testutil.BookSeed{
			Title: fmt.Sprintf("Book %.0f", price),
			Price: price,
			Genre: genre,
		})
	}

	page, err := store.Search(context.Background(), Params{SortBy: SortPriceLow})
	require.NoError(t, err)

	require.Len(t, page.Books, 3)
	assert.Equal(t, 10.0, page.Books[0].RentalPricePerWeek)
	assert.Equal(t, 20.0, page.Books[1].RentalPricePerWeek)
	assert.Equal(t, 30.0, page.Books[2].RentalPricePerWeek)
}

func TestStore_Search_GenreMatchesNameOrSlug(t *testing.T) {
	store, database := newTestStore(t)
	fiction := testutil.SeedGenre(t, database, "Fiction")
	scifi := testutil.SeedGenre(t, database, "Science Fiction")
	history := testutil.SeedGenre(t, database, "History")

	testutil.SeedBook(t, database, testutil.BookSeed{Title: "Novel", Genre: fiction})
	testutil.SeedBook(t, database, testutil.BookSeed{Title: "Dune", Genre: scifi})
	testutil.SeedBook(t, database, testutil.BookSeed{Title: "SPQR", Genre: history})

	ctx := context.Background()

	page, err := store.Search(ctx, Params{Genres: []string{"fiction"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Novel"}, titles(page.Books))
	assert.Equal(t, "fiction", page.Books[0].Genre.Slug)
	assert.Equal(t, "Fiction", page.Books[0].Genre.Name)

	page, err = store.Search(ctx, Params{Genres: []string{"Fiction", "science-fiction"}, SortBy: SortPriceLow})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Novel", "Dune"}, titles(page.Books))
	assert.EqualValues(t, 2, page.Pagination.TotalBooks)
}

func TestStore_Search_AvailableNowSumsAcrossLibraries(t *testing.T) {
	store, database := newTestStore(t)
	genre := testutil.SeedGenre(t, database, "Fiction")
	libA := testutil.SeedLibrary(t, database, "Library A", "Bangalore", "560001")
	libB := testutil.SeedLibrary(t, database, "Library B", "Mumbai", "400001")

	book := testutil.SeedBook(t, database, testutil.BookSeed{Title: "Shared", Genre: genre})
	testutil.SeedStock(t, database, libA, book, 5, 3)
	testutil.SeedStock(t, database, libB, book, 2, 0)

	gone := testutil.SeedBook(t, database, testutil.BookSeed{Title: "Gone", Genre: genre})
	testutil.SeedStock(t, database, libB, gone, 1, 0)

	ctx := context.Background()

	page, err := store.Search(ctx, Params{AvailableNow: true})
	require.NoError(t, err)
	require.Equal(t, []string{"Shared"}, titles(page.Books))
	assert.EqualValues(t, 3, page.Books[0].AvailableCopies)
	assert.EqualValues(t, 7, page.Books[0].TotalCopies)
	assert.EqualValues(t, 2, page.Books[0].LibrariesCount)
	assert.EqualValues(t, 1, page.Pagination.TotalBooks, "count applies the same HAVING")

	page, err = store.Search(ctx, Params{Pincode: "400001"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Shared", "Gone"}, titles(page.Books))
	for _, b := range page.Books {
		assert.EqualValues(t, 0, b.AvailableCopies, "only links of the matching library count")
		assert.EqualValues(t, 1, b.LibrariesCount)
	}

	page, err = store.Search(ctx, Params{Pincode: "400001", AvailableNow: true})
	require.NoError(t, err)
	assert.Empty(t, page.Books)
	assert.EqualValues(t, 0, page.Pagination.TotalBooks)
}

func TestStore_Search_CityIsCaseInsensitiveSubstring(t *testing.T) {
	store, database := newTestStore(t)
	genre := testutil.SeedGenre(t, database, "Fiction")
	blr := testutil.SeedLibrary(t, database, "City Central", "Bangalore", "560001")
	bom := testutil.SeedLibrary(t, database, "Harbour Reads", "Mumbai", "400001")

	a := testutil.SeedBook(t, database, testutil.BookSeed{Title: "South", Genre: genre})
	b := testutil.SeedBook(t, database, testutil.BookSeed{Title: "West", Genre: genre})
	testutil.SeedBook(t, database, testutil.BookSeed{Title: "Nowhere", Genre: genre})
	testutil.SeedStock(t, database, blr, a, 1, 1)
	testutil.SeedStock(t, database, bom, b, 1, 1)

	ctx := context.Background()

	page, err := store.Search(ctx, Params{City: "bANG"})
	require.NoError(t, err)
	assert.Equal(t, []string{"South"}, titles(page.Books))

	page, err = store.Search(ctx, Params{Location: "mum"})
	require.NoError(t, err)
	assert.Equal(t, []string{"West"}, titles(page.Books))
}

func TestStore_Search_TextLanguageAndCondition(t *testing.T) {
	store, database := newTestStore(t)
	genre := testutil.SeedGenre(t, database, "Fiction")
	author := testutil.SeedAuthor(t, database, "J.R.R. Tolkien")

	testutil.SeedBook(t, database, testutil.BookSeed{Title: "The Hobbit", ISBN: "9780261103344", Genre: genre, Author: &author, Condition: model.ConditionLikeNew})
	testutil.SeedBook(t, database, testutil.BookSeed{Title: "Der Prozess", ISBN: "9783596294312", Language: "German", Genre: genre})

	ctx := context.Background()

	page, err := store.Search(ctx, Params{Search: "HOBBIT"})
	require.NoError(t, err)
	require.Equal(t, []string{"The Hobbit"}, titles(page.Books))
	require.NotNil(t, page.Books[0].Author)
	assert.Equal(t, "J.R.R. Tolkien", page.Books[0].Author.Name)

	page, err = store.Search(ctx, Params{Search: "3596"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Der Prozess"}, titles(page.Books))
	assert.Nil(t, page.Books[0].Author)

	page, err = store.Search(ctx, Params{Languages: []string{"German"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Der Prozess"}, titles(page.Books))

	page, err = store.Search(ctx, Params{Conditions: []string{"Like New"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"The Hobbit"}, titles(page.Books))
}

func TestStore_Search_PriceBoundsAreInclusive(t *testing.T) {
	store, database := newTestStore(t)
	genre := testutil.SeedGenre(t, database, "Fiction")

	for i, price := range []float64{5, 10, 15, 20} {
		testutil.SeedBook(t, database, testutil.BookSeed{Title: string(rune('A' + i)), Price: price, Genre: genre})
	}

	page, err := store.Search(context.Background(), Params{MinPrice: ptr(10.0), MaxPrice: ptr(15.0), SortBy: SortPriceLow})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, titles(page.Books))
}

func TestStore_Search_Pagination(t *testing.T) {
	store, database := newTestStore(t)
	genre := testutil.SeedGenre(t, database, "Fiction")

	for i := 1; i <= 5; i++ {
		testutil.SeedBook(t, database, testutil.BookSeed{Title: string(rune('A' + i - 1)), Price: float64(i), Genre: genre})
	}

	ctx := context.Background()

	page, err := store.Search(ctx, Params{SortBy: SortPriceLow, Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, titles(page.Books))
	assert.Equal(t, Pagination{Page: 2, Limit: 2, TotalBooks: 5, TotalPages: 3, HasMore: true}, page.Pagination)

	page, err = store.Search(ctx, Params{SortBy: SortPriceLow, Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, titles(page.Books))
	assert.False(t, page.Pagination.HasMore)

	page, err = store.Search(ctx, Params{SortBy: SortPriceLow, Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Books)
	assert.EqualValues(t, 5, page.Pagination.TotalBooks)
}

func TestStore_Search_SortOrders(t *testing.T) {
	store, database := newTestStore(t)
	genre := testutil.SeedGenre(t, database, "Fiction")
	lib := testutil.SeedLibrary(t, database, "Main", "Pune", "411001")
	now := time.Now()

	old := testutil.SeedBook(t, database, testutil.BookSeed{Title: "Old", Genre: genre, AverageRating: 4.8, TotalRentals: 1, CreatedAt: now.Add(-48 * time.Hour)})
	popular := testutil.SeedBook(t, database, testutil.BookSeed{Title: "Popular", Genre: genre, AverageRating: 3.1, TotalRentals: 90, CreatedAt: now.Add(-24 * time.Hour)})
	featured := testutil.SeedBook(t, database, testutil.BookSeed{Title: "Featured", Genre: genre, AverageRating: 2.0, IsFeatured: true, CreatedAt: now})

	testutil.SeedStock(t, database, lib, old, 4, 1)
	testutil.SeedStock(t, database, lib, popular, 9, 9)
	testutil.SeedStock(t, database, lib, featured, 3, 2)

	cases := map[SortBy][]string{
		SortTopRated:     {"Old", "Popular", "Featured"},
		SortMostRented:   {"Popular", "Old", "Featured"},
		SortNewArrivals:  {"Featured", "Popular", "Old"},
		SortAvailableNow: {"Popular", "Featured", "Old"},
		SortRelevance:    {"Featured", "Old", "Popular"},
		"nonsense":       {"Featured", "Old", "Popular"},
	}

	for sortBy, want := range cases {
		page, err := store.Search(context.Background(), Params{SortBy: sortBy})
		require.NoError(t, err)
		assert.Equal(t, want, titles(page.Books), "sortBy=%s", sortBy)
	}
}
