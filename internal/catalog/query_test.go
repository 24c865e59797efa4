package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// filterClauses returns the FROM..HAVING part of the page statement and the
// same part of the count statement's subquery.
func filterClauses(t *testing.T, pageSQL, countSQL string) (string, string) {
	t.Helper()

	from := strings.Index(pageSQL, " FROM ")
	order := strings.Index(pageSQL, " ORDER BY ")
	require.True(t, from > 0 && order > from, "unexpected page sql: %s", pageSQL)

	sub := strings.Index(countSQL, "(SELECT ")
	require.True(t, sub > 0, "unexpected count sql: %s", countSQL)
	inner := countSQL[sub:]
	innerFrom := strings.Index(inner, " FROM ")
	innerEnd := strings.LastIndex(inner, ") AS ")
	require.True(t, innerFrom > 0 && innerEnd > innerFrom, "unexpected count sql: %s", countSQL)

	return pageSQL[from:order], inner[innerFrom:innerEnd]
}

func TestQuery_CountAndPageShareFilter(t *testing.T) {
	params := Params{
		Search:       "tolkien",
		MinPrice:     ptr(5.0),
		MaxPrice:     ptr(50.0),
		Genres:       []string{"fiction", "Fantasy"},
		Languages:    []string{"English"},
		Conditions:   []string{"Like New"},
		City:         "Bangalore",
		AvailableNow: true,
		SortBy:       SortPriceLow,
		Page:         2,
		Limit:        10,
	}

	for _, dialect := range []string{"postgres", "sqlite3", "mysql"} {
		t.Run(dialect, func(t *testing.T) {
			q := NewQuery(dialect, params)

			pageSQL, pageArgs, err := q.PageSQL()
			require.NoError(t, err)
			countSQL, countArgs, err := q.CountSQL()
			require.NoError(t, err)

			pageFilter, countFilter := filterClauses(t, pageSQL, countSQL)
			assert.Equal(t, pageFilter, countFilter)
			assert.Contains(t, pageFilter, "HAVING")

			require.Len(t, pageArgs, len(countArgs)+2, "page adds only limit and offset")
			assert.Equal(t, countArgs, pageArgs[:len(countArgs)])
			assert.EqualValues(t, 10, pageArgs[len(pageArgs)-2])
			assert.EqualValues(t, 10, pageArgs[len(pageArgs)-1])
		})
	}
}

func TestQuery_AvailableNowIsHavingNotWhere(t *testing.T) {
	q := NewQuery("postgres", Params{AvailableNow: true})

	pageSQL, _, err := q.PageSQL()
	require.NoError(t, err)

	assert.NotContains(t, pageSQL, "WHERE")
	assert.Contains(t, pageSQL, "HAVING")
	assert.Contains(t, pageSQL, `COALESCE(SUM("library_books"."available_copies"), 0) > $1`)
}

func TestQuery_LocationJoinsLibraries(t *testing.T) {
	plain, _, err := NewQuery("postgres", Params{}).PageSQL()
	require.NoError(t, err)
	assert.NotContains(t, plain, `"libraries"`)
	assert.Contains(t, plain, `LEFT JOIN "library_books"`)

	located, args, err := NewQuery("postgres", Params{Pincode: "560001", City: "Mumbai"}).PageSQL()
	require.NoError(t, err)
	assert.Contains(t, located, `INNER JOIN "libraries"`)
	assert.Contains(t, located, `"libraries"."postal_code" = $1`)
	assert.NotContains(t, located, `"libraries"."city"`, "pincode wins over city")
	assert.Equal(t, "560001", args[0])
}

func TestQuery_ConditionsAreNormalized(t *testing.T) {
	_, args, err := NewQuery("postgres", Params{Conditions: []string{"Like New", " GOOD", ""}}).CountSQL()
	require.NoError(t, err)

	assert.Equal(t, []any{"like_new", "good"}, args)
}

func TestQuery_OrderBy(t *testing.T) {
	cases := []struct {
		name   string
		params Params
		want   string
	}{
		{"available_now", Params{SortBy: SortAvailableNow}, `ORDER BY "available_copies" DESC`},
		{"top_rated", Params{SortBy: SortTopRated}, `ORDER BY "books"."average_rating" DESC`},
		{"new_arrivals", Params{SortBy: SortNewArrivals}, `ORDER BY "books"."created_at" DESC`},
		{"price_low", Params{SortBy: SortPriceLow}, `ORDER BY "books"."rental_price_per_week" ASC`},
		{"price_high", Params{SortBy: SortPriceHigh}, `ORDER BY "books"."rental_price_per_week" DESC`},
		{"most_rented", Params{SortBy: SortMostRented}, `ORDER BY "books"."total_rentals" DESC`},
		{"relevance with search", Params{Search: "x"}, `ORDER BY "books"."total_rentals" DESC`},
		{"relevance", Params{}, `ORDER BY "books"."is_featured" DESC, "books"."average_rating" DESC`},
		{"unknown falls back", Params{SortBy: "cheapest"}, `ORDER BY "books"."is_featured" DESC, "books"."average_rating" DESC`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql, _, err := NewQuery("postgres", tc.params).PageSQL()
			require.NoError(t, err)
			assert.Contains(t, sql, tc.want)
		})
	}
}

func TestParams_Normalized(t *testing.T) {
	p := Params{Page: 0, Limit: 0}.normalized()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, SortRelevance, p.SortBy)

	p = Params{Page: 3, Limit: 1000, SortBy: "PRICE_LOW"}.normalized()
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, SortPriceLow, p.SortBy)
	assert.Equal(t, uint(2*MaxLimit), p.offset())

	p = Params{Page: 1 << 62, Limit: 4}.normalized()
	assert.Equal(t, MaxPage, p.Page)
	assert.Equal(t, uint((MaxPage-1)*4), p.offset())
}

func TestNewPagination(t *testing.T) {
	cases := []struct {
		page, limit int
		total       int64
		totalPages  int64
		hasMore     bool
	}{
		{1, 10, 0, 0, false},
		{1, 10, 10, 1, false},
		{1, 10, 11, 2, true},
		{2, 10, 11, 2, false},
		{2, 2, 5, 3, true},
		{3, 2, 5, 3, false},
		{4, 2, 5, 3, false},
		{1 << 62, 4, 3, 1, false},
		{1, 0, 3, 0, false},
	}

	for _, tc := range cases {
		p := NewPagination(tc.page, tc.limit, tc.total)
		assert.Equal(t, tc.totalPages, p.TotalPages, "%+v", tc)
		assert.Equal(t, tc.hasMore, p.HasMore, "%+v", tc)
		assert.Equal(t, tc.total, p.TotalBooks)
	}
}
