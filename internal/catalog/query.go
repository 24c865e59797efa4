package catalog

import (
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"    // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	tableBooks        = "books"
	tableAuthors      = "authors"
	tableGenres       = "genres"
	tableLibraryBooks = "library_books"
	tableLibraries    = "libraries"

	colBookID            = "books.id"
	colTitle             = "books.title"
	colISBN              = "books.isbn"
	colPrice             = "books.rental_price_per_week"
	colLanguage          = "books.language"
	colCondition         = "books.condition"
	colAverageRating     = "books.average_rating"
	colTotalRentals      = "books.total_rentals"
	colIsFeatured        = "books.is_featured"
	colCreatedAt         = "books.created_at"
	colBookAuthorID      = "books.author_id"
	colBookGenreID       = "books.genre_id"
	colAuthorID          = "authors.id"
	colGenreID           = "genres.id"
	colGenreName         = "genres.name"
	colGenreSlug         = "genres.slug"
	colLinkBookID        = "library_books.book_id"
	colLinkLibraryID     = "library_books.library_id"
	colLinkTotal         = "library_books.total_copies"
	colLinkAvailable     = "library_books.available_copies"
	colLibraryID         = "libraries.id"
	colLibraryCity       = "libraries.city"
	colLibraryPostalCode = "libraries.postal_code"

	aliasTotalCopies     = "total_copies"
	aliasAvailableCopies = "available_copies"
	aliasLibrariesCount  = "libraries_count"
	aliasMatched         = "matched"
	aliasTotal           = "total"
)

var ErrBuildingQueryFailed = errors.New("building catalog query failed")

// Query compiles Params into the page and count statements of one search.
// Both statements wrap the dataset returned by filtered, so they cannot
// disagree on which books match.
type Query struct {
	dialect goqu.DialectWrapper
	params  Params
}

func NewQuery(dialect string, params Params) Query {
	return Query{dialect: goqu.Dialect(dialect), params: params.normalized()}
}

func (q Query) Params() Params {
	return q.params
}

func sumOf(col string) exp.SQLFunctionExpression {
	return goqu.COALESCE(goqu.SUM(col), goqu.L("0"))
}

// filtered is the joined, filtered and grouped book set without any
// projection, ordering or paging.
func (q Query) filtered() *goqu.SelectDataset {
	ds := q.dialect.From(tableBooks).
		LeftJoin(goqu.T(tableAuthors), goqu.On(goqu.I(colAuthorID).Eq(goqu.I(colBookAuthorID)))).
		InnerJoin(goqu.T(tableGenres), goqu.On(goqu.I(colGenreID).Eq(goqu.I(colBookGenreID))))

	// With a location filter only links of matching libraries may count
	// towards the aggregates, so the link join becomes mandatory.
	if q.params.filtersLibraries() {
		ds = ds.
			InnerJoin(goqu.T(tableLibraryBooks), goqu.On(goqu.I(colLinkBookID).Eq(goqu.I(colBookID)))).
			InnerJoin(goqu.T(tableLibraries), goqu.On(goqu.I(colLibraryID).Eq(goqu.I(colLinkLibraryID))))
	} else {
		ds = ds.LeftJoin(goqu.T(tableLibraryBooks), goqu.On(goqu.I(colLinkBookID).Eq(goqu.I(colBookID))))
	}

	preds := q.params.Predicates()
	if len(preds) > 0 {
		exprs := make([]exp.Expression, 0, len(preds))
		for _, p := range preds {
			exprs = append(exprs, p.Expression())
		}
		ds = ds.Where(goqu.And(exprs...))
	}

	ds = ds.GroupBy(goqu.I(colBookID), goqu.I(colAuthorID), goqu.I(colGenreID))

	// availableNow depends on the SUM, so it filters groups, not rows.
	if q.params.AvailableNow {
		ds = ds.Having(sumOf(colLinkAvailable).Gt(0))
	}

	return ds
}

func (q Query) orderBy() []exp.OrderedExpression {
	switch q.params.SortBy {
	case SortAvailableNow:
		return []exp.OrderedExpression{goqu.C(aliasAvailableCopies).Desc()}
	case SortTopRated:
		return []exp.OrderedExpression{goqu.I(colAverageRating).Desc()}
	case SortNewArrivals:
		return []exp.OrderedExpression{goqu.I(colCreatedAt).Desc()}
	case SortPriceLow:
		return []exp.OrderedExpression{goqu.I(colPrice).Asc()}
	case SortPriceHigh:
		return []exp.OrderedExpression{goqu.I(colPrice).Desc()}
	case SortMostRented:
		return []exp.OrderedExpression{goqu.I(colTotalRentals).Desc()}
	default:
		if q.params.Search != "" {
			return []exp.OrderedExpression{goqu.I(colTotalRentals).Desc()}
		}
		return []exp.OrderedExpression{goqu.I(colIsFeatured).Desc(), goqu.I(colAverageRating).Desc()}
	}
}

var pageColumns = []any{
	goqu.I(colBookID),
	goqu.I("books.slug"),
	goqu.I(colTitle),
	goqu.I(colISBN),
	goqu.I("books.description"),
	goqu.I("books.publisher"),
	goqu.I("books.published_year"),
	goqu.I(colLanguage),
	goqu.I("books.total_pages"),
	goqu.I("books.cover_image_url"),
	goqu.I(colPrice),
	goqu.I("books.deposit_amount"),
	goqu.I(colCondition),
	goqu.I(colAverageRating),
	goqu.I("books.total_ratings"),
	goqu.I(colTotalRentals),
	goqu.I(colIsFeatured),
	goqu.I(colCreatedAt),
	goqu.I(colAuthorID).As("author_id"),
	goqu.I("authors.name").As("author_name"),
	goqu.I("authors.image_url").As("author_image_url"),
	goqu.I(colGenreID).As("genre_id"),
	goqu.I(colGenreName).As("genre_name"),
	goqu.I(colGenreSlug).As("genre_slug"),
	sumOf(colLinkTotal).As(aliasTotalCopies),
	sumOf(colLinkAvailable).As(aliasAvailableCopies),
	goqu.COUNT(goqu.DISTINCT(colLinkLibraryID)).As(aliasLibrariesCount),
}

// PageSQL renders the statement returning one page of aggregated rows.
func (q Query) PageSQL() (string, []any, error) {
	ds := q.filtered().
		Select(pageColumns...).
		Order(q.orderBy()...).
		Limit(uint(q.params.Limit)).
		Offset(q.params.offset()).
		Prepared(true)

	sql, args, err := ds.ToSQL()
	if err != nil {
		return "", nil, errors.Join(ErrBuildingQueryFailed, err)
	}
	return sql, args, nil
}

// CountSQL renders the statement counting every group the page query can
// return, HAVING included.
func (q Query) CountSQL() (string, []any, error) {
	inner := q.filtered().Select(goqu.I(colBookID))

	ds := q.dialect.From(inner.As(aliasMatched)).
		Select(goqu.COUNT(goqu.Star()).As(aliasTotal)).
		Prepared(true)

	sql, args, err := ds.ToSQL()
	if err != nil {
		return "", nil, errors.Join(ErrBuildingQueryFailed, err)
	}
	return sql, args, nil
}
