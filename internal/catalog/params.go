package catalog

import (
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/snnyvrz/shelfshare/internal/model"
)

const (
	DefaultLimit = 12
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit far from overflow.
	MaxPage = 100000
)

type SortBy string

const (
	SortRelevance    SortBy = "relevance"
	SortAvailableNow SortBy = "available_now"
	SortTopRated     SortBy = "top_rated"
	SortNewArrivals  SortBy = "new_arrivals"
	SortPriceLow     SortBy = "price_low"
	SortPriceHigh    SortBy = "price_high"
	SortMostRented   SortBy = "most_rented"
)

// ParseSortBy falls back to relevance for anything it does not know.
func ParseSortBy(s string) SortBy {
	switch v := SortBy(strings.ToLower(strings.TrimSpace(s))); v {
	case SortAvailableNow, SortTopRated, SortNewArrivals, SortPriceLow, SortPriceHigh, SortMostRented:
		return v
	default:
		return SortRelevance
	}
}

// Params is the already-validated input of a catalog search. Numeric
// validation happens at the HTTP boundary; Search only clamps page and limit.
type Params struct {
	Search       string
	MinPrice     *float64
	MaxPrice     *float64
	Genres       []string
	Languages    []string
	Conditions   []string
	Location     string
	Pincode      string
	City         string
	AvailableNow bool
	SortBy       SortBy
	Page         int
	Limit        int
}

func (p Params) normalized() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	p.SortBy = ParseSortBy(string(p.SortBy))
	p.Search = strings.TrimSpace(p.Search)
	return p
}

func (p Params) offset() uint {
	return uint((p.Page - 1) * p.Limit)
}

// cityFilter returns the city substring to match; location is an alias of
// city that only applies when city itself is empty.
func (p Params) cityFilter() string {
	if c := strings.TrimSpace(p.City); c != "" {
		return c
	}
	return strings.TrimSpace(p.Location)
}

func (p Params) filtersLibraries() bool {
	return strings.TrimSpace(p.Pincode) != "" || p.cityFilter() != ""
}

// Predicate is one typed WHERE condition of a catalog search.
type Predicate interface {
	Expression() exp.Expression
}

type searchPredicate struct{ term string }

func (s searchPredicate) Expression() exp.Expression {
	pattern := "%" + strings.ToLower(s.term) + "%"
	return goqu.Or(
		goqu.Func("LOWER", goqu.I(colTitle)).Like(pattern),
		goqu.Func("LOWER", goqu.I(colISBN)).Like(pattern),
	)
}

type minPricePredicate struct{ min float64 }

func (m minPricePredicate) Expression() exp.Expression {
	return goqu.I(colPrice).Gte(m.min)
}

type maxPricePredicate struct{ max float64 }

func (m maxPricePredicate) Expression() exp.Expression {
	return goqu.I(colPrice).Lte(m.max)
}

// genrePredicate matches when the genre's name OR its slug is listed.
type genrePredicate struct{ values []string }

func (g genrePredicate) Expression() exp.Expression {
	return goqu.Or(
		goqu.I(colGenreName).In(g.values),
		goqu.I(colGenreSlug).In(g.values),
	)
}

type languagePredicate struct{ values []string }

func (l languagePredicate) Expression() exp.Expression {
	return goqu.I(colLanguage).In(l.values)
}

type conditionPredicate struct{ values []string }

func (c conditionPredicate) Expression() exp.Expression {
	return goqu.I(colCondition).In(c.values)
}

type pincodePredicate struct{ code string }

func (p pincodePredicate) Expression() exp.Expression {
	return goqu.I(colLibraryPostalCode).Eq(p.code)
}

type cityPredicate struct{ city string }

func (c cityPredicate) Expression() exp.Expression {
	return goqu.Func("LOWER", goqu.I(colLibraryCity)).Like("%" + strings.ToLower(c.city) + "%")
}

// Predicates is the single source of WHERE conditions for both the page
// query and the count query.
func (p Params) Predicates() []Predicate {
	preds := make([]Predicate, 0, 8)

	if p.Search != "" {
		preds = append(preds, searchPredicate{term: p.Search})
	}
	if p.MinPrice != nil {
		preds = append(preds, minPricePredicate{min: *p.MinPrice})
	}
	if p.MaxPrice != nil {
		preds = append(preds, maxPricePredicate{max: *p.MaxPrice})
	}
	if genres := compact(p.Genres, strings.TrimSpace); len(genres) > 0 {
		preds = append(preds, genrePredicate{values: genres})
	}
	if languages := compact(p.Languages, strings.TrimSpace); len(languages) > 0 {
		preds = append(preds, languagePredicate{values: languages})
	}
	if conditions := compact(p.Conditions, normalizeCondition); len(conditions) > 0 {
		preds = append(preds, conditionPredicate{values: conditions})
	}

	if pin := strings.TrimSpace(p.Pincode); pin != "" {
		preds = append(preds, pincodePredicate{code: pin})
	} else if city := p.cityFilter(); city != "" {
		preds = append(preds, cityPredicate{city: city})
	}

	return preds
}

func normalizeCondition(s string) string {
	return string(model.NormalizeCondition(s))
}

// compact applies fn to every element and drops the ones that end up empty.
func compact(values []string, fn func(string) string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = fn(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
