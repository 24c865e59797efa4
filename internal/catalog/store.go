package catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	logMsgQueryFailed    = "catalog query failed"
	logMsgQueryCompleted = "catalog query completed"
	logAttrError         = "error"
	logAttrQuery         = "query"
	logAttrDurationMS    = "duration_ms"
	logAttrTotal         = "total"
)

var ErrQueryFailed = errors.New("catalog query execution failed")

// Logger is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type AuthorSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"imageUrl"`
}

type GenreSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// Book is one aggregated catalog row.
type Book struct {
	ID                 uuid.UUID      `json:"id"`
	Slug               string         `json:"slug"`
	Title              string         `json:"title"`
	ISBN               string         `json:"isbn"`
	Description        string         `json:"description"`
	Publisher          string         `json:"publisher"`
	PublishedYear      int            `json:"publishedYear"`
	Language           string         `json:"language"`
	TotalPages         int            `json:"totalPages"`
	CoverImageURL      string         `json:"coverImageUrl"`
	RentalPricePerWeek float64        `json:"rentalPricePerWeek"`
	DepositAmount      float64        `json:"depositAmount"`
	Condition          string         `json:"condition"`
	AverageRating      float64        `json:"averageRating"`
	TotalRatings       int            `json:"totalRatings"`
	TotalRentals       int            `json:"totalRentals"`
	IsFeatured         bool           `json:"isFeatured"`
	CreatedAt          time.Time      `json:"createdAt"`
	Author             *AuthorSummary `json:"author"`
	Genre              GenreSummary   `json:"genre"`
	TotalCopies        int64          `json:"totalCopies"`
	AvailableCopies    int64          `json:"availableCopies"`
	LibrariesCount     int64          `json:"librariesCount"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalBooks int64 `json:"totalBooks"`
	TotalPages int64 `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

// NewPagination derives totalPages and hasMore from the count.
func NewPagination(page, limit int, total int64) Pagination {
	var totalPages int64
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}

	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalBooks: total,
		TotalPages: totalPages,
		HasMore:    int64(page) < totalPages,
	}
}

type Page struct {
	Books      []Book     `json:"books"`
	Pagination Pagination `json:"pagination"`
}

type row struct {
	ID                 uuid.UUID      `db:"id"`
	Slug               string         `db:"slug"`
	Title              string         `db:"title"`
	ISBN               sql.NullString `db:"isbn"`
	Description        sql.NullString `db:"description"`
	Publisher          sql.NullString `db:"publisher"`
	PublishedYear      sql.NullInt64  `db:"published_year"`
	Language           sql.NullString `db:"language"`
	TotalPages         sql.NullInt64  `db:"total_pages"`
	CoverImageURL      sql.NullString `db:"cover_image_url"`
	RentalPricePerWeek float64        `db:"rental_price_per_week"`
	DepositAmount      float64        `db:"deposit_amount"`
	Condition          string         `db:"condition"`
	AverageRating      float64        `db:"average_rating"`
	TotalRatings       int            `db:"total_ratings"`
	TotalRentals       int            `db:"total_rentals"`
	IsFeatured         bool           `db:"is_featured"`
	CreatedAt          time.Time      `db:"created_at"`
	AuthorID           uuid.NullUUID  `db:"author_id"`
	AuthorName         sql.NullString `db:"author_name"`
	AuthorImageURL     sql.NullString `db:"author_image_url"`
	GenreID            uuid.UUID      `db:"genre_id"`
	GenreName          string         `db:"genre_name"`
	GenreSlug          string         `db:"genre_slug"`
	TotalCopies        int64          `db:"total_copies"`
	AvailableCopies    int64          `db:"available_copies"`
	LibrariesCount     int64          `db:"libraries_count"`
}

func (r row) toBook() Book {
	b := Book{
		ID:                 r.ID,
		Slug:               r.Slug,
		Title:              r.Title,
		ISBN:               r.ISBN.String,
		Description:        r.Description.String,
		Publisher:          r.Publisher.String,
		PublishedYear:      int(r.PublishedYear.Int64),
		Language:           r.Language.String,
		TotalPages:         int(r.TotalPages.Int64),
		CoverImageURL:      r.CoverImageURL.String,
		RentalPricePerWeek: r.RentalPricePerWeek,
		DepositAmount:      r.DepositAmount,
		Condition:          r.Condition,
		AverageRating:      r.AverageRating,
		TotalRatings:       r.TotalRatings,
		TotalRentals:       r.TotalRentals,
		IsFeatured:         r.IsFeatured,
		CreatedAt:          r.CreatedAt,
		Genre: GenreSummary{
			ID:   r.GenreID,
			Name: r.GenreName,
			Slug: r.GenreSlug,
		},
		TotalCopies:     r.TotalCopies,
		AvailableCopies: r.AvailableCopies,
		LibrariesCount:  r.LibrariesCount,
	}

	if r.AuthorID.Valid {
		b.Author = &AuthorSummary{
			ID:       r.AuthorID.UUID,
			Name:     r.AuthorName.String,
			ImageURL: r.AuthorImageURL.String,
		}
	}

	return b
}

// Store runs catalog searches against the books tables.
type Store struct {
	db      *sqlx.DB
	dialect string
	logger  Logger
}

type Option func(*Store)

func WithLogger(logger Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func NewStore(db *sqlx.DB, dialect string, opts ...Option) *Store {
	s := &Store{db: db, dialect: dialect}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns one page of matching books and the pagination block
// computed from the same filter.
func (s *Store) Search(ctx context.Context, params Params) (Page, error) {
	q := NewQuery(s.dialect, params)
	p := q.Params()

	countSQL, countArgs, err := q.CountSQL()
	if err != nil {
		s.logError(err, countSQL)
		return Page{}, err
	}

	pageSQL, pageArgs, err := q.PageSQL()
	if err != nil {
		s.logError(err, pageSQL)
		return Page{}, err
	}

	start := time.Now()

	var total int64
	if err := s.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		s.logError(err, countSQL)
		return Page{}, errors.Join(ErrQueryFailed, err)
	}

	rows := make([]row, 0, p.Limit)
	if total > int64(p.offset()) {
		if err := s.db.SelectContext(ctx, &rows, pageSQL, pageArgs...); err != nil {
			s.logError(err, pageSQL)
			return Page{}, errors.Join(ErrQueryFailed, err)
		}
	}

	if s.logger != nil {
		s.logger.Debug(logMsgQueryCompleted,
			logAttrQuery, pageSQL,
			logAttrTotal, total,
			logAttrDurationMS, time.Since(start).Milliseconds(),
		)
	}

	books := make([]Book, 0, len(rows))
	for _, r := range rows {
		books = append(books, r.toBook())
	}

	return Page{
		Books:      books,
		Pagination: NewPagination(p.Page, p.Limit, total),
	}, nil
}

func (s *Store) logError(err error, query string) {
	if s.logger != nil {
		s.logger.Error(logMsgQueryFailed, logAttrError, err.Error(), logAttrQuery, query)
	}
}
