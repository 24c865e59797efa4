package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/catalog"
	"github.com/snnyvrz/shelfshare/internal/model"
)

type ListBooksQuery struct {
	Search       string   `form:"search"`
	MinPrice     *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice     *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	Genre        []string `form:"genre"`
	Language     []string `form:"language"`
	Condition    []string `form:"condition"`
	Location     string   `form:"location"`
	Pincode      string   `form:"pincode"`
	City         string   `form:"city"`
	AvailableNow bool     `form:"availableNow"`
	SortBy       string   `form:"sortBy"`
	Page         int      `form:"page,default=1" binding:"min=1,max=100000"`
	Limit        int      `form:"limit,default=12" binding:"min=1"`
}

func (q ListBooksQuery) params() catalog.Params {
	return catalog.Params{
		Search:       q.Search,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		Genres:       splitList(q.Genre),
		Languages:    splitList(q.Language),
		Conditions:   splitList(q.Condition),
		Location:     q.Location,
		Pincode:      q.Pincode,
		City:         q.City,
		AvailableNow: q.AvailableNow,
		SortBy:       catalog.SortBy(q.SortBy),
		Page:         q.Page,
		Limit:        q.Limit,
	}
}

type LibraryAvailability struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	City            string    `json:"city"`
	PostalCode      string    `json:"postalCode"`
	OpeningTime     string    `json:"openingTime"`
	ClosingTime     string    `json:"closingTime"`
	TotalCopies     int       `json:"totalCopies"`
	AvailableCopies int       `json:"availableCopies"`
	IsAvailable     bool      `json:"isAvailable"`
}

type Book struct {
	ID                 uuid.UUID              `json:"id"`
	Slug               string                 `json:"slug"`
	Title              string                 `json:"title"`
	ISBN               string                 `json:"isbn"`
	Description        string                 `json:"description"`
	Publisher          string                 `json:"publisher"`
	PublishedYear      int                    `json:"publishedYear"`
	Language           string                 `json:"language"`
	TotalPages         int                    `json:"totalPages"`
	CoverImageURL      string                 `json:"coverImageUrl"`
	RentalPricePerWeek float64                `json:"rentalPricePerWeek"`
	DepositAmount      float64                `json:"depositAmount"`
	Condition          model.Condition        `json:"condition"`
	AverageRating      float64                `json:"averageRating"`
	TotalRatings       int                    `json:"totalRatings"`
	TotalRentals       int                    `json:"totalRentals"`
	IsFeatured         bool                   `json:"isFeatured"`
	Author             *catalog.AuthorSummary `json:"author"`
	Genre              catalog.GenreSummary   `json:"genre"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

type BookDetail struct {
	Book
	TotalCopies     int                   `json:"totalCopies"`
	AvailableCopies int                   `json:"availableCopies"`
	Libraries       []LibraryAvailability `json:"libraries"`
}

type Genre struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type UserProfile struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	DepositBalance float64   `json:"depositBalance"`
	CreatedAt      time.Time `json:"createdAt"`
}

type LibraryProfile struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	AddressLine string    `json:"addressLine"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	PostalCode  string    `json:"postalCode"`
	OpeningTime string    `json:"openingTime"`
	ClosingTime string    `json:"closingTime"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RefreshData struct {
	AccessToken string `json:"accessToken"`
}

type Address struct {
	ID         uuid.UUID `json:"id"`
	Label      string    `json:"label"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"isDefault"`
}

type Wallet struct {
	Balance float64 `json:"balance"`
}

type RentalBook struct {
	ID    uuid.UUID `json:"id"`
	Slug  string    `json:"slug"`
	Title string    `json:"title"`
}

type RentalLibrary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	City string    `json:"city"`
}

type Rental struct {
	ID            uuid.UUID          `json:"id"`
	Book          *RentalBook        `json:"book,omitempty"`
	Library       *RentalLibrary     `json:"library,omitempty"`
	BookID        uuid.UUID          `json:"bookId"`
	LibraryID     uuid.UUID          `json:"libraryId"`
	Weeks         int                `json:"weeks"`
	RentAmount    float64            `json:"rentAmount"`
	DepositAmount float64            `json:"depositAmount"`
	Status        model.RentalStatus `json:"status"`
	DueAt         model.Date         `json:"dueAt" swaggertype:"string" example:"2025-11-24"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type InventoryItem struct {
	Book            Book `json:"book"`
	TotalCopies     int  `json:"totalCopies"`
	AvailableCopies int  `json:"availableCopies"`
	IsAvailable     bool `json:"isAvailable"`
}

type DeleteBookResult struct {
	BookID      uuid.UUID `json:"bookId"`
	BookDeleted bool      `json:"bookDeleted"`
}

func toBook(b model.Book) Book {
	out := Book{
		ID:                 b.ID,
		Slug:               b.Slug,
		Title:              b.Title,
		ISBN:               b.ISBN,
		Description:        b.Description,
		Publisher:          b.Publisher,
		PublishedYear:      b.PublishedYear,
		Language:           b.Language,
		TotalPages:         b.TotalPages,
		CoverImageURL:      b.CoverImageURL,
		RentalPricePerWeek: b.RentalPricePerWeek,
		DepositAmount:      b.DepositAmount,
		Condition:          b.Condition,
		AverageRating:      b.AverageRating,
		TotalRatings:       b.TotalRatings,
		TotalRentals:       b.TotalRentals,
		IsFeatured:         b.IsFeatured,
		Genre: catalog.GenreSummary{
			ID:   b.Genre.ID,
			Name: b.Genre.Name,
			Slug: b.Genre.Slug,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.Author != nil {
		out.Author = &catalog.AuthorSummary{
			ID:       b.Author.ID,
			Name:     b.Author.Name,
			ImageURL: b.Author.ImageURL,
		}
	}

	return out
}

func toBookDetail(b model.Book) BookDetail {
	detail := BookDetail{
		Book:      toBook(b),
		Libraries: make([]LibraryAvailability, 0, len(b.LibraryBooks)),
	}

	for _, lb := range b.LibraryBooks {
		detail.TotalCopies += lb.TotalCopies
		detail.AvailableCopies += lb.AvailableCopies
		detail.Libraries = append(detail.Libraries, LibraryAvailability{
			ID:              lb.Library.ID,
			Name:            lb.Library.Name,
			Slug:            lb.Library.Slug,
			City:            lb.Library.City,
			PostalCode:      lb.Library.PostalCode,
			OpeningTime:     lb.Library.OpeningTime,
			ClosingTime:     lb.Library.ClosingTime,
			TotalCopies:     lb.TotalCopies,
			AvailableCopies: lb.AvailableCopies,
			IsAvailable:     lb.IsAvailable,
		})
	}

	return detail
}

func toUserProfile(u model.User) UserProfile {
	return UserProfile{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		DepositBalance: u.DepositBalance,
		CreatedAt:      u.CreatedAt,
	}
}

func toLibraryProfile(l model.Library) LibraryProfile {
	return LibraryProfile{
		ID:          l.ID,
		Name:        l.Name,
		Slug:        l.Slug,
		Email:       l.Email,
		Phone:       l.Phone,
		AddressLine: l.AddressLine,
		City:        l.City,
		State:       l.State,
		PostalCode:  l.PostalCode,
		OpeningTime: l.OpeningTime,
		ClosingTime: l.ClosingTime,
		CreatedAt:   l.CreatedAt,
	}
}

func toAddress(a model.Address) Address {
	return Address{
		ID:         a.ID,
		Label:      a.Label,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		IsDefault:  a.IsDefault,
	}
}

func toRental(r model.Rental) Rental {
	out := Rental{
		ID:            r.ID,
		BookID:        r.BookID,
		LibraryID:     r.LibraryID,
		Weeks:         r.Weeks,
		RentAmount:    r.RentAmount,
		DepositAmount: r.DepositAmount,
		Status:        r.Status,
		DueAt:         model.DateOf(r.DueAt),
		CreatedAt:     r.CreatedAt,
	}

	if r.Book.ID != uuid.Nil {
		out.Book = &RentalBook{ID: r.Book.ID, Slug: r.Book.Slug, Title: r.Book.Title}
	}
	if r.Library.ID != uuid.Nil {
		out.Library = &RentalLibrary{ID: r.Library.ID, Name: r.Library.Name, City: r.Library.City}
	}

	return out
}

func toInventoryItem(lb model.LibraryBook) InventoryItem {
	return InventoryItem{
		Book:            toBook(lb.Book),
		TotalCopies:     lb.TotalCopies,
		AvailableCopies: lb.AvailableCopies,
		IsAvailable:     lb.IsAvailable,
	}
}
