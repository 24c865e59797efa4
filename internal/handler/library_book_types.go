package handler

type CreateLibraryBookRequest struct {
	Title              string  `json:"title" binding:"required,min=1,max=255"`
	ISBN               string  `json:"isbn" binding:"omitempty,max=20"`
	Description        string  `json:"description" binding:"omitempty,max=5000"`
	Publisher          string  `json:"publisher" binding:"omitempty,max=200"`
	PublishedYear      int     `json:"publishedYear" binding:"omitempty,min=0,max=9999"`
	Language           string  `json:"language" binding:"omitempty,max=50"`
	TotalPages         int     `json:"totalPages" binding:"omitempty,min=0"`
	CoverImageURL      string  `json:"coverImageUrl" binding:"omitempty,url"`
	RentalPricePerWeek float64 `json:"rentalPricePerWeek" binding:"gte=0"`
	DepositAmount      float64 `json:"depositAmount" binding:"gte=0"`
	Condition          string  `json:"condition" example:"like_new"`
	AuthorName         string  `json:"authorName" binding:"omitempty,max=200"`
	GenreName          string  `json:"genreName" binding:"required,min=1,max=100"`
	TotalCopies        int     `json:"totalCopies" binding:"gte=0"`
}

type UpdateLibraryBookRequest struct {
	Title              *string  `json:"title" binding:"omitempty,min=1,max=255"`
	ISBN               *string  `json:"isbn" binding:"omitempty,max=20"`
	Description        *string  `json:"description" binding:"omitempty,max=5000"`
	Publisher          *string  `json:"publisher" binding:"omitempty,max=200"`
	PublishedYear      *int     `json:"publishedYear" binding:"omitempty,min=0,max=9999"`
	Language           *string  `json:"language" binding:"omitempty,max=50"`
	TotalPages         *int     `json:"totalPages" binding:"omitempty,min=0"`
	CoverImageURL      *string  `json:"coverImageUrl" binding:"omitempty,url"`
	RentalPricePerWeek *float64 `json:"rentalPricePerWeek" binding:"omitempty,gte=0"`
	DepositAmount      *float64 `json:"depositAmount" binding:"omitempty,gte=0"`
	Condition          *string  `json:"condition" example:"good"`
	AuthorName         *string  `json:"authorName" binding:"omitempty,max=200"`
	GenreName          *string  `json:"genreName" binding:"omitempty,min=1,max=100"`
}

func (r UpdateLibraryBookRequest) empty() bool {
	return r.Title == nil && r.ISBN == nil && r.Description == nil && r.Publisher == nil &&
		r.PublishedYear == nil && r.Language == nil && r.TotalPages == nil &&
		r.CoverImageURL == nil && r.RentalPricePerWeek == nil && r.DepositAmount == nil &&
		r.Condition == nil && r.AuthorName == nil && r.GenreName == nil
}

type UpdateStockRequest struct {
	TotalCopies     *int `json:"totalCopies" binding:"required,gte=0"`
	AvailableCopies *int `json:"availableCopies" binding:"required,gte=0"`
}
