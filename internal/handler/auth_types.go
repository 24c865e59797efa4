package handler

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterLibraryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	Phone       string `json:"phone" binding:"omitempty,max=30"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode" binding:"required,max=20"`
	OpeningTime string `json:"openingTime" binding:"omitempty,datetime=15:04"`
	ClosingTime string `json:"closingTime" binding:"omitempty,datetime=15:04"`
}
