package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/repository"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

type CreateRentalRequest struct {
	BookID    uuid.UUID `json:"bookId" binding:"required"`
	LibraryID uuid.UUID `json:"libraryId" binding:"required"`
	Weeks     int       `json:"weeks" binding:"required,min=1,max=12"`
}

// RentalHandler expects auth.RequireRole(user) on its group.
type RentalHandler struct {
	repo repository.RentalRepository
}

func NewRentalHandler(repo repository.RentalRepository) *RentalHandler {
	return &RentalHandler{repo: repo}
}

func (h *RentalHandler) RegisterRoutes(r *gin.RouterGroup) {
	rentals := r.Group("/rentals")
	{
		rentals.GET("", h.ListRentals)
		rentals.POST("", h.CreateRental)
	}
}

// ListRentals godoc
// @Summary      My rentals
// @Tags         rentals
// @Produce      json
// @Success      200  {object}  SuccessResponse{data=[]Rental}
// @Failure      401  {object}  validation.ErrorResponse   "Unauthorized"
// @Router       /rentals [get]
func (h *RentalHandler) ListRentals(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	rentals, err := h.repo.ListByUser(c.Request.Context(), claims.Identity.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "RENTAL_LIST_FAILED", "failed to fetch rentals")
		return
	}

	out := make([]Rental, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, toRental(r))
	}

	writeSuccess(c, http.StatusOK, out)
}

// CreateRental godoc
// @Summary      Rent a book
// @Description  Holds the book deposit from the wallet and takes one copy from the library
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateRentalRequest  true  "Rental"
// @Success      201      {object}  SuccessResponse{data=Rental}
// @Failure      400      {object}  validation.ErrorResponse   "Validation error or insufficient deposit"
// @Failure      404      {object}  validation.ErrorResponse   "Book not carried by library"
// @Failure      409      {object}  validation.ErrorResponse   "Out of stock"
// @Router       /rentals [post]
func (h *RentalHandler) CreateRental(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	var req CreateRentalRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	rental, err := h.repo.Create(c.Request.Context(), claims.Identity.ID, repository.RentalInput{
		BookID:    req.BookID,
		LibraryID: req.LibraryID,
		Weeks:     req.Weeks,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientDeposit):
			writeError(c, http.StatusBadRequest, "INSUFFICIENT_DEPOSIT", "wallet balance does not cover the deposit")
		case errors.Is(err, repository.ErrOutOfStock):
			writeError(c, http.StatusConflict, "OUT_OF_STOCK", "no copy available at this library")
		case errors.Is(err, repository.ErrNotFound):
			writeError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "book not found at this library")
		default:
			writeError(c, http.StatusInternalServerError, "RENTAL_CREATE_FAILED", "failed to create rental")
		}
		return
	}

	writeSuccess(c, http.StatusCreated, toRental(*rental))
}
