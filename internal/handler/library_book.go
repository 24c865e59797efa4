package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/repository"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

// LibraryBookHandler is the inventory dashboard. It expects
// auth.RequireRole(library) on its group.
type LibraryBookHandler struct {
	repo repository.InventoryRepository
}

func NewLibraryBookHandler(repo repository.InventoryRepository) *LibraryBookHandler {
	return &LibraryBookHandler{repo: repo}
}

func (h *LibraryBookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/library/books")
	{
		books.GET("", h.ListBooks)
		books.POST("", h.CreateBook)
		books.PATCH("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
		books.PATCH("/:id/stock", h.UpdateStock)
	}
}

// parseCondition accepts display forms such as "Like New". Empty keeps the
// column default.
func parseCondition(c *gin.Context, raw string) (model.Condition, bool) {
	if raw == "" {
		return "", true
	}

	cond := model.NormalizeCondition(raw)
	if !cond.Valid() {
		writeError(c, http.StatusBadRequest,
			"INVALID_CONDITION",
			"condition must be one of new, like_new, good, fair, poor",
		)
		return "", false
	}
	return cond, true
}

// ListBooks godoc
// @Summary      Inventory of the calling library
// @Tags         library-books
// @Produce      json
// @Success      200  {object}  SuccessResponse{data=[]InventoryItem}
// @Failure      401  {object}  validation.ErrorResponse   "Unauthorized"
// @Router       /library/books [get]
func (h *LibraryBookHandler) ListBooks(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	links, err := h.repo.ListLibraryBooks(c.Request.Context(), claims.Identity.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "BOOK_LIST_FAILED", "failed to fetch books")
		return
	}

	out := make([]InventoryItem, 0, len(links))
	for _, lb := range links {
		out = append(out, toInventoryItem(lb))
	}

	writeSuccess(c, http.StatusOK, out)
}

// CreateBook godoc
// @Summary      Add a book to the inventory
// @Description  Authors and genres are found or created by name; every copy starts available
// @Tags         library-books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateLibraryBookRequest  true  "Book"
// @Success      201      {object}  SuccessResponse{data=InventoryItem}
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /library/books [post]
func (h *LibraryBookHandler) CreateBook(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	var req CreateLibraryBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	cond, ok := parseCondition(c, req.Condition)
	if !ok {
		return
	}

	link, err := h.repo.CreateBook(c.Request.Context(), claims.Identity.ID, repository.BookInput{
		Title:              req.Title,
		ISBN:               req.ISBN,
		Description:        req.Description,
		Publisher:          req.Publisher,
		PublishedYear:      req.PublishedYear,
		Language:           req.Language,
		TotalPages:         req.TotalPages,
		CoverImageURL:      req.CoverImageURL,
		RentalPricePerWeek: req.RentalPricePerWeek,
		DepositAmount:      req.DepositAmount,
		Condition:          cond,
		AuthorName:         req.AuthorName,
		GenreName:          req.GenreName,
		TotalCopies:        req.TotalCopies,
	})
	if err != nil {
		writeInventoryError(c, err, "BOOK_CREATE_FAILED", "failed to create book")
		return
	}

	writeSuccess(c, http.StatusCreated, toInventoryItem(*link))
}

// UpdateBook godoc
// @Summary      Edit a book
// @Description  Only supplied fields change; a new title re-derives the slug
// @Tags         library-books
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Book ID (UUID)"
// @Param        payload  body      UpdateLibraryBookRequest  true  "Fields to update"
// @Success      200      {object}  SuccessResponse{data=InventoryItem}
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Book not in this library"
// @Router       /library/books/{id} [patch]
func (h *LibraryBookHandler) UpdateBook(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	bookID, ok := parseIDParam(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	var req UpdateLibraryBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.empty() {
		writeError(c, http.StatusBadRequest,
			"NO_FIELDS_TO_UPDATE",
			"at least one field must be provided to update",
		)
		return
	}

	patch := repository.BookPatch{
		Title:              req.Title,
		ISBN:               req.ISBN,
		Description:        req.Description,
		Publisher:          req.Publisher,
		PublishedYear:      req.PublishedYear,
		Language:           req.Language,
		TotalPages:         req.TotalPages,
		CoverImageURL:      req.CoverImageURL,
		RentalPricePerWeek: req.RentalPricePerWeek,
		DepositAmount:      req.DepositAmount,
		AuthorName:         req.AuthorName,
		GenreName:          req.GenreName,
	}

	if req.Condition != nil {
		cond, ok := parseCondition(c, *req.Condition)
		if !ok {
			return
		}
		if cond != "" {
			patch.Condition = &cond
		}
	}

	link, err := h.repo.UpdateBook(c.Request.Context(), claims.Identity.ID, bookID, patch)
	if err != nil {
		writeInventoryError(c, err, "BOOK_UPDATE_FAILED", "failed to update book")
		return
	}

	writeSuccess(c, http.StatusOK, toInventoryItem(*link))
}

// DeleteBook godoc
// @Summary      Remove a book from the inventory
// @Description  The book itself is deleted once no library carries it
// @Tags         library-books
// @Produce      json
// @Param        id   path      string  true  "Book ID (UUID)"
// @Success      200  {object}  SuccessResponse{data=DeleteBookResult}
// @Failure      404  {object}  validation.ErrorResponse   "Book not in this library"
// @Router       /library/books/{id} [delete]
func (h *LibraryBookHandler) DeleteBook(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	bookID, ok := parseIDParam(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	deleted, err := h.repo.DeleteBook(c.Request.Context(), claims.Identity.ID, bookID)
	if err != nil {
		writeInventoryError(c, err, "BOOK_DELETE_FAILED", "failed to delete book")
		return
	}

	writeSuccess(c, http.StatusOK, DeleteBookResult{BookID: bookID, BookDeleted: deleted})
}

// UpdateStock godoc
// @Summary      Set copy counts
// @Description  isAvailable is recomputed from availableCopies
// @Tags         library-books
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Book ID (UUID)"
// @Param        payload  body      UpdateStockRequest  true  "Copy counts"
// @Success      200      {object}  SuccessResponse{data=InventoryItem}
// @Failure      400      {object}  validation.ErrorResponse   "availableCopies above totalCopies"
// @Failure      404      {object}  validation.ErrorResponse   "Book not in this library"
// @Router       /library/books/{id}/stock [patch]
func (h *LibraryBookHandler) UpdateStock(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	bookID, ok := parseIDParam(c, "id", "INVALID_BOOK_ID", "invalid book id")
	if !ok {
		return
	}

	var req UpdateStockRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	link, err := h.repo.UpdateStock(c.Request.Context(), claims.Identity.ID, bookID, *req.TotalCopies, *req.AvailableCopies)
	if err != nil {
		writeInventoryError(c, err, "STOCK_UPDATE_FAILED", "failed to update stock")
		return
	}

	writeSuccess(c, http.StatusOK, toInventoryItem(*link))
}

func writeInventoryError(c *gin.Context, err error, code, message string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "book not found in this library")
	case errors.Is(err, model.ErrInvalidStock):
		writeError(c, http.StatusBadRequest, "INVALID_STOCK", model.ErrInvalidStock.Error())
	case errors.Is(err, repository.ErrInvalidGenreName):
		writeError(c, http.StatusBadRequest, "INVALID_GENRE", repository.ErrInvalidGenreName.Error())
	default:
		writeError(c, http.StatusInternalServerError, code, message)
	}
}
