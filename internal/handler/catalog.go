package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/internal/catalog"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/repository"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

type BookSearcher interface {
	Search(ctx context.Context, params catalog.Params) (catalog.Page, error)
}

// CatalogHandler serves the public book pages.
type CatalogHandler struct {
	search BookSearcher
	books  repository.BookRepository
}

func NewCatalogHandler(search BookSearcher, books repository.BookRepository) *CatalogHandler {
	return &CatalogHandler{search: search, books: books}
}

func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/:slug", h.GetBookBySlug)
	}
	r.GET("/genres", h.ListGenres)
}

// ListBooks godoc
// @Summary      Search books
// @Description  Filtered, sorted and paginated catalog with inventory summed across libraries
// @Tags         books
// @Produce      json
// @Param        search        query     string    false  "Case-insensitive match on title or ISBN"
// @Param        minPrice      query     number    false  "Minimum weekly rental price"  minimum(0)
// @Param        maxPrice      query     number    false  "Maximum weekly rental price"  minimum(0)
// @Param        genre         query     []string  false  "Genre names or slugs"  collectionFormat(multi)
// @Param        language      query     []string  false  "Languages"  collectionFormat(multi)
// @Param        condition     query     []string  false  "Conditions, e.g. like_new or Like New"  collectionFormat(multi)
// @Param        location      query     string    false  "City substring, used when city is empty"
// @Param        pincode       query     string    false  "Exact library postal code, wins over city"
// @Param        city          query     string    false  "City substring"
// @Param        availableNow  query     bool      false  "Only books with an available copy"
// @Param        sortBy        query     string    false  "Ordering"  Enums(relevance,available_now,top_rated,new_arrivals,price_low,price_high,most_rented)
// @Param        page          query     int       false  "Page number"     default(1)  minimum(1)  maximum(100000)
// @Param        limit         query     int       false  "Items per page"  default(12) minimum(1) maximum(100)
// @Success      200  {object}  SuccessResponse{data=catalog.Page}
// @Failure      400  {object}  validation.ErrorResponse   "Invalid query parameters"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *CatalogHandler) ListBooks(c *gin.Context) {
	var q ListBooksQuery
	if !validation.BindAndValidateQuery(c, &q) {
		return
	}

	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		writeError(c, http.StatusBadRequest,
			validation.CodeInvalidQuery,
			"minPrice must not exceed maxPrice",
		)
		return
	}

	page, err := h.search.Search(c.Request.Context(), q.params())
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"BOOK_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	writeSuccess(c, http.StatusOK, page)
}

// GetBookBySlug godoc
// @Summary      Get a book
// @Description  Book detail with availability per library
// @Tags         books
// @Produce      json
// @Param        slug  path      string  true  "Book slug"
// @Success      200   {object}  SuccessResponse{data=BookDetail}
// @Failure      404   {object}  validation.ErrorResponse   "Book not found"
// @Failure      500   {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{slug} [get]
func (h *CatalogHandler) GetBookBySlug(c *gin.Context) {
	book, err := h.books.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		writeError(c, http.StatusInternalServerError,
			"BOOK_FETCH_FAILED",
			"failed to fetch book",
		)
		return
	}

	writeSuccess(c, http.StatusOK, toBookDetail(*book))
}

// ListGenres godoc
// @Summary      List genres
// @Tags         books
// @Produce      json
// @Success      200  {object}  SuccessResponse{data=[]Genre}
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /genres [get]
func (h *CatalogHandler) ListGenres(c *gin.Context) {
	genres, err := h.books.ListGenres(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError,
			"GENRE_LIST_FAILED",
			"failed to fetch genres",
		)
		return
	}

	out := make([]Genre, 0, len(genres))
	for _, g := range genres {
		out = append(out, toGenre(g))
	}

	writeSuccess(c, http.StatusOK, out)
}

func toGenre(g model.Genre) Genre {
	return Genre{ID: g.ID, Name: g.Name, Slug: g.Slug}
}
