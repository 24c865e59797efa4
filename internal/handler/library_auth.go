package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare/internal/auth"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/repository"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

type LibraryAuthHandler struct {
	libraries repository.LibraryRepository
	sessions  sessions
}

func NewLibraryAuthHandler(libraries repository.LibraryRepository, issuer *auth.TokenIssuer, cookies auth.CookieWriter) *LibraryAuthHandler {
	return &LibraryAuthHandler{
		libraries: libraries,
		sessions:  sessions{role: auth.RoleLibrary, issuer: issuer, cookies: cookies},
	}
}

func (h *LibraryAuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/library/auth")
	{
		g.POST("/register", h.Register)
		g.POST("/login", h.Login)
		g.POST("/refresh", h.Refresh)
		g.POST("/logout", h.Logout)
		g.GET("/me", auth.RequireRole(h.sessions.issuer, auth.RoleLibrary), h.Me)
	}
}

func libraryIdentity(l model.Library) auth.Identity {
	return auth.Identity{ID: l.ID, Name: l.Name, Email: l.Email, Role: auth.RoleLibrary}
}

// Register godoc
// @Summary      Register a library
// @Tags         library-auth
// @Accept       json
// @Produce      json
// @Param        payload  body      RegisterLibraryRequest  true  "Library"
// @Success      201      {object}  SuccessResponse{data=LibraryProfile}
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      409      {object}  validation.ErrorResponse   "Email already registered"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /library/auth/register [post]
func (h *LibraryAuthHandler) Register(c *gin.Context) {
	var req RegisterLibraryRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	if _, err := h.libraries.FindByEmail(ctx, req.Email); err == nil {
		writeError(c, http.StatusConflict, "LIBRARY_EXISTS", "email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "LIBRARY_CREATE_FAILED", "failed to create library")
		return
	}

	library := model.Library{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		AddressLine:  req.AddressLine,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		OpeningTime:  req.OpeningTime,
		ClosingTime:  req.ClosingTime,
	}

	if err := h.libraries.Create(ctx, &library); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(c, http.StatusConflict, "LIBRARY_EXISTS", "email or slug already registered")
			return
		}
		writeError(c, http.StatusInternalServerError, "LIBRARY_CREATE_FAILED", "failed to create library")
		return
	}

	if !h.sessions.start(c, libraryIdentity(library)) {
		return
	}

	writeSuccess(c, http.StatusCreated, toLibraryProfile(library))
}

// Login godoc
// @Summary      Log a library in
// @Tags         library-auth
// @Accept       json
// @Produce      json
// @Param        payload  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  SuccessResponse{data=LibraryProfile}
// @Failure      401      {object}  validation.ErrorResponse   "Invalid credentials"
// @Router       /library/auth/login [post]
func (h *LibraryAuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	library, err := h.libraries.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusUnauthorized, CodeInvalidCredentials, "invalid email or password")
			return
		}
		writeError(c, http.StatusInternalServerError, "LOGIN_FAILED", "failed to log in")
		return
	}

	if !auth.CheckPassword(library.PasswordHash, req.Password) {
		writeError(c, http.StatusUnauthorized, CodeInvalidCredentials, "invalid email or password")
		return
	}

	if !h.sessions.start(c, libraryIdentity(*library)) {
		return
	}

	writeSuccess(c, http.StatusOK, toLibraryProfile(*library))
}

// Refresh godoc
// @Summary      Refresh the library access token
// @Tags         library-auth
// @Produce      json
// @Success      200  {object}  SuccessResponse{data=RefreshData}
// @Failure      401  {object}  validation.ErrorResponse   "REFRESH_TOKEN_INVALID"
// @Router       /library/auth/refresh [post]
func (h *LibraryAuthHandler) Refresh(c *gin.Context) {
	h.sessions.refresh(c, func(ctx context.Context, id uuid.UUID) (auth.Identity, error) {
		library, err := h.libraries.FindByID(ctx, id)
		if err != nil {
			return auth.Identity{}, err
		}
		return libraryIdentity(*library), nil
	})
}

// Logout godoc
// @Summary      Log a library out
// @Tags         library-auth
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /library/auth/logout [post]
func (h *LibraryAuthHandler) Logout(c *gin.Context) {
	h.sessions.logout(c)
}

// Me godoc
// @Summary      Current library
// @Tags         library-auth
// @Produce      json
// @Success      200  {object}  SuccessResponse{data=LibraryProfile}
// @Failure      401  {object}  validation.ErrorResponse   "TOKEN_EXPIRED or UNAUTHORIZED"
// @Router       /library/auth/me [get]
func (h *LibraryAuthHandler) Me(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	library, err := h.libraries.FindByID(c.Request.Context(), claims.Identity.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound, "LIBRARY_NOT_FOUND", "library not found")
			return
		}
		writeError(c, http.StatusInternalServerError, "LIBRARY_FETCH_FAILED", "failed to fetch library")
		return
	}

	writeSuccess(c, http.StatusOK, toLibraryProfile(*library))
}
