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

type UserAuthHandler struct {
	users    repository.UserRepository
	sessions sessions
}

func NewUserAuthHandler(users repository.UserRepository, issuer *auth.TokenIssuer, cookies auth.CookieWriter) *UserAuthHandler {
	return &UserAuthHandler{
		users:    users,
		sessions: sessions{role: auth.RoleUser, issuer: issuer, cookies: cookies},
	}
}

func (h *UserAuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/auth")
	{
		g.POST("/register", h.Register)
		g.POST("/login", h.Login)
		g.POST("/refresh", h.Refresh)
		g.POST("/logout", h.Logout)
		g.GET("/me", auth.RequireRole(h.sessions.issuer, auth.RoleUser), h.Me)
	}
}

func userIdentity(u model.User) auth.Identity {
	return auth.Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: auth.RoleUser}
}

// Register godoc
// @Summary      Register a reader
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      RegisterUserRequest  true  "Account"
// @Success      201      {object}  SuccessResponse{data=UserProfile}
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      409      {object}  validation.ErrorResponse   "Email already registered"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /auth/register [post]
func (h *UserAuthHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()

	if _, err := h.users.FindByEmail(ctx, req.Email); err == nil {
		writeError(c, http.StatusConflict, "USER_EXISTS", "email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "USER_CREATE_FAILED", "failed to create user")
		return
	}

	user := model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
	}

	if err := h.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(c, http.StatusConflict, "USER_EXISTS", "email already registered")
			return
		}
		writeError(c, http.StatusInternalServerError, "USER_CREATE_FAILED", "failed to create user")
		return
	}

	if !h.sessions.start(c, userIdentity(user)) {
		return
	}

	writeSuccess(c, http.StatusCreated, toUserProfile(user))
}

// Login godoc
// @Summary      Log a reader in
// @Description  Sets the accessToken and refreshToken cookies
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  SuccessResponse{data=UserProfile}
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      401      {object}  validation.ErrorResponse   "Invalid credentials"
// @Router       /auth/login [post]
func (h *UserAuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusUnauthorized, CodeInvalidCredentials, "invalid email or password")
			return
		}
		writeError(c, http.StatusInternalServerError, "LOGIN_FAILED", "failed to log in")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(c, http.StatusUnauthorized, CodeInvalidCredentials, "invalid email or password")
		return
	}

	if !h.sessions.start(c, userIdentity(*user)) {
		return
	}

	writeSuccess(c, http.StatusOK, toUserProfile(*user))
}

// Refresh godoc
// @Summary      Refresh the access token
// @Description  Reads the refreshToken cookie and writes a new accessToken cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  SuccessResponse{data=RefreshData}
// @Failure      401  {object}  validation.ErrorResponse   "REFRESH_TOKEN_INVALID"
// @Router       /auth/refresh [post]
func (h *UserAuthHandler) Refresh(c *gin.Context) {
	h.sessions.refresh(c, func(ctx context.Context, id uuid.UUID) (auth.Identity, error) {
		user, err := h.users.FindByID(ctx, id)
		if err != nil {
			return auth.Identity{}, err
		}
		return userIdentity(*user), nil
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the session cookies
// @Tags         auth
// @Produce      json
// @Success      200  {object}  SuccessResponse
// @Router       /auth/logout [post]
func (h *UserAuthHandler) Logout(c *gin.Context) {
	h.sessions.logout(c)
}

// Me godoc
// @Summary      Current reader
// @Tags         auth
// @Produce      json
// @Success      200  {object}  SuccessResponse{data=UserProfile}
// @Failure      401  {object}  validation.ErrorResponse   "TOKEN_EXPIRED or UNAUTHORIZED"
// @Router       /auth/me [get]
func (h *UserAuthHandler) Me(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), claims.Identity.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound, "USER_NOT_FOUND", "user not found")
			return
		}
		writeError(c, http.StatusInternalServerError, "USER_FETCH_FAILED", "failed to fetch user")
		return
	}

	writeSuccess(c, http.StatusOK, toUserProfile(*user))
}
