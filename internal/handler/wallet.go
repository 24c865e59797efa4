package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/internal/repository"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

type DepositRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0,lte=100000"`
}

// WalletHandler expects auth.RequireRole(user) on its group.
type WalletHandler struct {
	users repository.UserRepository
}

func NewWalletHandler(users repository.UserRepository) *WalletHandler {
	return &WalletHandler{users: users}
}

func (h *WalletHandler) RegisterRoutes(r *gin.RouterGroup) {
	wallet := r.Group("/wallet")
	{
		wallet.GET("", h.GetWallet)
		wallet.POST("/deposit", h.Deposit)
	}
}

// GetWallet godoc
// @Summary      Wallet balance
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  SuccessResponse{data=Wallet}
// @Failure      401  {object}  validation.ErrorResponse   "Unauthorized"
// @Router       /wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), claims.Identity.ID)
	if err != nil {
		writeWalletError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, Wallet{Balance: user.DepositBalance})
}

// Deposit godoc
// @Summary      Top up the wallet
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        payload  body      DepositRequest  true  "Amount"
// @Success      200      {object}  SuccessResponse{data=Wallet}
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Router       /wallet/deposit [post]
func (h *WalletHandler) Deposit(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	var req DepositRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.users.Deposit(c.Request.Context(), claims.Identity.ID, req.Amount)
	if err != nil {
		writeWalletError(c, err)
		return
	}

	writeSuccess(c, http.StatusOK, Wallet{Balance: user.DepositBalance})
}

func writeWalletError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(c, http.StatusNotFound, "USER_NOT_FOUND", "user not found")
		return
	}
	writeError(c, http.StatusInternalServerError, "WALLET_FAILED", "failed to access wallet")
}
