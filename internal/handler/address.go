package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/repository"
	"github.com/snnyvrz/shelfshare/internal/validation"
)

type CreateAddressRequest struct {
	Label      string `json:"label" binding:"omitempty,max=50"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required,max=100"`
	State      string `json:"state" binding:"omitempty,max=100"`
	PostalCode string `json:"postalCode" binding:"required,max=20"`
	Country    string `json:"country" binding:"omitempty,max=100"`
	IsDefault  bool   `json:"isDefault"`
}

type UpdateAddressRequest struct {
	Label      *string `json:"label" binding:"omitempty,max=50"`
	Line1      *string `json:"line1" binding:"omitempty,min=1"`
	Line2      *string `json:"line2"`
	City       *string `json:"city" binding:"omitempty,min=1,max=100"`
	State      *string `json:"state" binding:"omitempty,max=100"`
	PostalCode *string `json:"postalCode" binding:"omitempty,min=1,max=20"`
	Country    *string `json:"country" binding:"omitempty,max=100"`
}

func (r UpdateAddressRequest) empty() bool {
	return r.Label == nil && r.Line1 == nil && r.Line2 == nil && r.City == nil &&
		r.State == nil && r.PostalCode == nil && r.Country == nil
}

// AddressHandler expects auth.RequireRole(user) on its group.
type AddressHandler struct {
	repo repository.AddressRepository
}

func NewAddressHandler(repo repository.AddressRepository) *AddressHandler {
	return &AddressHandler{repo: repo}
}

func (h *AddressHandler) RegisterRoutes(r *gin.RouterGroup) {
	addresses := r.Group("/addresses")
	{
		addresses.GET("", h.ListAddresses)
		addresses.POST("", h.CreateAddress)
		addresses.PATCH("/:id", h.UpdateAddress)
		addresses.DELETE("/:id", h.DeleteAddress)
		addresses.POST("/:id/default", h.SetDefaultAddress)
	}
}

// ListAddresses godoc
// @Summary      List my addresses
// @Tags         addresses
// @Produce      json
// @Success      200  {object}  SuccessResponse{data=[]Address}
// @Failure      401  {object}  validation.ErrorResponse   "Unauthorized"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /addresses [get]
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	addresses, err := h.repo.ListByUser(c.Request.Context(), claims.Identity.ID)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "ADDRESS_LIST_FAILED", "failed to fetch addresses")
		return
	}

	out := make([]Address, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, toAddress(a))
	}

	writeSuccess(c, http.StatusOK, out)
}

// CreateAddress godoc
// @Summary      Add an address
// @Description  The first address becomes the default
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateAddressRequest  true  "Address"
// @Success      201      {object}  SuccessResponse{data=Address}
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /addresses [post]
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	var req CreateAddressRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	address := model.Address{
		UserID:     claims.Identity.ID,
		Label:      req.Label,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsDefault:  req.IsDefault,
	}

	if err := h.repo.Create(c.Request.Context(), &address); err != nil {
		writeError(c, http.StatusInternalServerError, "ADDRESS_CREATE_FAILED", "failed to create address")
		return
	}

	writeSuccess(c, http.StatusCreated, toAddress(address))
}

// UpdateAddress godoc
// @Summary      Update an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Address ID (UUID)"
// @Param        payload  body      UpdateAddressRequest  true  "Fields to update"
// @Success      200      {object}  SuccessResponse{data=Address}
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Address not found"
// @Router       /addresses/{id} [patch]
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id", "INVALID_ADDRESS_ID", "invalid address id")
	if !ok {
		return
	}

	var req UpdateAddressRequest
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

	updated, err := h.repo.Update(c.Request.Context(), claims.Identity.ID, id, repository.AddressUpdate{
		Label:      req.Label,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		writeAddressError(c, err, "ADDRESS_UPDATE_FAILED", "failed to update address")
		return
	}

	writeSuccess(c, http.StatusOK, toAddress(*updated))
}

// DeleteAddress godoc
// @Summary      Delete an address
// @Tags         addresses
// @Param        id   path      string  true  "Address ID (UUID)"
// @Success      204  {string}  string  "No content"
// @Failure      404  {object}  validation.ErrorResponse   "Address not found"
// @Router       /addresses/{id} [delete]
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id", "INVALID_ADDRESS_ID", "invalid address id")
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), claims.Identity.ID, id); err != nil {
		writeAddressError(c, err, "ADDRESS_DELETE_FAILED", "failed to delete address")
		return
	}

	c.Status(http.StatusNoContent)
}

// SetDefaultAddress godoc
// @Summary      Make an address the default
// @Tags         addresses
// @Produce      json
// @Param        id   path      string  true  "Address ID (UUID)"
// @Success      200  {object}  SuccessResponse{data=Address}
// @Failure      404  {object}  validation.ErrorResponse   "Address not found"
// @Router       /addresses/{id}/default [post]
func (h *AddressHandler) SetDefaultAddress(c *gin.Context) {
	claims, ok := principal(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id", "INVALID_ADDRESS_ID", "invalid address id")
	if !ok {
		return
	}

	address, err := h.repo.SetDefault(c.Request.Context(), claims.Identity.ID, id)
	if err != nil {
		writeAddressError(c, err, "ADDRESS_UPDATE_FAILED", "failed to update address")
		return
	}

	writeSuccess(c, http.StatusOK, toAddress(*address))
}

func writeAddressError(c *gin.Context, err error, code, message string) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(c, http.StatusNotFound, "ADDRESS_NOT_FOUND", "address not found")
		return
	}
	writeError(c, http.StatusInternalServerError, code, message)
}
