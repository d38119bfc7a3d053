package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"fruitmart-backend/internal/delivery/http/middleware"
	"fruitmart-backend/internal/domain"
	"fruitmart-backend/internal/usecase"
	"fruitmart-backend/pkg/utils"
)

type CartHandler struct {
	usecase     *usecase.CartUsecase
	maxQuantity int
}

func NewCartHandler(uc *usecase.CartUsecase, maxQuantity int) *CartHandler {
	return &CartHandler{usecase: uc, maxQuantity: maxQuantity}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	if sessionID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing session")
		return
	}

	cart, err := h.usecase.GetCart(r.Context(), sessionID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, cart)
}

type AddItemRequest struct {
	ProductID int `json:"productId"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	if sessionID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing session")
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	cart, err := h.usecase.AddToCart(r.Context(), sessionID, req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	utils.WriteJSON(w, http.StatusOK, cart)
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	if sessionID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing session")
		return
	}

	productID, err := strconv.Atoi(r.PathValue("productId"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Business rule guard at the boundary: the engine only floors at 1,
	// oversized deltas are rejected before they reach it.
	if req.Delta > h.maxQuantity || req.Delta < -h.maxQuantity {
		utils.WriteError(w, http.StatusBadRequest, "Quantity change out of range")
		return
	}

	cart, err := h.usecase.UpdateQuantity(r.Context(), sessionID, productID, req.Delta)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update quantity")
		return
	}

	utils.WriteJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	if sessionID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing session")
		return
	}

	productID, err := strconv.Atoi(r.PathValue("productId"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	cart, err := h.usecase.RemoveFromCart(r.Context(), sessionID, productID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to remove from cart")
		return
	}

	utils.WriteJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	if sessionID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing session")
		return
	}

	cart, err := h.usecase.ClearCart(r.Context(), sessionID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	utils.WriteJSON(w, http.StatusOK, cart)
}
