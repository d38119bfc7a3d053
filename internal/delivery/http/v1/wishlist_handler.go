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

type WishlistHandler struct {
	usecase *usecase.WishlistUsecase
}

func NewWishlistHandler(usecase *usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{usecase: usecase}
}

func (h *WishlistHandler) GetMyWishlist(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	if sessionID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing session")
		return
	}

	wishlist, err := h.usecase.GetMyWishlist(r.Context(), sessionID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, wishlist)
}

type WishlistRequest struct {
	ProductID int `json:"productId"`
}

func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	if sessionID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing session")
		return
	}

	var req WishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.usecase.AddToWishlist(r.Context(), sessionID, req.ProductID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Failed to add to wishlist")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Added to wishlist"})
}

func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
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

	if err := h.usecase.RemoveFromWishlist(r.Context(), sessionID, productID); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to remove from wishlist")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Removed from wishlist"})
}

func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
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

	wishlisted, err := h.usecase.IsInWishlist(r.Context(), sessionID, productID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]bool{"wishlisted": wishlisted})
}
