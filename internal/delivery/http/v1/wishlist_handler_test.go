package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitmart-backend/internal/domain"
	infracache "fruitmart-backend/internal/infrastructure/cache"
	"fruitmart-backend/internal/repository/memory"
	"fruitmart-backend/internal/usecase"
)

func newWishlistHandler() *WishlistHandler {
	store := infracache.NewMemoryCache(time.Minute, time.Minute)
	repo := memory.NewWishlistRepository(store, time.Minute)
	catalogRepo := memory.NewCatalogRepository(testCatalog())
	return NewWishlistHandler(usecase.NewWishlistUsecase(repo, catalogRepo))
}

func TestWishlistHandlerAddAndGet(t *testing.T) {
	h := newWishlistHandler()

	add := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/wishlist", strings.NewReader(`{"productId":1}`)))
	rec := httptest.NewRecorder()
	h.AddToWishlist(rec, add)
	require.Equal(t, http.StatusOK, rec.Code)

	// Second add of the same id is accepted and changes nothing.
	again := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/wishlist", strings.NewReader(`{"productId":1}`)))
	h.AddToWishlist(httptest.NewRecorder(), again)

	get := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/wishlist", nil))
	rec = httptest.NewRecorder()
	h.GetMyWishlist(rec, get)
	require.Equal(t, http.StatusOK, rec.Code)

	var wishlist domain.Wishlist
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&wishlist))
	require.Len(t, wishlist.Items, 1)
	assert.Equal(t, 1, wishlist.Items[0].ID)
}

func TestWishlistHandlerAddUnknownProduct(t *testing.T) {
	h := newWishlistHandler()

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/wishlist", strings.NewReader(`{"productId":42}`)))
	rec := httptest.NewRecorder()
	h.AddToWishlist(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWishlistHandlerContains(t *testing.T) {
	h := newWishlistHandler()

	add := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/wishlist", strings.NewReader(`{"productId":1}`)))
	h.AddToWishlist(httptest.NewRecorder(), add)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/wishlist/contains/1", nil))
	req.SetPathValue("productId", "1")
	rec := httptest.NewRecorder()
	h.Contains(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp["wishlisted"])
}

func TestWishlistHandlerRemove(t *testing.T) {
	h := newWishlistHandler()

	add := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/wishlist", strings.NewReader(`{"productId":1}`)))
	h.AddToWishlist(httptest.NewRecorder(), add)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/wishlist/1", nil))
	req.SetPathValue("productId", "1")
	rec := httptest.NewRecorder()
	h.RemoveFromWishlist(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	check := withSession(httptest.NewRequest(http.MethodGet, "/api/v1/wishlist/contains/1", nil))
	check.SetPathValue("productId", "1")
	rec = httptest.NewRecorder()
	h.Contains(rec, check)

	var resp map[string]bool
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp["wishlisted"])
}
