package v1

import (
	"net/http"
	"strconv"

	"fruitmart-backend/internal/domain"
	"fruitmart-backend/internal/usecase"
	"fruitmart-backend/pkg/utils"
)

type CatalogHandler struct {
	catalogUC       *usecase.CatalogUsecase
	defaultPageSize int
}

func NewCatalogHandler(uc *usecase.CatalogUsecase, defaultPageSize int) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc, defaultPageSize: defaultPageSize}
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalogUC.GetCategories(r.Context())
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, cats)
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := utils.ParseInt(query.Get("limit"), h.defaultPageSize)
	if limit < 1 {
		limit = h.defaultPageSize
	}
	page := utils.ParseInt(query.Get("page"), 1)
	if page < 1 {
		page = 1
	}

	filter := domain.ProductFilter{
		Category: query.Get("category"),
		Query:    query.Get("q"),
		Sort:     query.Get("sort"),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	products, total, err := h.catalogUC.ListProducts(r.Context(), filter)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"data": products,
		"pagination": domain.Pagination{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

func (h *CatalogHandler) GetProductDetails(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	product, err := h.catalogUC.GetProductDetails(r.Context(), slug)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if product == nil {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.catalogUC.GetProductByID(r.Context(), id)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if product == nil {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, product)
}
