package server

import (
	"net/http"
	"strconv"

	"github.com/jrsteele09/go-saas-server/catalog"
)

type addFavoriteRequest struct {
	ProductSKU string `json:"product_sku"`
}

type addFavoriteResponse struct {
	Favorite *catalog.Favorite `json:"favorite,omitempty"`
	Existing bool              `json:"existing"`
}

// CreateCategoryHandler registers a taxonomy node.
func (s *Server) CreateCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category catalog.Category
		if err := decodeJSON(r, &category); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if category.Slug == "" {
			writeError(w, http.StatusBadRequest, "slug is required")
			return
		}

		if _, err := s.services.Catalog.CreateCategory(&category); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, &category)
	}
}

// ListCategoriesHandler lists taxonomy nodes, optionally filtered by the
// "parent" query parameter.
func (s *Server) ListCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var parentSlug *string
		if parent := r.URL.Query().Get("parent"); parent != "" {
			parentSlug = &parent
		}

		categories, err := s.services.Catalog.Categories(parentSlug, queryLimit(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

// CreateProductHandler registers a product.
func (s *Server) CreateProductHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var product catalog.Product
		if err := decodeJSON(r, &product); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if product.SKU == "" {
			writeError(w, http.StatusBadRequest, "sku is required")
			return
		}

		if _, err := s.services.Catalog.CreateProduct(&product); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, &product)
	}
}

// ListProductsHandler lists products filtered by the "category" and "q"
// (case-insensitive title search) query parameters.
func (s *Server) ListProductsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		products, err := s.services.Catalog.Products(query.Get("category"), query.Get("q"), queryLimit(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, products)
	}
}

// CreateOfferHandler registers a vendor offer for an existing product.
func (s *Server) CreateOfferHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var offer catalog.Offer
		if err := decodeJSON(r, &offer); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if offer.ProductSKU == "" {
			writeError(w, http.StatusBadRequest, "product_sku is required")
			return
		}

		if _, err := s.services.Catalog.CreateOffer(&offer); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, &offer)
	}
}

// ProductOffersHandler returns a SKU's offers together with the cheapest
// landed-price vendor.
func (s *Server) ProductOffersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := s.services.Catalog.OffersForProduct(r.PathValue("sku"), queryLimit(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// AddFavoriteHandler bookmarks a product for the caller. Repeats are
// idempotent.
func (s *Server) AddFavoriteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addFavoriteRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.ProductSKU == "" {
			writeError(w, http.StatusBadRequest, "product_sku is required")
			return
		}

		result, err := s.services.Catalog.AddFavorite(UserID(r), req.ProductSKU)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		status := http.StatusCreated
		if result.Existing {
			status = http.StatusOK
		}
		writeJSON(w, status, addFavoriteResponse{Favorite: result.Favorite, Existing: result.Existing})
	}
}

// ListFavoritesHandler lists the caller's bookmarked products.
func (s *Server) ListFavoritesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		favorites, err := s.services.Catalog.Favorites(UserID(r))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, favorites)
	}
}

// queryLimit parses the "limit" query parameter; zero means the service's
// default page size.
func queryLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return limit
}
