package catalog

import (
	interrors "github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/pkg/errors"
)

// Default listing limits, matching the public API's documented page sizes.
const (
	DefaultCategoryLimit = 100
	DefaultProductLimit  = 50
	DefaultOfferLimit    = 50
	DefaultFavoriteLimit = 500
)

// Repos holds all repository dependencies for the catalog Service.
type Repos struct {
	Categories CategoryRepo
	Products   ProductRepo
	Offers     OfferRepo
	Favorites  FavoriteRepo
}

// Service implements the product-catalog and offer-comparison operations.
type Service struct {
	repos Repos
}

// OffersResult pairs a SKU's offers with the cheapest landed price.
type OffersResult struct {
	Items []*Offer   `json:"items"`
	Best  *BestPrice `json:"best"`
}

// FavoriteResult reports whether the favorite already existed.
type FavoriteResult struct {
	Favorite *Favorite
	Existing bool
}

// NewService initializes the catalog Service with required dependencies.
func NewService(repos Repos) (*Service, error) {
	if repos.Categories == nil {
		return nil, errors.New("[catalog.NewService] Categories repo is required")
	}
	if repos.Products == nil {
		return nil, errors.New("[catalog.NewService] Products repo is required")
	}
	if repos.Offers == nil {
		return nil, errors.New("[catalog.NewService] Offers repo is required")
	}
	if repos.Favorites == nil {
		return nil, errors.New("[catalog.NewService] Favorites repo is required")
	}
	return &Service{repos: repos}, nil
}

// CreateCategory registers a taxonomy node. Slugs are globally unique.
func (s *Service) CreateCategory(category *Category) (string, error) {
	id, err := s.repos.Categories.Insert(category)
	if err != nil {
		if interrors.Is(err, interrors.ErrCategoryExists) {
			return "", interrors.ErrCategoryExists
		}
		return "", errors.Wrap(err, "[Service.CreateCategory] categories.Insert")
	}
	return id, nil
}

// Categories lists taxonomy nodes, optionally scoped to one parent.
func (s *Service) Categories(parentSlug *string, limit int) ([]*Category, error) {
	if limit <= 0 {
		limit = DefaultCategoryLimit
	}
	return s.repos.Categories.List(parentSlug, limit)
}

// CreateProduct registers a product. SKUs are globally unique.
func (s *Service) CreateProduct(product *Product) (string, error) {
	id, err := s.repos.Products.Insert(product)
	if err != nil {
		if interrors.Is(err, interrors.ErrSKUExists) {
			return "", interrors.ErrSKUExists
		}
		return "", errors.Wrap(err, "[Service.CreateProduct] products.Insert")
	}
	return id, nil
}

// Products lists products filtered by category and/or a case-insensitive
// title search term.
func (s *Service) Products(categorySlug, titleQuery string, limit int) ([]*Product, error) {
	if limit <= 0 {
		limit = DefaultProductLimit
	}
	return s.repos.Products.List(categorySlug, titleQuery, limit)
}

// CreateOffer registers a vendor offer. The referenced product must exist.
func (s *Service) CreateOffer(offer *Offer) (string, error) {
	if _, err := s.repos.Products.GetBySKU(offer.ProductSKU); err != nil {
		if interrors.Is(err, interrors.ErrProductNotFound) {
			return "", interrors.ErrProductNotFound
		}
		return "", errors.Wrap(err, "[Service.CreateOffer] products.GetBySKU")
	}
	if offer.Currency == "" {
		offer.Currency = "USD"
	}
	id, err := s.repos.Offers.Insert(offer)
	if err != nil {
		return "", errors.Wrap(err, "[Service.CreateOffer] offers.Insert")
	}
	return id, nil
}

// OffersForProduct returns the SKU's offers along with the best (lowest
// price plus shipping) vendor. Best is nil when no offers exist.
func (s *Service) OffersForProduct(sku string, limit int) (*OffersResult, error) {
	if limit <= 0 {
		limit = DefaultOfferLimit
	}
	offers, err := s.repos.Offers.ListBySKU(sku, limit)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.OffersForProduct] offers.ListBySKU")
	}

	result := &OffersResult{Items: offers}
	for _, offer := range offers {
		if result.Best == nil || offer.Total() < result.Best.Total {
			result.Best = &BestPrice{
				Vendor:   offer.Vendor,
				Total:    offer.Total(),
				Currency: offer.Currency,
			}
		}
	}
	return result, nil
}

// AddFavorite bookmarks a product for the user. Adding the same product
// twice is idempotent.
func (s *Service) AddFavorite(userID, productSKU string) (*FavoriteResult, error) {
	favorite := &Favorite{UserID: userID, ProductSKU: productSKU}
	if _, err := s.repos.Favorites.Insert(favorite); err != nil {
		if interrors.Is(err, interrors.ErrAlreadyExists) {
			return &FavoriteResult{Existing: true}, nil
		}
		return nil, errors.Wrap(err, "[Service.AddFavorite] favorites.Insert")
	}
	return &FavoriteResult{Favorite: favorite}, nil
}

// Favorites lists the user's bookmarked products.
func (s *Service) Favorites(userID string) ([]*Favorite, error) {
	return s.repos.Favorites.ListByUser(userID, DefaultFavoriteLimit)
}
