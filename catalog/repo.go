package catalog

// CategoryRepo defines the storage operations for categories. The slug
// carries a unique index; Insert surfaces a violation as ErrCategoryExists.
type CategoryRepo interface {
	Insert(category *Category) (string, error)
	// List returns categories, optionally filtered to children of
	// parentSlug. A nil parentSlug means no parent filter; a pointer to ""
	// selects root categories.
	List(parentSlug *string, limit int) ([]*Category, error)
}

// ProductRepo defines the storage operations for products. The SKU carries
// a unique index; Insert surfaces a violation as ErrSKUExists.
type ProductRepo interface {
	Insert(product *Product) (string, error)
	GetBySKU(sku string) (*Product, error)
	// List filters by category slug and case-insensitive title substring;
	// empty strings disable the respective filter.
	List(categorySlug, titleQuery string, limit int) ([]*Product, error)
}

// OfferRepo defines the storage operations for offers.
type OfferRepo interface {
	Insert(offer *Offer) (string, error)
	ListBySKU(sku string, limit int) ([]*Offer, error)
}

// FavoriteRepo defines the storage operations for favorites. The
// (user_id, product_sku) pair carries a unique index; Insert surfaces a
// violation as ErrAlreadyExists.
type FavoriteRepo interface {
	Insert(favorite *Favorite) (string, error)
	ListByUser(userID string, limit int) ([]*Favorite, error)
}
