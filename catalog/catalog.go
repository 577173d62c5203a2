package catalog

// Category is a node in the product taxonomy, addressed by a url-friendly
// unique slug. ParentSlug links child categories to their parent.
type Category struct {
	ID         string `json:"_id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Icon       string `json:"icon,omitempty"`
	ParentSlug string `json:"parent_slug,omitempty"`
}

// Product is a catalog entry identified by a unique SKU.
type Product struct {
	ID           string            `json:"_id"`
	SKU          string            `json:"sku"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	CategorySlug string            `json:"category_slug"`
	Brand        string            `json:"brand,omitempty"`
	Images       []string          `json:"images"`
	Attributes   map[string]string `json:"attributes"`
}

// Offer is a vendor's listing for a product SKU.
type Offer struct {
	ID         string   `json:"_id"`
	ProductSKU string   `json:"product_sku"`
	Vendor     string   `json:"vendor"`
	VendorURL  string   `json:"vendor_url"`
	Price      float64  `json:"price"`
	Shipping   float64  `json:"shipping"`
	Currency   string   `json:"currency"`
	InStock    bool     `json:"in_stock"`
	Rating     *float64 `json:"rating"`
}

// Total is the landed price of the offer.
func (o *Offer) Total() float64 {
	return o.Price + o.Shipping
}

// BestPrice summarizes the cheapest offer (price plus shipping) for a SKU.
type BestPrice struct {
	Vendor   string  `json:"vendor"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// Favorite bookmarks a product for a user. At most one row per
// (user, product SKU) pair.
type Favorite struct {
	ID         string `json:"_id"`
	UserID     string `json:"user_id"`
	ProductSKU string `json:"product_sku"`
}
