// Package docrepo implements the catalog repositories on top of the
// document store.
package docrepo

import (
	"github.com/jrsteele09/go-saas-server/catalog"
	"github.com/jrsteele09/go-saas-server/internal/errors"
	"github.com/jrsteele09/go-saas-server/store"
)

const (
	CategoryCollection = "category"
	ProductCollection  = "product"
	OfferCollection    = "offer"
	FavoriteCollection = "favorite"
)

var (
	CategoryIndexes = [][]string{{"slug"}}
	ProductIndexes  = [][]string{{"sku"}}
	FavoriteIndexes = [][]string{{"user_id", "product_sku"}}
)

type CategoryRepo struct {
	store store.Store
}

var _ catalog.CategoryRepo = (*CategoryRepo)(nil)

func NewCategoryRepo(s store.Store) *CategoryRepo {
	return &CategoryRepo{store: s}
}

func (r *CategoryRepo) Insert(c *catalog.Category) (string, error) {
	id, err := r.store.Insert(CategoryCollection, store.Document{
		"slug":        c.Slug,
		"title":       c.Title,
		"icon":        c.Icon,
		"parent_slug": c.ParentSlug,
	})
	if err != nil {
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			return "", errors.ErrCategoryExists
		}
		return "", errors.Wrapf(err, "[CategoryRepo.Insert] store.Insert")
	}
	c.ID = id
	return id, nil
}

func (r *CategoryRepo) List(parentSlug *string, limit int) ([]*catalog.Category, error) {
	filter := store.Filter{}
	if parentSlug != nil {
		filter["parent_slug"] = *parentSlug
	}
	docs, err := r.store.Find(CategoryCollection, filter, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "[CategoryRepo.List] store.Find")
	}
	categories := make([]*catalog.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, categoryFromDocument(doc))
	}
	return categories, nil
}

type ProductRepo struct {
	store store.Store
}

var _ catalog.ProductRepo = (*ProductRepo)(nil)

func NewProductRepo(s store.Store) *ProductRepo {
	return &ProductRepo{store: s}
}

func (r *ProductRepo) Insert(p *catalog.Product) (string, error) {
	doc := store.Document{
		"sku":           p.SKU,
		"title":         p.Title,
		"description":   p.Description,
		"category_slug": p.CategorySlug,
		"brand":         p.Brand,
		"images":        append([]string(nil), p.Images...),
	}
	attributes := make(map[string]string, len(p.Attributes))
	for k, v := range p.Attributes {
		attributes[k] = v
	}
	doc["attributes"] = attributes

	id, err := r.store.Insert(ProductCollection, doc)
	if err != nil {
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			return "", errors.ErrSKUExists
		}
		return "", errors.Wrapf(err, "[ProductRepo.Insert] store.Insert")
	}
	p.ID = id
	return id, nil
}

func (r *ProductRepo) GetBySKU(sku string) (*catalog.Product, error) {
	doc, err := r.store.FindOne(ProductCollection, store.Filter{"sku": sku})
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, errors.ErrProductNotFound
		}
		return nil, errors.Wrapf(err, "[ProductRepo.GetBySKU] store.FindOne")
	}
	return productFromDocument(doc), nil
}

func (r *ProductRepo) List(categorySlug, titleQuery string, limit int) ([]*catalog.Product, error) {
	filter := store.Filter{}
	if categorySlug != "" {
		filter["category_slug"] = categorySlug
	}
	if titleQuery != "" {
		filter["title"] = store.ContainsFold(titleQuery)
	}
	docs, err := r.store.Find(ProductCollection, filter, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "[ProductRepo.List] store.Find")
	}
	products := make([]*catalog.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, productFromDocument(doc))
	}
	return products, nil
}

type OfferRepo struct {
	store store.Store
}

var _ catalog.OfferRepo = (*OfferRepo)(nil)

func NewOfferRepo(s store.Store) *OfferRepo {
	return &OfferRepo{store: s}
}

func (r *OfferRepo) Insert(o *catalog.Offer) (string, error) {
	doc := store.Document{
		"product_sku": o.ProductSKU,
		"vendor":      o.Vendor,
		"vendor_url":  o.VendorURL,
		"price":       o.Price,
		"shipping":    o.Shipping,
		"currency":    o.Currency,
		"in_stock":    o.InStock,
	}
	if o.Rating != nil {
		doc["rating"] = *o.Rating
	}
	id, err := r.store.Insert(OfferCollection, doc)
	if err != nil {
		return "", errors.Wrapf(err, "[OfferRepo.Insert] store.Insert")
	}
	o.ID = id
	return id, nil
}

func (r *OfferRepo) ListBySKU(sku string, limit int) ([]*catalog.Offer, error) {
	docs, err := r.store.Find(OfferCollection, store.Filter{"product_sku": sku}, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "[OfferRepo.ListBySKU] store.Find")
	}
	offers := make([]*catalog.Offer, 0, len(docs))
	for _, doc := range docs {
		offers = append(offers, offerFromDocument(doc))
	}
	return offers, nil
}

type FavoriteRepo struct {
	store store.Store
}

var _ catalog.FavoriteRepo = (*FavoriteRepo)(nil)

func NewFavoriteRepo(s store.Store) *FavoriteRepo {
	return &FavoriteRepo{store: s}
}

func (r *FavoriteRepo) Insert(f *catalog.Favorite) (string, error) {
	id, err := r.store.Insert(FavoriteCollection, store.Document{
		"user_id":     f.UserID,
		"product_sku": f.ProductSKU,
	})
	if err != nil {
		var dup *store.DuplicateError
		if errors.As(err, &dup) {
			return "", errors.ErrAlreadyExists
		}
		return "", errors.Wrapf(err, "[FavoriteRepo.Insert] store.Insert")
	}
	f.ID = id
	return id, nil
}

func (r *FavoriteRepo) ListByUser(userID string, limit int) ([]*catalog.Favorite, error) {
	docs, err := r.store.Find(FavoriteCollection, store.Filter{"user_id": userID}, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "[FavoriteRepo.ListByUser] store.Find")
	}
	favorites := make([]*catalog.Favorite, 0, len(docs))
	for _, doc := range docs {
		favorites = append(favorites, favoriteFromDocument(doc))
	}
	return favorites, nil
}

func categoryFromDocument(doc store.Document) *catalog.Category {
	c := &catalog.Category{}
	c.ID, _ = doc["_id"].(string)
	c.Slug, _ = doc["slug"].(string)
	c.Title, _ = doc["title"].(string)
	c.Icon, _ = doc["icon"].(string)
	c.ParentSlug, _ = doc["parent_slug"].(string)
	return c
}

func productFromDocument(doc store.Document) *catalog.Product {
	p := &catalog.Product{Images: []string{}, Attributes: map[string]string{}}
	p.ID, _ = doc["_id"].(string)
	p.SKU, _ = doc["sku"].(string)
	p.Title, _ = doc["title"].(string)
	p.Description, _ = doc["description"].(string)
	p.CategorySlug, _ = doc["category_slug"].(string)
	p.Brand, _ = doc["brand"].(string)
	if images, ok := doc["images"].([]string); ok {
		p.Images = images
	}
	if attributes, ok := doc["attributes"].(map[string]string); ok {
		p.Attributes = attributes
	}
	return p
}

func offerFromDocument(doc store.Document) *catalog.Offer {
	o := &catalog.Offer{}
	o.ID, _ = doc["_id"].(string)
	o.ProductSKU, _ = doc["product_sku"].(string)
	o.Vendor, _ = doc["vendor"].(string)
	o.VendorURL, _ = doc["vendor_url"].(string)
	o.Price, _ = doc["price"].(float64)
	o.Shipping, _ = doc["shipping"].(float64)
	o.Currency, _ = doc["currency"].(string)
	o.InStock, _ = doc["in_stock"].(bool)
	if rating, ok := doc["rating"].(float64); ok {
		o.Rating = &rating
	}
	return o
}

func favoriteFromDocument(doc store.Document) *catalog.Favorite {
	f := &catalog.Favorite{}
	f.ID, _ = doc["_id"].(string)
	f.UserID, _ = doc["user_id"].(string)
	f.ProductSKU, _ = doc["product_sku"].(string)
	return f
}
