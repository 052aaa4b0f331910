package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"nayrana/internal/cache"
	apperrors "nayrana/internal/errors"
	"nayrana/internal/model"
	"nayrana/internal/repository"
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 5 * time.Minute
)

// ProductInput carries the insertable product fields. Server-assigned fields
// (id, created_at) are never part of it.
type ProductInput struct {
	Name        string
	Description string
	Price       int
	ImageURL    string
	ImageURLs   *string
	Category    string
	Stock       int
	IsFeatured  bool
}

// CatalogService handles product CRUD and the cached public listing.
type CatalogService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, in ProductInput) (*model.Product, error)
	Update(ctx context.Context, id uint, in ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type catalogService struct {
	products repository.ProductRepository
	cache    *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(products repository.ProductRepository, cacheClient *cache.Client) CatalogService {
	return &catalogService{products: products, cache: cacheClient}
}

// List returns the catalog, serving from cache when possible.
func (s *catalogService) List(ctx context.Context) ([]model.Product, error) {
	var cached []model.Product
	if hit, _ := s.cache.GetJSON(ctx, catalogCacheKey, &cached); hit {
		return cached, nil
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	_ = s.cache.SetJSON(ctx, catalogCacheKey, products, catalogCacheTTL)
	return products, nil
}

func (s *catalogService) Get(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

func (s *catalogService) Create(ctx context.Context, in ProductInput) (*model.Product, error) {
	if err := validateImageURLs(in.ImageURLs); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		ImageURLs:   in.ImageURLs,
		Category:    in.Category,
		Stock:       in.Stock,
		IsFeatured:  in.IsFeatured,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	_ = s.cache.Delete(ctx, catalogCacheKey)
	return product, nil
}

func (s *catalogService) Update(ctx context.Context, id uint, in ProductInput) (*model.Product, error) {
	if err := validateImageURLs(in.ImageURLs); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.ImageURL = in.ImageURL
	product.ImageURLs = in.ImageURLs
	product.Category = in.Category
	product.Stock = in.Stock
	product.IsFeatured = in.IsFeatured

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	_ = s.cache.Delete(ctx, catalogCacheKey)
	return product, nil
}

func (s *catalogService) Delete(ctx context.Context, id uint) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}
	_ = s.cache.Delete(ctx, catalogCacheKey)
	return nil
}

// validateImageURLs rejects image_urls values that would not round-trip as a
// JSON array of strings. Readers tolerate malformed stored values, but writers
// must not produce them.
func validateImageURLs(raw *string) error {
	if raw == nil || *raw == "" {
		return nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(*raw), &urls); err != nil {
		return apperrors.ErrInvalidImageURLs
	}
	return nil
}
