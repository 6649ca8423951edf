// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/gearshop-backend/internal/config"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a product does not exist
var ErrNotFound = errors.New("product not found")

const productsCacheKey = "catalog:products"

// Service handles catalog business logic. The catalog is read-only from
// the storefront's perspective; products are seeded externally.
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
	}
}

// ListRequest represents catalog list query parameters
type ListRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Page     int    `form:"page,default=1"`
}

// ListResponse represents a filtered catalog page
type ListResponse struct {
	Products   []Product  `json:"products"`
	Categories []string   `json:"categories"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// GetProducts retrieves the full catalog, served from the Redis cache
// when possible.
func (s *Service) GetProducts(ctx context.Context) ([]Product, error) {
	if cached, err := s.redisClient.Get(ctx, productsCacheKey).Result(); err == nil {
		var products []Product
		if err := json.Unmarshal([]byte(cached), &products); err == nil {
			return products, nil
		}
	}

	var products []Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	// Cache is best effort; a write failure never fails the read
	if data, err := json.Marshal(products); err == nil {
		s.redisClient.Set(ctx, productsCacheKey, data, s.config.Catalog.CacheTTL)
	}

	return products, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	result := s.db.WithContext(ctx).Where("id = ?", id).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &product, nil
}

// List retrieves a filtered, paginated catalog page
func (s *Service) List(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	products, err := s.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterProducts(products, req.Search, req.Category)
	page, pagination := paginate(filtered, req.Page, s.config.Catalog.PageSize)

	return &ListResponse{
		Products:   page,
		Categories: categoriesOf(products),
		Pagination: pagination,
	}, nil
}

// Categories returns the distinct categories present in the catalog
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	return categoriesOf(products), nil
}

// filterProducts matches the search text against name and description and
// applies the category filter. An empty category (or "all") matches everything.
func filterProducts(products []Product, search, category string) []Product {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// paginate slices a fixed-size page out of the filtered set. Pages are
// 1-based; an out-of-range page yields an empty slice.
func paginate(products []Product, page, pageSize int) ([]Product, Pagination) {
	if page < 1 {
		page = 1
	}

	total := len(products)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	pagination := Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && totalPages > 0,
	}

	return products[start:end], pagination
}

// categoriesOf returns unique categories in first-seen order
func categoriesOf(products []Product) []string {
	seen := make(map[string]bool, len(products))
	categories := make([]string, 0)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
