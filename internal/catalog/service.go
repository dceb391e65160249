// Copyright (c) 2026 Melabook. All rights reserved.
// Author: dev@melabook.app

package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/melabook/melabook/internal/core/taxonomy"
	"github.com/melabook/melabook/internal/platform/apperr"
	"github.com/melabook/melabook/internal/platform/constants"
	"github.com/melabook/melabook/internal/platform/validate"
	"github.com/melabook/melabook/pkg/pagination"
	"github.com/melabook/melabook/pkg/slice"
	"github.com/melabook/melabook/pkg/slug"
)

// Service orchestrates the public catalog browse.
//
// The cache client may be nil (tests, degraded mode); every cache path
// guards against that and falls through to storage.
type Service struct {
	repo   Repository
	cache  *redis.Client
	global *taxonomy.Index
	logger *slog.Logger
}

// NewService constructs a new catalog [Service].
func NewService(repo Repository, cache *redis.Client, global *taxonomy.Index, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		global: global,
		logger: logger,
	}
}

/*
AddProduct validates and persists a new publicly browsable product.

Description: The category must exist in the global taxonomy so the product
lands on a real browse page. Affected cache keys are invalidated.

Parameters:
  - context: context.Context
  - product: Product (raw submission)

Returns:
  - Product: The stored product with its generated ID
  - error: apperr.ValidationError on rule failures, storage errors otherwise
*/
func (service *Service) AddProduct(context context.Context, product Product) (Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	product.Category = strings.TrimSpace(product.Category)

	v := &validate.Validator{}
	v.Required("name", product.Name).MaxLen("name", product.Name, 120)
	v.Required("category", product.Category)
	v.Required("stallId", product.StallID)
	v.NonNegativeAmount("price", product.Price)
	v.Custom("category", product.Category != "" && !service.global.HasCategory(product.Category),
		"Unknown product category")
	if err := v.Err(); err != nil {
		return Product{}, err
	}

	id, err := service.repo.Create(context, product)
	if err != nil {
		return Product{}, err
	}
	product.ID = id

	service.invalidate(context, product.Category)
	service.logger.InfoContext(context, "catalog_product_added",
		slog.String("product_id", id),
		slog.String("category", product.Category),
	)

	return product, nil
}

/*
Categories returns the browsable category list with product counts,
served from cache when warm.

Parameters:
  - context: context.Context

Returns:
  - []CategoryView: Categories that currently have products, sorted by name
  - error: Storage failures
*/
func (service *Service) Categories(context context.Context) ([]CategoryView, error) {
	if cached, ok := cacheGet[[]CategoryView](service, context, constants.RedisPrefixCatalogCategories); ok {
		return cached, nil
	}

	products, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, product := range products {
		counts[strings.TrimSpace(product.Category)]++
	}

	views := make([]CategoryView, 0, len(counts))
	for _, name := range service.global.Categories() {
		if counts[name] == 0 {
			continue
		}
		views = append(views, CategoryView{
			Name:         name,
			Slug:         slug.From(name),
			ProductCount: counts[name],
		})
	}

	service.cacheSet(context, constants.RedisPrefixCatalogCategories, views)
	return views, nil
}

/*
Browse returns one page of products for a category slug.

Parameters:
  - context: context.Context
  - categorySlug: string (e.g. "food-products")
  - params: pagination.Params

Returns:
  - []Product: The requested page
  - pagination.Meta: Page metadata over the full category
  - error: apperr.NotFound for unknown slugs, storage failures otherwise
*/
func (service *Service) Browse(context context.Context, categorySlug string, params pagination.Params) ([]Product, pagination.Meta, error) {
	category, ok := service.categoryBySlug(categorySlug)
	if !ok {
		return nil, pagination.Meta{}, apperr.NotFound("Category")
	}

	cacheKey := constants.RedisPrefixCatalogProducts + categorySlug
	matching, cached := cacheGet[[]Product](service, context, cacheKey)
	if !cached {
		products, err := service.repo.List(context)
		if err != nil {
			return nil, pagination.Meta{}, err
		}

		matching = slice.Filter(products, func(product Product) bool {
			return strings.TrimSpace(product.Category) == category
		})
		service.cacheSet(context, cacheKey, matching)
	}

	total := len(matching)
	meta := pagination.NewMeta(params.Page, params.Limit, total)

	start := params.Offset()
	if start >= total {
		return []Product{}, meta, nil
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	return matching[start:end], meta, nil
}

/*
StallProducts returns every product of one stall, uncached.

Parameters:
  - context: context.Context
  - stallID: string

Returns:
  - []Product: The stall's products
  - error: Storage failures
*/
func (service *Service) StallProducts(context context.Context, stallID string) ([]Product, error) {
	if strings.TrimSpace(stallID) == "" {
		return nil, validate.RequiredError("stallId", "This field is required")
	}
	return service.repo.ListByStall(context, stallID)
}

// # Cache Plumbing

// categoryBySlug resolves a URL slug back to its taxonomy category name.
func (service *Service) categoryBySlug(categorySlug string) (string, bool) {
	for _, name := range service.global.Categories() {
		if slug.From(name) == categorySlug {
			return name, true
		}
	}
	return "", false
}

// cacheGet fetches and decodes a cached value. Misses and cache errors both
// report !ok; the cache is best-effort.
func cacheGet[T any](service *Service, context context.Context, key string) (T, bool) {
	var zero T
	if service.cache == nil {
		return zero, false
	}

	payload, err := service.cache.Get(context, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			service.logger.WarnContext(context, "catalog_cache_read_failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
		return zero, false
	}

	var value T
	if err := json.Unmarshal(payload, &value); err != nil {
		return zero, false
	}
	return value, true
}

func (service *Service) cacheSet(context context.Context, key string, value any) {
	if service.cache == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := service.cache.Set(context, key, payload, constants.CatalogCacheTTL).Err(); err != nil {
		service.logger.WarnContext(context, "catalog_cache_write_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// invalidate drops the cache keys affected by a product write.
func (service *Service) invalidate(context context.Context, category string) {
	if service.cache == nil {
		return
	}

	keys := []string{
		constants.RedisPrefixCatalogCategories,
		constants.RedisPrefixCatalogProducts + slug.From(category),
	}
	if err := service.cache.Del(context, keys...).Err(); err != nil {
		service.logger.WarnContext(context, "catalog_cache_invalidate_failed",
			slog.Any("error", err),
		)
	}
}
