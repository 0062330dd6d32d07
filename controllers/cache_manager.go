package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jeemhub/fawazv7/models"
)

const (
	ProductCachePrefix     = "product:detail:"
	ProductListCachePrefix = "products:v:"
	CategoriesCacheKey     = "categories:all"
	CacheVersionKey        = "products:version"

	DefaultCacheTTL = 5 * time.Minute
)

// CacheManager handles read-through Redis caching for catalog responses.
// List keys embed a version counter; bumping the version on any write
// invalidates every cached list at once.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(redisClient *redis.Client) *CacheManager {
	return &CacheManager{
		redis: redisClient,
		ttl:   DefaultCacheTTL,
	}
}

func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	version, err := cm.redis.Get(ctx, CacheVersionKey).Int64()
	if err == redis.Nil {
		// First access seeds the version counter.
		if err := cm.redis.Set(ctx, CacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return version, nil
}

func (cm *CacheManager) listCacheKey(version int64, page, perPage int, filterKey string) string {
	return fmt.Sprintf("%s%d:page:%d:per:%d:f:%s", ProductListCachePrefix, version, page, perPage, filterKey)
}

// GetProductList retrieves a cached product list response.
func (cm *CacheManager) GetProductList(ctx context.Context, page, perPage int, filterKey string) (map[string]interface{}, bool) {
	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	cachedData, err := cm.redis.Get(ctx, cm.listCacheKey(version, page, perPage, filterKey)).Result()
	if err != nil {
		return nil, false
	}

	var response map[string]interface{}
	if err := json.Unmarshal([]byte(cachedData), &response); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return response, true
}

// SetProductListAsync caches a product list response asynchronously.
func (cm *CacheManager) SetProductListAsync(page, perPage int, filterKey string, response map[string]interface{}) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}

		jsonBytes, err := json.Marshal(response)
		if err != nil {
			zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(bgCtx, cm.listCacheKey(version, page, perPage, filterKey), jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// GetProduct retrieves a cached single product.
func (cm *CacheManager) GetProduct(ctx context.Context, productID string) (*models.Product, bool) {
	cachedData, err := cm.redis.Get(ctx, ProductCachePrefix+productID).Result()
	if err != nil {
		return nil, false
	}

	var product models.Product
	if err := json.Unmarshal([]byte(cachedData), &product); err != nil {
		return nil, false
	}
	return &product, true
}

// SetProductAsync caches a single product asynchronously.
func (cm *CacheManager) SetProductAsync(productID string, product *models.Product) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		productJSON, err := json.Marshal(product)
		if err != nil {
			zap.L().Warn("Failed to marshal product for cache", zap.Error(err), zap.String("product_id", productID))
			return
		}

		if err := cm.redis.Set(bgCtx, ProductCachePrefix+productID, productJSON, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product", zap.Error(err), zap.String("product_id", productID))
		}
	}()
}

// GetCategories retrieves the cached category list response.
func (cm *CacheManager) GetCategories(ctx context.Context) (map[string]interface{}, bool) {
	cachedData, err := cm.redis.Get(ctx, CategoriesCacheKey).Result()
	if err != nil {
		return nil, false
	}

	var response map[string]interface{}
	if err := json.Unmarshal([]byte(cachedData), &response); err != nil {
		return nil, false
	}
	return response, true
}

// SetCategoriesAsync caches the category list response asynchronously.
func (cm *CacheManager) SetCategoriesAsync(response map[string]interface{}) {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		jsonBytes, err := json.Marshal(response)
		if err != nil {
			zap.L().Warn("Failed to marshal categories for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(bgCtx, CategoriesCacheKey, jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache categories", zap.Error(err))
		}
	}()
}

// Invalidate bumps the list version and drops a product's detail entry after
// a catalog write.
func (cm *CacheManager) Invalidate(ctx context.Context, productID string) {
	if err := cm.redis.Incr(ctx, CacheVersionKey).Err(); err != nil {
		zap.L().Warn("Failed to bump product cache version", zap.Error(err))
	}
	if productID != "" {
		if err := cm.redis.Del(ctx, ProductCachePrefix+productID).Err(); err != nil {
			zap.L().Warn("Failed to drop product cache entry", zap.Error(err))
		}
	}
	if err := cm.redis.Del(ctx, CategoriesCacheKey).Err(); err != nil {
		zap.L().Warn("Failed to drop categories cache entry", zap.Error(err))
	}
}
