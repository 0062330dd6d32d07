package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jeemhub/fawazv7/services"
)

// Validation constants
const (
	MaxPageSize   = 100
	MaxPageNumber = 1000000
)

// CatalogController serves the public product and category endpoints.
type CatalogController struct {
	catalog services.CatalogAPI
	cache   *CacheManager
}

func NewCatalogController(catalog services.CatalogAPI, cache *CacheManager) *CatalogController {
	return &CatalogController{
		catalog: catalog,
		cache:   cache,
	}
}

// parsePagination validates and parses pagination parameters.
func parsePagination(c *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 0, 0, errors.New("invalid page number")
	}
	if page > MaxPageNumber {
		page = MaxPageNumber
	}

	perPage, err := strconv.Atoi(c.DefaultQuery("perPage", "20"))
	if err != nil || perPage < 1 {
		return 0, 0, errors.New("invalid page size")
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}

	return page, perPage, nil
}

// parseListParams parses the optional catalog filters.
func parseListParams(c *gin.Context) (services.ListProductsParams, string, error) {
	params := services.ListProductsParams{}
	var keyParts []string

	if featuredStr := strings.TrimSpace(c.Query("featured")); featuredStr != "" {
		featured, err := strconv.ParseBool(featuredStr)
		if err != nil {
			return params, "", errors.New("invalid boolean value for 'featured'")
		}
		params.Featured = &featured
		keyParts = append(keyParts, "featured="+featuredStr)
	}

	if inStockStr := strings.TrimSpace(c.Query("in_stock")); inStockStr != "" {
		inStock, err := strconv.ParseBool(inStockStr)
		if err != nil {
			return params, "", errors.New("invalid boolean value for 'in_stock'")
		}
		params.InStock = &inStock
		keyParts = append(keyParts, "in_stock="+inStockStr)
	}

	if categoryStr := strings.TrimSpace(c.Query("categoryId")); categoryStr != "" {
		categoryID, err := uuid.Parse(categoryStr)
		if err != nil {
			return params, "", errors.New("invalid category ID format")
		}
		params.CategoryID = categoryID
		keyParts = append(keyParts, "category="+categoryID.String())
	}

	return params, strings.Join(keyParts, ","), nil
}

// GetProducts handles GET /products
func (cc *CatalogController) GetProducts(c *gin.Context) {
	page, perPage, err := parsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params, filterKey, err := parseListParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	params.Page = page
	params.PerPage = perPage

	if cc.cache != nil {
		if cached, ok := cc.cache.GetProductList(c.Request.Context(), page, perPage, filterKey); ok {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	products, total, svcErr := cc.catalog.ListProducts(c.Request.Context(), params)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	response := gin.H{
		"products": products,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	}

	if cc.cache != nil {
		cc.cache.SetProductListAsync(page, perPage, filterKey, response)
	}

	c.JSON(http.StatusOK, response)
}

// GetProductByID handles GET /products/:id
func (cc *CatalogController) GetProductByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	if cc.cache != nil {
		if product, ok := cc.cache.GetProduct(c.Request.Context(), id.String()); ok {
			c.JSON(http.StatusOK, product)
			return
		}
	}

	product, svcErr := cc.catalog.GetProduct(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	if cc.cache != nil {
		cc.cache.SetProductAsync(id.String(), product)
	}

	c.JSON(http.StatusOK, product)
}

// GetCategories handles GET /category
func (cc *CatalogController) GetCategories(c *gin.Context) {
	if cc.cache != nil {
		if cached, ok := cc.cache.GetCategories(c.Request.Context()); ok {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	categories, svcErr := cc.catalog.ListCategories(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	response := gin.H{
		"categories": categories,
		"total":      len(categories),
	}

	if cc.cache != nil {
		cc.cache.SetCategoriesAsync(response)
	}

	c.JSON(http.StatusOK, response)
}
