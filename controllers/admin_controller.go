package controllers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeemhub/fawazv7/services"
)

// Presign limits
const (
	DefaultPresignExpiry = 15 * time.Minute
	MaxPresignExpiry     = time.Hour
)

var allowedImageContentTypes = map[string]bool{
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/png":     true,
	"image/webp":    true,
	"image/gif":     true,
	"image/svg+xml": true,
}

// ImagePresigner issues presigned upload URLs for the photo bucket.
type ImagePresigner interface {
	PresignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, map[string]string, error)
	PublicURL(key string) string
}

// CreateProductRequest is the admin payload for creating a product.
type CreateProductRequest struct {
	Name             string   `json:"name" validate:"required"`
	NameAr           string   `json:"name_ar" validate:"required"`
	Description      string   `json:"description"`
	DescriptionAr    string   `json:"description_ar"`
	Price            float64  `json:"price" validate:"required,gt=0"`
	CategoryID       string   `json:"category_id" validate:"required,uuid"`
	ImageURL         string   `json:"image_url"`
	AdditionalImages []string `json:"additional_images"`
	InStock          bool     `json:"in_stock"`
	Featured         bool     `json:"featured"`
}

// CreateCategoryRequest is the admin payload for creating a category.
type CreateCategoryRequest struct {
	Name          string `json:"name" validate:"required"`
	NameAr        string `json:"name_ar" validate:"required"`
	Description   string `json:"description"`
	DescriptionAr string `json:"description_ar"`
	ImageURL      string `json:"image_url"`
}

// AdminController handles catalog writes and image upload presigning.
type AdminController struct {
	catalog   services.CatalogAPI
	cache     *CacheManager
	presigner ImagePresigner
	validate  *validator.Validate
}

func NewAdminController(catalog services.CatalogAPI, cache *CacheManager, presigner ImagePresigner) *AdminController {
	return &AdminController{
		catalog:   catalog,
		cache:     cache,
		presigner: presigner,
		validate:  validator.New(),
	}
}

// CreateProduct handles POST /admin/products
func (ac *AdminController) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	if err := ac.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": err.Error()})
		return
	}

	categoryID, _ := uuid.Parse(req.CategoryID)
	product, svcErr := ac.catalog.CreateProduct(c.Request.Context(), services.ProductCreateRequest{
		Name:             req.Name,
		NameAr:           req.NameAr,
		Description:      req.Description,
		DescriptionAr:    req.DescriptionAr,
		Price:            req.Price,
		CategoryID:       categoryID,
		ImageURL:         req.ImageURL,
		AdditionalImages: req.AdditionalImages,
		InStock:          req.InStock,
		Featured:         req.Featured,
	})
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	if ac.cache != nil {
		ac.cache.Invalidate(c.Request.Context(), product.ID.String())
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PATCH /admin/products/:id
func (ac *AdminController) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil || len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update payload"})
		return
	}
	// Identity and audit fields are not writable through this endpoint.
	delete(updates, "_id")
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	if svcErr := ac.catalog.UpdateProduct(c.Request.Context(), id, updates); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	if ac.cache != nil {
		ac.cache.Invalidate(c.Request.Context(), id.String())
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// DeleteProduct handles DELETE /admin/products/:id
func (ac *AdminController) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	if svcErr := ac.catalog.DeleteProduct(c.Request.Context(), id); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	if ac.cache != nil {
		ac.cache.Invalidate(c.Request.Context(), id.String())
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// CreateCategory handles POST /admin/categories
func (ac *AdminController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	if err := ac.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": err.Error()})
		return
	}

	category, svcErr := ac.catalog.CreateCategory(c.Request.Context(), services.CategoryCreateRequest{
		Name:          req.Name,
		NameAr:        req.NameAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		ImageURL:      req.ImageURL,
	})
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	if ac.cache != nil {
		ac.cache.Invalidate(c.Request.Context(), "")
	}
	c.JSON(http.StatusCreated, category)
}

// DeleteCategory handles DELETE /admin/categories/:id
func (ac *AdminController) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
		return
	}

	if svcErr := ac.catalog.DeleteCategory(c.Request.Context(), id); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	if ac.cache != nil {
		ac.cache.Invalidate(c.Request.Context(), "")
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// GetPresignUpload handles GET /admin/uploads/presign and returns a
// presigned PUT URL for direct upload to the photo bucket.
func (ac *AdminController) GetPresignUpload(c *gin.Context) {
	if ac.presigner == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image uploads are not configured"})
		return
	}

	filename := strings.TrimSpace(c.Query("filename"))
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filename query parameter is required"})
		return
	}

	contentType := strings.TrimSpace(c.Query("content_type"))
	if !allowedImageContentTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content type. Allowed: jpeg, jpg, png, webp, gif, svg"})
		return
	}

	expiry := DefaultPresignExpiry
	if expiresStr := c.Query("expires"); expiresStr != "" {
		seconds, err := strconv.ParseInt(expiresStr, 10, 64)
		if err != nil || seconds <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expires value"})
			return
		}
		expiry = time.Duration(seconds) * time.Second
		if expiry > MaxPresignExpiry {
			expiry = MaxPresignExpiry
		}
	}

	key := fmt.Sprintf("images/%d_%s", time.Now().UnixMilli(), filepath.Base(filename))

	uploadURL, headers, err := ac.presigner.PresignPut(c.Request.Context(), key, contentType, expiry)
	if err != nil {
		zap.L().Error("Failed to generate presigned upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate presigned upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upload_url": uploadURL,
		"method":     "PUT",
		"headers":    headers,
		"key":        key,
		"public_url": ac.presigner.PublicURL(key),
		"expires_in": int(expiry.Seconds()),
	})
}
