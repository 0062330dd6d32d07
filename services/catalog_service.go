package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	apperrors "github.com/jeemhub/fawazv7/common/errors"
	"github.com/jeemhub/fawazv7/imageutil"
	"github.com/jeemhub/fawazv7/models"
	"github.com/jeemhub/fawazv7/repository"
)

// ListProductsParams defines the parameters for listing products.
type ListProductsParams struct {
	Page       int
	PerPage    int
	Featured   *bool
	InStock    *bool
	CategoryID uuid.UUID
}

// ProductCreateRequest carries an admin product creation.
type ProductCreateRequest struct {
	Name             string
	NameAr           string
	Description      string
	DescriptionAr    string
	Price            float64
	CategoryID       uuid.UUID
	ImageURL         string
	AdditionalImages []string
	InStock          bool
	Featured         bool
}

// CategoryCreateRequest carries an admin category creation.
type CategoryCreateRequest struct {
	Name          string
	NameAr        string
	Description   string
	DescriptionAr string
	ImageURL      string
}

// CatalogAPI is the catalog surface consumed by controllers.
type CatalogAPI interface {
	ListProducts(ctx context.Context, params ListProductsParams) ([]*models.Product, int64, *ServiceError)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError)
	ListCategories(ctx context.Context) ([]*models.Category, *ServiceError)
	CreateProduct(ctx context.Context, req ProductCreateRequest) (*models.Product, *ServiceError)
	UpdateProduct(ctx context.Context, id uuid.UUID, updates map[string]interface{}) *ServiceError
	DeleteProduct(ctx context.Context, id uuid.UUID) *ServiceError
	CreateCategory(ctx context.Context, req CategoryCreateRequest) (*models.Category, *ServiceError)
	DeleteCategory(ctx context.Context, id uuid.UUID) *ServiceError
}

// CatalogService reads product and category records from the hosted store
// and normalizes image references on the way out.
type CatalogService struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	fallbackImage string
	logger        *zap.Logger
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	fallbackImage string,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		fallbackImage: fallbackImage,
		logger:        logger,
	}
}

// normalizeProduct substitutes the fallback asset for empty or untrusted
// image references and drops invalid additional images.
func (s *CatalogService) normalizeProduct(p *models.Product) {
	images := imageutil.ProcessImages(p.ImageURL, p.AdditionalImages, s.fallbackImage)
	p.ImageURL = images[0]
	if len(images) > 1 {
		p.AdditionalImages = images[1:]
	} else {
		p.AdditionalImages = nil
	}
}

// ListProducts lists catalog products newest first.
func (s *CatalogService) ListProducts(ctx context.Context, params ListProductsParams) ([]*models.Product, int64, *ServiceError) {
	filter := repository.ProductFilter{
		CategoryID: params.CategoryID,
		Featured:   params.Featured,
		InStock:    params.InStock,
		Page:       params.Page,
		PerPage:    params.PerPage,
	}

	products, total, err := s.productRepo.Find(ctx, filter)
	if err != nil {
		s.logger.Error("ListProducts failed", zap.Error(err))
		return nil, 0, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to fetch products"}
	}

	for _, p := range products {
		s.normalizeProduct(p)
	}
	return products, total, nil
}

// GetProduct returns one product record or a 404-status error.
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err == repository.ErrNotFound {
		return nil, FromAppError(apperrors.ErrProductNotFound)
	}
	if err != nil {
		s.logger.Error("GetProduct failed", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to fetch product"}
	}

	s.normalizeProduct(product)
	return product, nil
}

// ListCategories lists all categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]*models.Category, *ServiceError) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("ListCategories failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to fetch categories"}
	}

	for _, c := range categories {
		c.ImageURL = imageutil.Resolve(c.ImageURL, s.fallbackImage)
	}
	return categories, nil
}

// CreateProduct inserts a product after checking the category exists.
func (s *CatalogService) CreateProduct(ctx context.Context, req ProductCreateRequest) (*models.Product, *ServiceError) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if err == repository.ErrNotFound {
			return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "category not found"}
		}
		s.logger.Error("CreateProduct category lookup failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to create product"}
	}

	product := &models.Product{
		ID:               uuid.New(),
		Name:             req.Name,
		NameAr:           req.NameAr,
		Description:      req.Description,
		DescriptionAr:    req.DescriptionAr,
		Price:            req.Price,
		CategoryID:       req.CategoryID,
		ImageURL:         req.ImageURL,
		AdditionalImages: req.AdditionalImages,
		InStock:          req.InStock,
		Featured:         req.Featured,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("CreateProduct failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to create product"}
	}

	s.normalizeProduct(product)
	return product, nil
}

// UpdateProduct applies partial updates to a product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, updates map[string]interface{}) *ServiceError {
	matched, err := s.productRepo.Update(ctx, id, bson.M(updates))
	if err != nil {
		s.logger.Error("UpdateProduct failed", zap.String("id", id.String()), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to update product"}
	}
	if matched == 0 {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "product not found"}
	}
	return nil
}

// DeleteProduct removes a product.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) *ServiceError {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("DeleteProduct failed", zap.String("id", id.String()), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to delete product"}
	}
	if deleted == 0 {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "product not found"}
	}
	return nil
}

// CreateCategory inserts a category.
func (s *CatalogService) CreateCategory(ctx context.Context, req CategoryCreateRequest) (*models.Category, *ServiceError) {
	category := &models.Category{
		ID:            uuid.New(),
		Name:          req.Name,
		NameAr:        req.NameAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		ImageURL:      req.ImageURL,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.logger.Error("CreateCategory failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to create category"}
	}
	return category, nil
}

// DeleteCategory removes a category.
func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) *ServiceError {
	deleted, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("DeleteCategory failed", zap.String("id", id.String()), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to delete category"}
	}
	if deleted == 0 {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "category not found"}
	}
	return nil
}
