package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jeemhub/fawazv7/models"
)

// ErrNotFound is returned when a catalog record does not exist.
var ErrNotFound = errors.New("record not found")

// ProductFilter narrows a product listing.
type ProductFilter struct {
	CategoryID uuid.UUID
	Featured   *bool
	InStock    *bool
	Page       int
	PerPage    int
}

// ProductRepository is the catalog data access contract for products.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Find(ctx context.Context, filter ProductFilter) ([]*models.Product, int64, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type MongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		collection: db.Collection("products"),
	}
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Find lists products newest first, matching the storefront's default order.
func (r *MongoProductRepository) Find(ctx context.Context, filter ProductFilter) ([]*models.Product, int64, error) {
	query := bson.M{}
	if filter.CategoryID != uuid.Nil {
		query["category_id"] = filter.CategoryID
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}
	if filter.InStock != nil {
		query["in_stock"] = *filter.InStock
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.PerPage > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		findOptions.SetLimit(int64(filter.PerPage)).SetSkip(int64((page - 1) * filter.PerPage))
	}

	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

func (r *MongoProductRepository) Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error) {
	updates["updated_at"] = time.Now().UTC()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
