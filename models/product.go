package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog record with bilingual display fields.
type Product struct {
	ID               uuid.UUID `json:"id" bson:"_id"`
	Name             string    `json:"name" bson:"name"`
	NameAr           string    `json:"name_ar" bson:"name_ar"`
	Description      string    `json:"description" bson:"description"`
	DescriptionAr    string    `json:"description_ar" bson:"description_ar"`
	Price            float64   `json:"price" bson:"price"`
	CategoryID       uuid.UUID `json:"category_id" bson:"category_id"`
	ImageURL         string    `json:"image_url" bson:"image_url"`
	AdditionalImages []string  `json:"additional_images,omitempty" bson:"additional_images,omitempty"`
	InStock          bool      `json:"in_stock" bson:"in_stock"`
	Featured         bool      `json:"featured" bson:"featured"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}
