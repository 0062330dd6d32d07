package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a catalog classification with bilingual display fields.
type Category struct {
	ID            uuid.UUID `json:"id" bson:"_id"`
	Name          string    `json:"name" bson:"name"`
	NameAr        string    `json:"name_ar" bson:"name_ar"`
	Description   string    `json:"description" bson:"description"`
	DescriptionAr string    `json:"description_ar" bson:"description_ar"`
	ImageURL      string    `json:"image_url" bson:"image_url"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
