package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a second-hand listing. Seller and Category are loose
// references by email and name; nothing checks they resolve.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Seller        string             `bson:"seller" json:"seller"`
	Category      string             `bson:"category" json:"category"`
	ResalePrice   float64            `bson:"resalePrice,omitempty" json:"resalePrice,omitempty"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	YearsOfUse    int                `bson:"yearsOfUse,omitempty" json:"yearsOfUse,omitempty"`
	Condition     string             `bson:"condition,omitempty" json:"condition,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Advertised    bool               `bson:"advertised,omitempty" json:"advertised,omitempty"`
	PostedAt      time.Time          `bson:"postedAt,omitempty" json:"postedAt,omitempty"`
}
