package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking carries the product fields denormalized at booking time; the
// productId is not validated against the products collection.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BuyerName       string             `bson:"buyerName,omitempty" json:"buyerName,omitempty"`
	BuyerEmail      string             `bson:"buyerEmail" json:"buyerEmail"`
	ProductID       string             `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName     string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	MeetingLocation string             `bson:"meetingLocation,omitempty" json:"meetingLocation,omitempty"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
