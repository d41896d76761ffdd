package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	AccountTypeAdmin  = "Admin"
	AccountTypeSeller = "Seller"
	AccountTypeBuyer  = "Buyer"
)

// User is the identity document; accountType is the source of truth for
// the role gates.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	AccountType string             `bson:"accountType,omitempty" json:"accountType,omitempty"`
	Verified    bool               `bson:"verified,omitempty" json:"verified,omitempty"`
}
