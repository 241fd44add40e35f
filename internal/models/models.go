package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

// User is the only collection the service reads typed fields from: the
// role gate branches on Role and the admin-check route on Email. Everything
// else the account document carries is written and served verbatim.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"  json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email"          json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Payment is the checkout settlement record. CartIDs lists the cart
// documents the purchase covers; settlement removes exactly those.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"           json:"_id,omitempty"`
	Email         string             `bson:"email"                   json:"email"`
	Price         float64            `bson:"price"                   json:"price"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          string             `bson:"date,omitempty"          json:"date,omitempty"`
	CartIDs       []string           `bson:"cartIds"                 json:"cartIds"`
	MenuItemIDs   []string           `bson:"menuItemIds,omitempty"   json:"menuItemIds,omitempty"`
	Status        string             `bson:"status,omitempty"        json:"status,omitempty"`
}
