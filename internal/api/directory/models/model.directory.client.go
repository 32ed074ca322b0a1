// Package models - các model thuộc domain Directory (danh bạ).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client - khách hàng sở hữu bất động sản
type Client struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" index:"single:1"`
	Email    string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string             `json:"phone,omitempty" bson:"phone,omitempty"`
	IsActive bool               `json:"isActive" bson:"isActive"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
