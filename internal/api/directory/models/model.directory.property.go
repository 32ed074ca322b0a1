package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property - bất động sản cần dọn dẹp, thuộc về một khách hàng
type Property struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID primitive.ObjectID `json:"clientId" bson:"clientId" index:"single:1"`
	Name     string             `json:"name" bson:"name"`
	Address  string             `json:"address,omitempty" bson:"address,omitempty"`
	IsActive bool               `json:"isActive" bson:"isActive"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
