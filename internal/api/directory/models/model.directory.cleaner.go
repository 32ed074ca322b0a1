package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cleaner - nhân viên dọn dẹp trong danh bạ.
// Tư cách pool (priority, capacity, buffer) nằm ở CleanerGroupAssignment,
// không nằm ở đây.
type Cleaner struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	DisplayName string             `json:"displayName" bson:"displayName" index:"single:1"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
