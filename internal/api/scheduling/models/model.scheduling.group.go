// Package models - PropertyGroup và PropertyGroupMember thuộc domain Scheduling.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyGroup - nhóm bất động sản dùng chung quy tắc vận hành.
// Chỉ nhóm có AutoAssignEnabled = true mới tham gia phân công tự động.
type PropertyGroup struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name" index:"unique"`
	CheckInTime       string             `json:"checkInTime" bson:"checkInTime"`   // Giờ nhận phòng chuẩn "15:00"
	CheckOutTime      string             `json:"checkOutTime" bson:"checkOutTime"` // Giờ trả phòng chuẩn "11:00"
	IsActive          bool               `json:"isActive" bson:"isActive" index:"single:1"`
	AutoAssignEnabled bool               `json:"autoAssignEnabled" bson:"autoAssignEnabled"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// PropertyGroupMember - liên kết bất động sản vào nhóm.
// Một bất động sản thuộc tối đa một nhóm (unique index trên propertyId).
type PropertyGroupMember struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PropertyID primitive.ObjectID `json:"propertyId" bson:"propertyId" index:"unique"`
	GroupID    primitive.ObjectID `json:"groupId" bson:"groupId" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
