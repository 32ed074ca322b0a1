// Package models - CleanerGroupAssignment thuộc domain Scheduling.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CleanerGroupAssignment - tư cách thành viên của nhân viên trong pool phân công của nhóm.
// Priority thấp hơn = được ưu tiên hơn; trùng priority giữ thứ tự input (stable sort).
type CleanerGroupAssignment struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CleanerID         primitive.ObjectID `json:"cleanerId" bson:"cleanerId" index:"single:1,compound:cleaner_group_unique"`
	GroupID           primitive.ObjectID `json:"groupId" bson:"groupId" index:"single:1,compound:cleaner_group_unique"`
	CleanerName       string             `json:"cleanerName" bson:"cleanerName"`
	Priority          int                `json:"priority" bson:"priority"`
	MaxTasksPerDay    int                `json:"maxTasksPerDay" bson:"maxTasksPerDay"`       // Số task tối đa trong ngày (> 0)
	TravelTimeMinutes int                `json:"travelTimeMinutes" bson:"travelTimeMinutes"` // Buffer di chuyển giữa hai job (>= 0)
	IsActive          bool               `json:"isActive" bson:"isActive" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
