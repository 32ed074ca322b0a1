// Package models - Task thuộc domain Scheduling.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của Task
const (
	TaskStatusPending    = "pending"     // Chưa thực hiện
	TaskStatusInProgress = "in_progress" // Đang thực hiện
	TaskStatusCompleted  = "completed"   // Đã hoàn thành
)

// Task - một công việc dọn dẹp đã lên lịch.
// StartAt/EndAt là UnixMilli; mọi phép so sánh thời gian đều qua time.Time/time.Duration.
// Invariant: StartAt < EndAt, cả hai nằm trong ngày Date.
type Task struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PropertyID primitive.ObjectID `json:"propertyId" bson:"propertyId" index:"single:1"`
	Date       string             `json:"date" bson:"date" index:"single:1"` // Khóa ngày "2006-01-02"
	StartAt    int64              `json:"startAt" bson:"startAt" index:"single:1"`
	EndAt      int64              `json:"endAt" bson:"endAt"`
	Status     string             `json:"status" bson:"status" index:"single:1"`

	// Các trường phân công — chỉ được ghi bởi assignment engine
	AssignedCleanerID    *primitive.ObjectID `json:"assignedCleanerId,omitempty" bson:"assignedCleanerId,omitempty" index:"single:1"`
	AssignmentConfidence *int                `json:"assignmentConfidence,omitempty" bson:"assignmentConfidence,omitempty"`
	AutoAssigned         bool                `json:"autoAssigned" bson:"autoAssigned"`

	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
