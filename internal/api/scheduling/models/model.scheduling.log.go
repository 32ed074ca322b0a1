// Package models - AssignmentLog thuộc domain Scheduling.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentLog - một dòng nhật ký quyết định phân công.
// Được ghi cho mọi kết quả chạy engine trừ trường hợp nhóm không bật auto-assign.
// ManualOverride luôn false khi tạo, chỉ được bật về sau bởi thao tác thủ công.
type AssignmentLog struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	TaskID      primitive.ObjectID  `json:"taskId" bson:"taskId" index:"single:1"`
	GroupID     primitive.ObjectID  `json:"groupId" bson:"groupId" index:"single:1"`
	CleanerID   *primitive.ObjectID `json:"cleanerId,omitempty" bson:"cleanerId,omitempty" index:"single:1"`
	CleanerName string              `json:"cleanerName,omitempty" bson:"cleanerName,omitempty"`

	Algorithm      string `json:"algorithm" bson:"algorithm"`
	Reason         string `json:"reason" bson:"reason"`
	Confidence     int    `json:"confidence" bson:"confidence"`
	ManualOverride bool   `json:"manualOverride" bson:"manualOverride"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
