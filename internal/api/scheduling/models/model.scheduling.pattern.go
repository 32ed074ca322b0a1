// Package models - AssignmentPattern thuộc domain Scheduling.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssignmentPattern - thống kê lịch sử phân công theo bucket (nhóm, nhân viên, thứ, giờ).
// Chỉ được ghi bởi batch pattern-learning qua MỘT lệnh upsert atomic duy nhất;
// engine đọc kèm trong context nhưng không dùng để quyết định (telemetry advisory).
type AssignmentPattern struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	GroupID   primitive.ObjectID `json:"groupId" bson:"groupId" index:"single:1,compound:pattern_bucket_unique"`
	CleanerID primitive.ObjectID `json:"cleanerId" bson:"cleanerId" index:"single:1,compound:pattern_bucket_unique"`
	Weekday   int                `json:"weekday" bson:"weekday" index:"compound:pattern_bucket_unique"` // 0 = Chủ nhật .. 6 = Thứ bảy
	Hour      int                `json:"hour" bson:"hour" index:"compound:pattern_bucket_unique"`       // 0-23

	SampleCount            int     `json:"sampleCount" bson:"sampleCount"`
	SuccessCount           int     `json:"successCount" bson:"successCount"`
	TotalCompletionMinutes int64   `json:"totalCompletionMinutes" bson:"totalCompletionMinutes"`
	AvgCompletionMinutes   float64 `json:"avgCompletionMinutes" bson:"avgCompletionMinutes"`
	PreferenceScore        float64 `json:"preferenceScore" bson:"preferenceScore"`
	SuccessRate            float64 `json:"successRate" bson:"successRate"`
	LastUpdatedAt          int64   `json:"lastUpdatedAt" bson:"lastUpdatedAt"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
