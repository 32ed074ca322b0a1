// Package models - các kiểu input/output của assignment engine.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các tag thuật toán gắn vào AssignmentResult
const (
	AlgorithmPriorityV1 = "priority_v1" // Thuật toán priority-saturation hiện hành
	AlgorithmNone       = "none"        // Không áp dụng (nhóm không bật auto-assign)
	AlgorithmError      = "error"       // Lỗi hạ tầng trong quá trình phân công
)

// Các reason chuẩn của thuật toán
const (
	ReasonNoCleaners           = "no available cleaners"
	ReasonNoCleanersAfterCheck = "no available cleaners after priority check"
)

// AssignmentContext - toàn bộ input quyết định cho một task.
// Được ContextBuilder lắp ráp, read-only với mọi tầng phía sau.
type AssignmentContext struct {
	Task               Task                     // Task cần phân công
	Group              PropertyGroup            // Nhóm của bất động sản
	CleanerAssignments []CleanerGroupAssignment // Pool nhân viên của nhóm (chưa lọc active)
	ExistingTasks      []Task                   // Mọi task cùng ngày (mọi nhân viên), KHÔNG gồm chính task ứng viên
	Patterns           []AssignmentPattern      // Telemetry advisory, không tham gia quyết định
}

// AssignmentResult - output của engine cho một task.
// CleanerID nil nghĩa là không chọn được ai; Reason giải thích lý do.
type AssignmentResult struct {
	TaskID      primitive.ObjectID  `json:"taskId"`
	CleanerID   *primitive.ObjectID `json:"cleanerId,omitempty"`
	CleanerName string              `json:"cleanerName,omitempty"`
	Confidence  int                 `json:"confidence"`
	Reason      string              `json:"reason"`
	Algorithm   string              `json:"algorithm"`
}

// Assigned cho biết kết quả có chọn được nhân viên hay không
func (r AssignmentResult) Assigned() bool {
	return r.CleanerID != nil && !r.CleanerID.IsZero()
}
