package scheddto

// TaskCreateInput dùng cho tạo task dọn dẹp (tầng transport)
type TaskCreateInput struct {
	PropertyID string `json:"propertyId" validate:"required" transform:"str_objectid,map=PropertyID"`
	Date       string `json:"date" validate:"required,day_key"`
	StartAt    int64  `json:"startAt" validate:"required"`
	EndAt      int64  `json:"endAt" validate:"required"`
	Status     string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Notes      string `json:"notes,omitempty"`
}

// TaskUpdateInput dùng cho cập nhật task (tầng transport).
// Các trường phân công (assignedCleanerId, assignmentConfidence, autoAssigned)
// không nhận qua API — chỉ engine được ghi.
type TaskUpdateInput struct {
	Date    string `json:"date" validate:"omitempty,day_key"`
	StartAt int64  `json:"startAt"`
	EndAt   int64  `json:"endAt"`
	Status  string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Notes   string `json:"notes,omitempty"`
}
