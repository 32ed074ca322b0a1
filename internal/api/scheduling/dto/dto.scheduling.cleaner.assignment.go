package scheddto

// CleanerGroupAssignmentCreateInput dùng cho thêm nhân viên vào pool phân công (tầng transport)
type CleanerGroupAssignmentCreateInput struct {
	CleanerID         string `json:"cleanerId" validate:"required" transform:"str_objectid,map=CleanerID"`
	GroupID           string `json:"groupId" validate:"required" transform:"str_objectid,map=GroupID"`
	CleanerName       string `json:"cleanerName"`
	Priority          int    `json:"priority" validate:"required,gte=1"`
	MaxTasksPerDay    int    `json:"maxTasksPerDay" validate:"required,gte=1"`
	TravelTimeMinutes int    `json:"travelTimeMinutes" validate:"gte=0"`
	IsActive          bool   `json:"isActive"`
}

// CleanerGroupAssignmentUpdateInput dùng cho cập nhật thông tin pool (tầng transport)
type CleanerGroupAssignmentUpdateInput struct {
	CleanerName       string `json:"cleanerName"`
	Priority          int    `json:"priority" validate:"omitempty,gte=1"`
	MaxTasksPerDay    int    `json:"maxTasksPerDay" validate:"omitempty,gte=1"`
	TravelTimeMinutes int    `json:"travelTimeMinutes" validate:"omitempty,gte=0"`
	IsActive          *bool  `json:"isActive"`
}
