package scheddto

// PropertyGroupCreateInput dùng cho tạo nhóm bất động sản (tầng transport)
type PropertyGroupCreateInput struct {
	Name              string `json:"name" validate:"required"`
	CheckInTime       string `json:"checkInTime" validate:"omitempty,wall_time"`
	CheckOutTime      string `json:"checkOutTime" validate:"omitempty,wall_time"`
	IsActive          bool   `json:"isActive"`
	AutoAssignEnabled bool   `json:"autoAssignEnabled"`
}

// PropertyGroupUpdateInput dùng cho cập nhật nhóm bất động sản (tầng transport)
type PropertyGroupUpdateInput struct {
	Name              string `json:"name"`
	CheckInTime       string `json:"checkInTime" validate:"omitempty,wall_time"`
	CheckOutTime      string `json:"checkOutTime" validate:"omitempty,wall_time"`
	IsActive          *bool  `json:"isActive"`
	AutoAssignEnabled *bool  `json:"autoAssignEnabled"`
}

// PropertyGroupMemberCreateInput dùng cho gán bất động sản vào nhóm (tầng transport)
type PropertyGroupMemberCreateInput struct {
	PropertyID string `json:"propertyId" validate:"required" transform:"str_objectid,map=PropertyID"`
	GroupID    string `json:"groupId" validate:"required" transform:"str_objectid,map=GroupID"`
}

// PropertyGroupMemberUpdateInput dùng cho chuyển bất động sản sang nhóm khác (tầng transport)
type PropertyGroupMemberUpdateInput struct {
	GroupID string `json:"groupId" validate:"omitempty" transform:"str_objectid,map=GroupID,optional"`
}
