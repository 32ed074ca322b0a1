package dirdto

// CleanerCreateInput dùng cho tạo nhân viên dọn dẹp
type CleanerCreateInput struct {
	DisplayName string `json:"displayName" validate:"required,no_xss"`
	Phone       string `json:"phone,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// CleanerUpdateInput dùng cho cập nhật nhân viên dọn dẹp
type CleanerUpdateInput struct {
	DisplayName string `json:"displayName" validate:"omitempty,no_xss"`
	Phone       string `json:"phone,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}
