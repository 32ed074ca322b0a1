// Package dirdto - các kiểu input tầng transport của domain Directory.
package dirdto

// ClientCreateInput dùng cho tạo khách hàng
type ClientCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"isActive"`
}

// ClientUpdateInput dùng cho cập nhật khách hàng
type ClientUpdateInput struct {
	Name     string `json:"name" validate:"omitempty,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}
