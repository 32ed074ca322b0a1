package dirdto

// PropertyCreateInput dùng cho tạo bất động sản
type PropertyCreateInput struct {
	ClientID string `json:"clientId" validate:"required" transform:"str_objectid,map=ClientID"`
	Name     string `json:"name" validate:"required,no_xss"`
	Address  string `json:"address" validate:"omitempty,no_xss"`
	IsActive bool   `json:"isActive"`
}

// PropertyUpdateInput dùng cho cập nhật bất động sản
type PropertyUpdateInput struct {
	Name     string `json:"name" validate:"omitempty,no_xss"`
	Address  string `json:"address" validate:"omitempty,no_xss"`
	IsActive *bool  `json:"isActive,omitempty"`
}
