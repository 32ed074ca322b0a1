package scheddto

// AssignBatchInput dùng cho trigger phân công hàng loạt (tầng transport)
type AssignBatchInput struct {
	TaskIDs []string `json:"taskIds" validate:"required,min=1,dive,len=24"`
}
