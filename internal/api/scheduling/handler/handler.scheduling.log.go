package schedhdl

import (
	"fmt"

	basehdl "cleanops/internal/api/base/handler"
	schedmodels "cleanops/internal/api/scheduling/models"
	schedsvc "cleanops/internal/api/scheduling/service"
)

// AssignmentLogHandler xử lý các request liên quan đến AssignmentLog.
// Nhật ký quyết định chỉ được ghi bởi engine nên route của nó là read-only.
type AssignmentLogHandler struct {
	*basehdl.BaseHandler[schedmodels.AssignmentLog, schedmodels.AssignmentLog, schedmodels.AssignmentLog]
}

// NewAssignmentLogHandler tạo mới AssignmentLogHandler
func NewAssignmentLogHandler() (*AssignmentLogHandler, error) {
	logService, err := schedsvc.NewAssignmentLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment log service: %v", err)
	}

	hdl := &AssignmentLogHandler{
		BaseHandler: basehdl.NewBaseHandler[schedmodels.AssignmentLog, schedmodels.AssignmentLog, schedmodels.AssignmentLog](logService),
	}
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}
