package schedhdl

import (
	"fmt"

	basehdl "cleanops/internal/api/base/handler"
	schedmodels "cleanops/internal/api/scheduling/models"
	schedsvc "cleanops/internal/api/scheduling/service"
)

// AssignmentPatternHandler xử lý các request liên quan đến AssignmentPattern.
// Pattern chỉ được ghi bởi batch learning nên route của nó là read-only;
// input type dùng lại chính model (không có DTO tạo/sửa).
type AssignmentPatternHandler struct {
	*basehdl.BaseHandler[schedmodels.AssignmentPattern, schedmodels.AssignmentPattern, schedmodels.AssignmentPattern]
}

// NewAssignmentPatternHandler tạo mới AssignmentPatternHandler
func NewAssignmentPatternHandler() (*AssignmentPatternHandler, error) {
	patternService, err := schedsvc.NewAssignmentPatternService()
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment pattern service: %v", err)
	}

	hdl := &AssignmentPatternHandler{
		BaseHandler: basehdl.NewBaseHandler[schedmodels.AssignmentPattern, schedmodels.AssignmentPattern, schedmodels.AssignmentPattern](patternService),
	}
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}
