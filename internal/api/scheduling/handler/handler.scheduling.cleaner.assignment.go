package schedhdl

import (
	"fmt"

	basehdl "cleanops/internal/api/base/handler"
	scheddto "cleanops/internal/api/scheduling/dto"
	schedmodels "cleanops/internal/api/scheduling/models"
	schedsvc "cleanops/internal/api/scheduling/service"
)

// CleanerGroupAssignmentHandler xử lý các request liên quan đến CleanerGroupAssignment
type CleanerGroupAssignmentHandler struct {
	*basehdl.BaseHandler[schedmodels.CleanerGroupAssignment, scheddto.CleanerGroupAssignmentCreateInput, scheddto.CleanerGroupAssignmentUpdateInput]
}

// NewCleanerGroupAssignmentHandler tạo mới CleanerGroupAssignmentHandler
func NewCleanerGroupAssignmentHandler() (*CleanerGroupAssignmentHandler, error) {
	assignmentService, err := schedsvc.NewCleanerGroupAssignmentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cleaner group assignment service: %v", err)
	}

	hdl := &CleanerGroupAssignmentHandler{
		BaseHandler: basehdl.NewBaseHandler[schedmodels.CleanerGroupAssignment, scheddto.CleanerGroupAssignmentCreateInput, scheddto.CleanerGroupAssignmentUpdateInput](assignmentService),
	}
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}
