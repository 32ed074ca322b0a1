package dirhdl

import (
	"fmt"

	basehdl "cleanops/internal/api/base/handler"
	dirdto "cleanops/internal/api/directory/dto"
	dirmodels "cleanops/internal/api/directory/models"
	dirsvc "cleanops/internal/api/directory/service"
)

// CleanerHandler xử lý các request liên quan đến Cleaner
type CleanerHandler struct {
	*basehdl.BaseHandler[dirmodels.Cleaner, dirdto.CleanerCreateInput, dirdto.CleanerUpdateInput]
}

// NewCleanerHandler tạo mới CleanerHandler
func NewCleanerHandler() (*CleanerHandler, error) {
	cleanerService, err := dirsvc.NewCleanerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cleaner service: %v", err)
	}

	hdl := &CleanerHandler{
		BaseHandler: basehdl.NewBaseHandler[dirmodels.Cleaner, dirdto.CleanerCreateInput, dirdto.CleanerUpdateInput](cleanerService),
	}
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}
