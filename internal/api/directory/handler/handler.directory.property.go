package dirhdl

import (
	"fmt"

	basehdl "cleanops/internal/api/base/handler"
	dirdto "cleanops/internal/api/directory/dto"
	dirmodels "cleanops/internal/api/directory/models"
	dirsvc "cleanops/internal/api/directory/service"
)

// PropertyHandler xử lý các request liên quan đến Property
type PropertyHandler struct {
	*basehdl.BaseHandler[dirmodels.Property, dirdto.PropertyCreateInput, dirdto.PropertyUpdateInput]
}

// NewPropertyHandler tạo mới PropertyHandler
func NewPropertyHandler() (*PropertyHandler, error) {
	propertyService, err := dirsvc.NewPropertyService()
	if err != nil {
		return nil, fmt.Errorf("failed to create property service: %v", err)
	}

	hdl := &PropertyHandler{
		BaseHandler: basehdl.NewBaseHandler[dirmodels.Property, dirdto.PropertyCreateInput, dirdto.PropertyUpdateInput](propertyService),
	}
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}
