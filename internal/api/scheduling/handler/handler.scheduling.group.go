package schedhdl

import (
	"fmt"

	basehdl "cleanops/internal/api/base/handler"
	scheddto "cleanops/internal/api/scheduling/dto"
	schedmodels "cleanops/internal/api/scheduling/models"
	schedsvc "cleanops/internal/api/scheduling/service"
)

// PropertyGroupHandler xử lý các request liên quan đến PropertyGroup
type PropertyGroupHandler struct {
	*basehdl.BaseHandler[schedmodels.PropertyGroup, scheddto.PropertyGroupCreateInput, scheddto.PropertyGroupUpdateInput]
}

// NewPropertyGroupHandler tạo mới PropertyGroupHandler
func NewPropertyGroupHandler() (*PropertyGroupHandler, error) {
	groupService, err := schedsvc.NewPropertyGroupService()
	if err != nil {
		return nil, fmt.Errorf("failed to create property group service: %v", err)
	}

	hdl := &PropertyGroupHandler{
		BaseHandler: basehdl.NewBaseHandler[schedmodels.PropertyGroup, scheddto.PropertyGroupCreateInput, scheddto.PropertyGroupUpdateInput](groupService),
	}
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}

// PropertyGroupMemberHandler xử lý các request liên quan đến PropertyGroupMember
type PropertyGroupMemberHandler struct {
	*basehdl.BaseHandler[schedmodels.PropertyGroupMember, scheddto.PropertyGroupMemberCreateInput, scheddto.PropertyGroupMemberUpdateInput]
}

// NewPropertyGroupMemberHandler tạo mới PropertyGroupMemberHandler
func NewPropertyGroupMemberHandler() (*PropertyGroupMemberHandler, error) {
	memberService, err := schedsvc.NewPropertyGroupMemberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create property group member service: %v", err)
	}

	hdl := &PropertyGroupMemberHandler{
		BaseHandler: basehdl.NewBaseHandler[schedmodels.PropertyGroupMember, scheddto.PropertyGroupMemberCreateInput, scheddto.PropertyGroupMemberUpdateInput](memberService),
	}
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{},
		AllowedOperators: []string{"$eq", "$in", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}
