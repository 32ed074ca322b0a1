// Package dirhdl - các handler thuộc domain Directory.
package dirhdl

import (
	"fmt"

	basehdl "cleanops/internal/api/base/handler"
	dirdto "cleanops/internal/api/directory/dto"
	dirmodels "cleanops/internal/api/directory/models"
	dirsvc "cleanops/internal/api/directory/service"
)

// ClientHandler xử lý các request liên quan đến Client
type ClientHandler struct {
	*basehdl.BaseHandler[dirmodels.Client, dirdto.ClientCreateInput, dirdto.ClientUpdateInput]
}

// NewClientHandler tạo mới ClientHandler
func NewClientHandler() (*ClientHandler, error) {
	clientService, err := dirsvc.NewClientService()
	if err != nil {
		return nil, fmt.Errorf("failed to create client service: %v", err)
	}

	hdl := &ClientHandler{
		BaseHandler: basehdl.NewBaseHandler[dirmodels.Client, dirdto.ClientCreateInput, dirdto.ClientUpdateInput](clientService),
	}
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}
