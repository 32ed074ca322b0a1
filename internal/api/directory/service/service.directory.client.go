// Package dirsvc - các service thuộc domain Directory.
package dirsvc

import (
	"fmt"

	basesvc "cleanops/internal/api/base/service"
	dirmodels "cleanops/internal/api/directory/models"
	"cleanops/internal/common"
	"cleanops/internal/global"
)

// ClientService là cấu trúc chứa các phương thức liên quan đến Client
type ClientService struct {
	*basesvc.BaseServiceMongoImpl[dirmodels.Client]
}

// NewClientService tạo mới ClientService
func NewClientService() (*ClientService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Clients)
	if !exist {
		return nil, fmt.Errorf("failed to get clients collection: %v", common.ErrNotFound)
	}

	return &ClientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[dirmodels.Client](collection),
	}, nil
}
