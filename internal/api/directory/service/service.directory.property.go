package dirsvc

import (
	"fmt"

	basesvc "cleanops/internal/api/base/service"
	dirmodels "cleanops/internal/api/directory/models"
	"cleanops/internal/common"
	"cleanops/internal/global"
)

// PropertyService là cấu trúc chứa các phương thức liên quan đến Property
type PropertyService struct {
	*basesvc.BaseServiceMongoImpl[dirmodels.Property]
}

// NewPropertyService tạo mới PropertyService
func NewPropertyService() (*PropertyService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Properties)
	if !exist {
		return nil, fmt.Errorf("failed to get properties collection: %v", common.ErrNotFound)
	}

	return &PropertyService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[dirmodels.Property](collection),
	}, nil
}
