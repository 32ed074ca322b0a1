package dirsvc

import (
	"fmt"

	basesvc "cleanops/internal/api/base/service"
	dirmodels "cleanops/internal/api/directory/models"
	"cleanops/internal/common"
	"cleanops/internal/global"
)

// CleanerService là cấu trúc chứa các phương thức liên quan đến Cleaner
type CleanerService struct {
	*basesvc.BaseServiceMongoImpl[dirmodels.Cleaner]
}

// NewCleanerService tạo mới CleanerService
func NewCleanerService() (*CleanerService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Cleaners)
	if !exist {
		return nil, fmt.Errorf("failed to get cleaners collection: %v", common.ErrNotFound)
	}

	return &CleanerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[dirmodels.Cleaner](collection),
	}, nil
}
