package schedsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "cleanops/internal/api/base/service"
	schedmodels "cleanops/internal/api/scheduling/models"
	"cleanops/internal/common"
	"cleanops/internal/global"
)

// CleanerGroupAssignmentService là cấu trúc chứa các phương thức liên quan đến CleanerGroupAssignment
type CleanerGroupAssignmentService struct {
	*basesvc.BaseServiceMongoImpl[schedmodels.CleanerGroupAssignment]
}

// NewCleanerGroupAssignmentService tạo mới CleanerGroupAssignmentService
func NewCleanerGroupAssignmentService() (*CleanerGroupAssignmentService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CleanerGroupAssignments)
	if !exist {
		return nil, fmt.Errorf("failed to get cleaner_group_assignments collection: %v", common.ErrNotFound)
	}

	return &CleanerGroupAssignmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[schedmodels.CleanerGroupAssignment](collection),
	}, nil
}

// FindByGroup tìm toàn bộ pool nhân viên của một nhóm.
// Sort theo createdAt tăng dần để thứ tự input ổn định — thuật toán dùng
// stable sort theo priority nên trùng priority sẽ giữ nguyên thứ tự này.
func (s *CleanerGroupAssignmentService) FindByGroup(ctx context.Context, groupID primitive.ObjectID) ([]schedmodels.CleanerGroupAssignment, error) {
	filter := bson.M{"groupId": groupID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.Find(ctx, filter, opts)
}
