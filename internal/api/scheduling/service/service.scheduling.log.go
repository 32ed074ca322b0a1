package schedsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "cleanops/internal/api/base/service"
	schedmodels "cleanops/internal/api/scheduling/models"
	"cleanops/internal/common"
	"cleanops/internal/global"
)

// AssignmentLogService là cấu trúc chứa các phương thức liên quan đến AssignmentLog
type AssignmentLogService struct {
	*basesvc.BaseServiceMongoImpl[schedmodels.AssignmentLog]
}

// NewAssignmentLogService tạo mới AssignmentLogService
func NewAssignmentLogService() (*AssignmentLogService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AssignmentLogs)
	if !exist {
		return nil, fmt.Errorf("failed to get assignment_logs collection: %v", common.ErrNotFound)
	}

	return &AssignmentLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[schedmodels.AssignmentLog](collection),
	}, nil
}

// RecordDecision ghi một dòng nhật ký cho kết quả phân công.
// ManualOverride luôn false tại thời điểm tạo.
func (s *AssignmentLogService) RecordDecision(ctx context.Context, groupID primitive.ObjectID, result schedmodels.AssignmentResult) error {
	logRow := schedmodels.AssignmentLog{
		TaskID:         result.TaskID,
		GroupID:        groupID,
		CleanerID:      result.CleanerID,
		CleanerName:    result.CleanerName,
		Algorithm:      result.Algorithm,
		Reason:         result.Reason,
		Confidence:     result.Confidence,
		ManualOverride: false,
	}

	_, err := s.InsertOne(ctx, logRow)
	return err
}
