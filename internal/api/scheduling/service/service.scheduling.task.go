package schedsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "cleanops/internal/api/base/service"
	schedmodels "cleanops/internal/api/scheduling/models"
	"cleanops/internal/common"
	"cleanops/internal/global"
)

// TaskService là cấu trúc chứa các phương thức liên quan đến Task
type TaskService struct {
	*basesvc.BaseServiceMongoImpl[schedmodels.Task]
}

// NewTaskService tạo mới TaskService
func NewTaskService() (*TaskService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tasks)
	if !exist {
		return nil, fmt.Errorf("failed to get tasks collection: %v", common.ErrNotFound)
	}

	return &TaskService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[schedmodels.Task](collection),
	}, nil
}

// FindTasksOnDate tìm mọi task đã lên lịch trong một ngày (mọi nhân viên),
// loại trừ chính task ứng viên để việc re-evaluate một task đã phân công là idempotent.
func (s *TaskService) FindTasksOnDate(ctx context.Context, date string, excludeTaskID primitive.ObjectID) ([]schedmodels.Task, error) {
	filter := bson.M{"date": date}
	if !excludeTaskID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeTaskID}
	}

	opts := options.Find().SetSort(bson.D{{Key: "startAt", Value: 1}})
	return s.Find(ctx, filter, opts)
}

// ApplyAssignment ghi kết quả phân công vào task với điều kiện bảo vệ:
// chỉ ghi khi task chưa được phân công hoặc lần phân công trước là tự động.
// Task đã được phân công thủ công không bị ghi đè — quyết định cũ (stale) thua.
//
// Returns:
//   - bool: true nếu task được cập nhật, false nếu điều kiện bảo vệ chặn lại
//   - error: lỗi hạ tầng nếu có
func (s *TaskService) ApplyAssignment(ctx context.Context, taskID primitive.ObjectID, cleanerID primitive.ObjectID, confidence int) (bool, error) {
	filter := bson.M{
		"_id": taskID,
		"$or": []bson.M{
			{"assignedCleanerId": bson.M{"$exists": false}},
			{"assignedCleanerId": nil},
			{"autoAssigned": true},
		},
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"assignedCleanerId":    cleanerID,
			"assignmentConfidence": confidence,
			"autoAssigned":         true,
		},
	}

	_, err := s.UpdateOne(ctx, filter, update, nil)
	if err != nil {
		// ErrNotFound ở đây nghĩa là điều kiện bảo vệ chặn (task đã phân công thủ công),
		// không phải lỗi hạ tầng
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// FindElapsedWithCleaner tìm các task đã qua giờ kết thúc trong cửa sổ quét,
// có đủ nhân viên và bất động sản, bất kể trạng thái. Batch pattern-learning
// dùng danh sách này: task hoàn thành là mẫu thành công, task quá giờ mà chưa
// hoàn thành là mẫu thất bại.
func (s *TaskService) FindElapsedWithCleaner(ctx context.Context, sinceMilli, untilMilli int64) ([]schedmodels.Task, error) {
	filter := bson.M{
		"assignedCleanerId": bson.M{"$ne": nil},
		"propertyId":        bson.M{"$ne": primitive.NilObjectID},
		"endAt":             bson.M{"$gte": sinceMilli, "$lte": untilMilli},
	}

	opts := options.Find().SetSort(bson.D{{Key: "endAt", Value: 1}})
	return s.Find(ctx, filter, opts)
}
