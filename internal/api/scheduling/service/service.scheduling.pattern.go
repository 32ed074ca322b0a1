package schedsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "cleanops/internal/api/base/service"
	schedmodels "cleanops/internal/api/scheduling/models"
	"cleanops/internal/common"
	"cleanops/internal/global"
)

// AssignmentPatternService là cấu trúc chứa các phương thức liên quan đến AssignmentPattern
type AssignmentPatternService struct {
	*basesvc.BaseServiceMongoImpl[schedmodels.AssignmentPattern]
}

// NewAssignmentPatternService tạo mới AssignmentPatternService
func NewAssignmentPatternService() (*AssignmentPatternService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AssignmentPatterns)
	if !exist {
		return nil, fmt.Errorf("failed to get assignment_patterns collection: %v", common.ErrNotFound)
	}

	return &AssignmentPatternService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[schedmodels.AssignmentPattern](collection),
	}, nil
}

// FindByGroup tìm toàn bộ pattern của một nhóm (đọc kèm vào context, advisory)
func (s *AssignmentPatternService) FindByGroup(ctx context.Context, groupID primitive.ObjectID) ([]schedmodels.AssignmentPattern, error) {
	return s.Find(ctx, bson.M{"groupId": groupID}, nil)
}

// RecordSample ghi nhận một mẫu task hoàn thành vào bucket (nhóm, nhân viên, thứ, giờ)
// bằng MỘT lệnh upsert atomic duy nhất (update pipeline), không read-check trước khi ghi.
// Hai lần chạy learning job song song không thể tạo bucket trùng: unique compound index
// trên (groupId, cleanerId, weekday, hour) cộng với upsert atomic loại bỏ race.
//
// Parameters:
//   - completionMinutes: thời gian hoàn thành của mẫu (phút), 0 với mẫu thất bại
//   - success: mẫu có được tính là thành công hay không (task hoàn thành)
func (s *AssignmentPatternService) RecordSample(ctx context.Context, groupID, cleanerID primitive.ObjectID, weekday, hour int, completionMinutes int64, success bool) error {
	now := time.Now().UnixMilli()

	successInc := 0
	if success {
		successInc = 1
	}

	filter := bson.M{
		"groupId":   groupID,
		"cleanerId": cleanerID,
		"weekday":   weekday,
		"hour":      hour,
	}

	// Update pipeline: tăng các bộ đếm và tính lại trung bình trong cùng một lệnh
	pipeline := bson.A{
		bson.M{"$set": bson.M{
			"groupId":   groupID,
			"cleanerId": cleanerID,
			"weekday":   weekday,
			"hour":      hour,
			"sampleCount": bson.M{"$add": bson.A{
				bson.M{"$ifNull": bson.A{"$sampleCount", 0}}, 1,
			}},
			"totalCompletionMinutes": bson.M{"$add": bson.A{
				bson.M{"$ifNull": bson.A{"$totalCompletionMinutes", 0}}, completionMinutes,
			}},
			"successCount": bson.M{"$add": bson.A{
				bson.M{"$ifNull": bson.A{"$successCount", 0}}, successInc,
			}},
			"lastUpdatedAt": now,
			"updatedAt":     now,
			"createdAt":     bson.M{"$ifNull": bson.A{"$createdAt", now}},
		}},
		bson.M{"$set": bson.M{
			// Trung bình chỉ tính trên các mẫu thành công: mẫu thất bại không mang
			// thời gian hoàn thành
			"avgCompletionMinutes": bson.M{"$cond": bson.A{
				bson.M{"$gt": bson.A{"$successCount", 0}},
				bson.M{"$divide": bson.A{"$totalCompletionMinutes", "$successCount"}},
				0,
			}},
			"successRate": bson.M{"$divide": bson.A{"$successCount", "$sampleCount"}},
			// Preference tăng dần theo số mẫu, bão hòa ở 1.0
			"preferenceScore": bson.M{"$min": bson.A{
				bson.M{"$divide": bson.A{"$sampleCount", 10}}, 1.0,
			}},
		}},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.Collection().UpdateOne(ctx, filter, pipeline, opts)
	if err != nil {
		return common.ConvertMongoError(err)
	}

	return nil
}
