// Package syncsvc - ingest sự kiện đặt phòng từ hệ thống ngoài thành task dọn dẹp.
package syncsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	schedmodels "cleanops/internal/api/scheduling/models"
	schedsvc "cleanops/internal/api/scheduling/service"
	syncdto "cleanops/internal/api/sync/dto"
	"cleanops/internal/logger"
	"cleanops/internal/utility"
)

// Giá trị mặc định khi bất động sản chưa thuộc nhóm nào (không có giờ check-out cấu hình)
const (
	DefaultCheckOutTime   = "11:00"
	DefaultCleaningWindow = 2 * time.Hour
)

// ReservationSyncResult - kết quả ingest cho một reservation
type ReservationSyncResult struct {
	PropertyID string                        `json:"propertyId"`
	TaskID     string                        `json:"taskId,omitempty"`
	Assignment *schedmodels.AssignmentResult `json:"assignment,omitempty"`
	Error      string                        `json:"error,omitempty"`
}

// ReservationSyncService tạo task dọn dẹp check-out từ sự kiện đặt phòng
// rồi đẩy từng task mới qua assignment engine.
type ReservationSyncService struct {
	tasks   *schedsvc.TaskService
	groups  *schedsvc.PropertyGroupService
	members *schedsvc.PropertyGroupMemberService
	engine  *schedsvc.AssignmentEngine
}

// NewReservationSyncService tạo mới ReservationSyncService
func NewReservationSyncService(engine *schedsvc.AssignmentEngine) (*ReservationSyncService, error) {
	tasks, err := schedsvc.NewTaskService()
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %v", err)
	}
	groups, err := schedsvc.NewPropertyGroupService()
	if err != nil {
		return nil, fmt.Errorf("failed to create property group service: %v", err)
	}
	members, err := schedsvc.NewPropertyGroupMemberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create property group member service: %v", err)
	}

	return &ReservationSyncService{
		tasks:   tasks,
		groups:  groups,
		members: members,
		engine:  engine,
	}, nil
}

// BuildCheckoutTask dựng task dọn dẹp check-out từ một reservation (logic thuần).
// StartAt = giờ check-out của ngày trả phòng, EndAt = StartAt + cửa sổ dọn dẹp mặc định.
//
// Parameters:
//   - propertyID: bất động sản cần dọn
//   - checkOutDate: khóa ngày "2006-01-02"
//   - checkOutTime: giờ trả phòng "15:04"
//   - notes: ghi chú kèm theo task
func BuildCheckoutTask(propertyID primitive.ObjectID, checkOutDate string, checkOutTime string, notes string) (schedmodels.Task, error) {
	startAt, err := utility.CombineDayAndWallTime(checkOutDate, checkOutTime)
	if err != nil {
		return schedmodels.Task{}, err
	}

	endAt := time.UnixMilli(startAt).Add(DefaultCleaningWindow).UnixMilli()

	return schedmodels.Task{
		PropertyID: propertyID,
		Date:       checkOutDate,
		StartAt:    startAt,
		EndAt:      endAt,
		Status:     schedmodels.TaskStatusPending,
		Notes:      notes,
	}, nil
}

// SyncReservations ingest một batch reservation: mỗi reservation tạo một task
// check-out rồi chạy engine cho task vừa tạo. Một reservation lỗi không dừng
// batch — kết quả lỗi của nó vẫn có mặt trong slice trả về.
//
// Engine có thể được kích hoạt lần nữa qua event bus khi task được insert;
// đánh giá lặp là idempotent nên không gây sai lệch dữ liệu.
func (s *ReservationSyncService) SyncReservations(ctx context.Context, input syncdto.ReservationSyncInput) []ReservationSyncResult {
	log := logger.GetAppLogger()
	results := make([]ReservationSyncResult, 0, len(input.Reservations))

	for _, reservation := range input.Reservations {
		result := ReservationSyncResult{PropertyID: reservation.PropertyID}

		propertyID, err := primitive.ObjectIDFromHex(reservation.PropertyID)
		if err != nil {
			result.Error = fmt.Sprintf("propertyId '%s' không đúng định dạng MongoDB ObjectID", reservation.PropertyID)
			results = append(results, result)
			continue
		}

		// Giờ check-out lấy từ nhóm của bất động sản, không có nhóm thì dùng mặc định
		checkOutTime := DefaultCheckOutTime
		group, err := schedsvc.FindGroupForProperty(ctx, s.members, s.groups, propertyID)
		if err != nil {
			log.WithFields(logrus.Fields{
				"propertyId": reservation.PropertyID,
				"error":      err.Error(),
			}).Error("❌ Không resolve được nhóm khi sync reservation")
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		if group != nil && group.CheckOutTime != "" {
			checkOutTime = group.CheckOutTime
		}

		notes := reservation.Notes
		if notes == "" && reservation.GuestName != "" {
			notes = fmt.Sprintf("Dọn dẹp sau check-out của khách %s", reservation.GuestName)
		}

		task, err := BuildCheckoutTask(propertyID, reservation.CheckOutDate, checkOutTime, notes)
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		created, err := s.tasks.InsertOne(ctx, task)
		if err != nil {
			log.WithFields(logrus.Fields{
				"propertyId": reservation.PropertyID,
				"date":       reservation.CheckOutDate,
				"error":      err.Error(),
			}).Error("❌ Không tạo được task check-out khi sync reservation")
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		result.TaskID = created.ID.Hex()

		assignment, err := s.engine.AssignTask(ctx, created.ID)
		if err != nil {
			// Task đã được tạo thành công — lỗi phân công chỉ ghi nhận, không rollback
			result.Error = err.Error()
		}
		result.Assignment = &assignment

		results = append(results, result)
	}

	return results
}
