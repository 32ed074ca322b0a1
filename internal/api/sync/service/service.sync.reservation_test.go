package syncsvc

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	schedmodels "cleanops/internal/api/scheduling/models"
)

func TestBuildCheckoutTask(t *testing.T) {
	propertyID := primitive.NewObjectID()

	task, err := BuildCheckoutTask(propertyID, "2026-03-02", "11:00", "sau check-out")
	if err != nil {
		t.Fatalf("BuildCheckoutTask lỗi: %v", err)
	}

	wantStart := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC).UnixMilli()
	if task.StartAt != wantStart {
		t.Errorf("StartAt = %d, want %d", task.StartAt, wantStart)
	}

	wantEnd := time.UnixMilli(wantStart).Add(DefaultCleaningWindow).UnixMilli()
	if task.EndAt != wantEnd {
		t.Errorf("EndAt = %d, want %d", task.EndAt, wantEnd)
	}

	if task.Date != "2026-03-02" {
		t.Errorf("Date = %q, want %q", task.Date, "2026-03-02")
	}
	if task.Status != schedmodels.TaskStatusPending {
		t.Errorf("Status = %q, want %q", task.Status, schedmodels.TaskStatusPending)
	}
	if task.PropertyID != propertyID {
		t.Errorf("PropertyID không khớp")
	}
	if task.AssignedCleanerID != nil || task.AutoAssigned {
		t.Errorf("task mới dựng không được mang thông tin phân công")
	}
}

func TestBuildCheckoutTask_GioKhongHopLe(t *testing.T) {
	if _, err := BuildCheckoutTask(primitive.NewObjectID(), "2026-03-02", "25:99", ""); err == nil {
		t.Errorf("giờ check-out không hợp lệ phải trả lỗi")
	}
}

func TestBuildCheckoutTask_NgayKhongHopLe(t *testing.T) {
	if _, err := BuildCheckoutTask(primitive.NewObjectID(), "03-02-2026", "11:00", ""); err == nil {
		t.Errorf("ngày trả phòng không hợp lệ phải trả lỗi")
	}
}
