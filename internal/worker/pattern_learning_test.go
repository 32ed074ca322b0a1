package worker

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	schedmodels "cleanops/internal/api/scheduling/models"
)

// elapsedTask tạo task đã qua giờ kết thúc trong ngày 2026-03-02 (thứ Hai)
func elapsedTask(status string, startHour, durationMinutes int) schedmodels.Task {
	start := time.Date(2026, 3, 2, startHour, 0, 0, 0, time.UTC)
	cleanerID := primitive.NewObjectID()

	return schedmodels.Task{
		ID:                primitive.NewObjectID(),
		Date:              "2026-03-02",
		StartAt:           start.UnixMilli(),
		EndAt:             start.Add(time.Duration(durationMinutes) * time.Minute).UnixMilli(),
		Status:            status,
		AssignedCleanerID: &cleanerID,
	}
}

func TestSampleOf_TaskHoanThanh(t *testing.T) {
	task := elapsedTask(schedmodels.TaskStatusCompleted, 9, 90)

	weekday, hour, completionMinutes, success := sampleOf(task)

	if weekday != 1 || hour != 9 {
		t.Errorf("bucket = (%d, %d), want (1, 9)", weekday, hour)
	}
	if !success {
		t.Errorf("task hoàn thành phải là mẫu thành công")
	}
	if completionMinutes != 90 {
		t.Errorf("completionMinutes = %d, want 90", completionMinutes)
	}
}

func TestSampleOf_TaskQuaGioChuaHoanThanh(t *testing.T) {
	// Task quá giờ kết thúc mà vẫn pending/in_progress là mẫu thất bại,
	// không đóng góp thời gian hoàn thành
	for _, status := range []string{schedmodels.TaskStatusPending, schedmodels.TaskStatusInProgress} {
		task := elapsedTask(status, 14, 60)

		_, _, completionMinutes, success := sampleOf(task)

		if success {
			t.Errorf("status %q: task chưa hoàn thành không được tính là mẫu thành công", status)
		}
		if completionMinutes != 0 {
			t.Errorf("status %q: completionMinutes = %d, want 0", status, completionMinutes)
		}
	}
}
