package schedsvc

import (
	"testing"
	"time"

	schedmodels "cleanops/internal/api/scheduling/models"
)

// taskAt tạo task trong ngày 2026-03-02 với giờ bắt đầu/kết thúc dạng "15:04"
func taskAt(t *testing.T, start, end string) schedmodels.Task {
	t.Helper()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	parse := func(wall string) int64 {
		wt, err := time.ParseInLocation("15:04", wall, time.UTC)
		if err != nil {
			t.Fatalf("giờ không hợp lệ %q: %v", wall, err)
		}
		return day.Add(time.Duration(wt.Hour())*time.Hour + time.Duration(wt.Minute())*time.Minute).UnixMilli()
	}

	return schedmodels.Task{
		Date:    "2026-03-02",
		StartAt: parse(start),
		EndAt:   parse(end),
		Status:  schedmodels.TaskStatusPending,
	}
}

func poolMember(priority, maxTasks, travelMinutes int) schedmodels.CleanerGroupAssignment {
	return schedmodels.CleanerGroupAssignment{
		Priority:          priority,
		MaxTasksPerDay:    maxTasks,
		TravelTimeMinutes: travelMinutes,
		IsActive:          true,
	}
}

func TestIsAvailable_NgayTrong(t *testing.T) {
	checker := NewAvailabilityChecker()

	ok := checker.IsAvailable(poolMember(1, 2, 30), taskAt(t, "10:00", "11:00"), nil)
	if !ok {
		t.Errorf("ngày trống phải nhận được task")
	}
}

func TestIsAvailable_CapacityChanTruocLogicThoiGian(t *testing.T) {
	checker := NewAvailabilityChecker()

	// 2 task hiện có, maxTasksPerDay = 2 → từ chối dù khung giờ hoàn toàn trống
	existing := []schedmodels.Task{
		taskAt(t, "06:00", "07:00"),
		taskAt(t, "18:00", "19:00"),
	}
	ok := checker.IsAvailable(poolMember(1, 2, 0), taskAt(t, "10:00", "11:00"), existing)
	if ok {
		t.Errorf("đã đạt maxTasksPerDay thì phải từ chối, kể cả khi khung giờ trống")
	}
}

func TestIsAvailable_BufferDiChuyenKhongDu(t *testing.T) {
	checker := NewAvailabilityChecker()

	// Task hiện có 09:00-10:00, buffer 30 phút, ứng viên 10:15-11:00
	// → khoảng cách 15 phút < buffer → từ chối
	existing := []schedmodels.Task{taskAt(t, "09:00", "10:00")}
	ok := checker.IsAvailable(poolMember(1, 2, 30), taskAt(t, "10:15", "11:00"), existing)
	if ok {
		t.Errorf("khoảng cách 15 phút nhỏ hơn buffer 30 phút thì phải từ chối")
	}

	// Buffer 15 phút thì vừa đủ → nhận
	ok = checker.IsAvailable(poolMember(1, 2, 15), taskAt(t, "10:15", "11:00"), existing)
	if !ok {
		t.Errorf("khoảng cách đúng bằng buffer thì phải nhận")
	}
}

func TestIsAvailable_SlotTruocTaskDau(t *testing.T) {
	checker := NewAvailabilityChecker()

	existing := []schedmodels.Task{taskAt(t, "09:00", "10:00")}

	// Kết thúc 08:00 + buffer 30 = 08:30 <= 09:00 → nhận
	if !checker.IsAvailable(poolMember(1, 2, 30), taskAt(t, "07:00", "08:00"), existing) {
		t.Errorf("slot trước task đầu còn đủ buffer thì phải nhận")
	}

	// Kết thúc 08:45 + buffer 30 = 09:15 > 09:00 → từ chối
	if checker.IsAvailable(poolMember(1, 2, 30), taskAt(t, "07:00", "08:45"), existing) {
		t.Errorf("slot trước task đầu thiếu buffer thì phải từ chối")
	}
}

func TestIsAvailable_SlotGiuaHaiTask(t *testing.T) {
	checker := NewAvailabilityChecker()

	existing := []schedmodels.Task{
		taskAt(t, "08:00", "09:00"),
		taskAt(t, "11:00", "12:00"),
	}

	// 09:30-10:30: cách task trước 30 phút, cách task sau 30 phút → nhận
	if !checker.IsAvailable(poolMember(1, 3, 30), taskAt(t, "09:30", "10:30"), existing) {
		t.Errorf("slot giữa đủ buffer hai phía thì phải nhận")
	}

	// 09:15-10:45: đủ phía trước nhưng 10:45 + 30 = 11:15 > 11:00 → từ chối
	if checker.IsAvailable(poolMember(1, 3, 30), taskAt(t, "09:15", "10:45"), existing) {
		t.Errorf("slot giữa thiếu buffer một phía thì phải từ chối")
	}
}

func TestIsAvailable_HaiTaskSatNhauKhongCoSlotGiua(t *testing.T) {
	checker := NewAvailabilityChecker()

	// Hai task hiện có chỉ cách nhau 60 phút, buffer 30 hai phía cần 60 + độ dài task
	// → không còn chỗ cho task 30 phút ở giữa
	existing := []schedmodels.Task{
		taskAt(t, "08:00", "09:00"),
		taskAt(t, "10:00", "11:00"),
	}
	if checker.IsAvailable(poolMember(1, 3, 30), taskAt(t, "09:30", "10:00"), existing) {
		t.Errorf("hai task sát nhau không chừa đủ buffer hai phía thì slot giữa phải bị từ chối")
	}
}

func TestIsAvailable_SlotSauTaskCuoi(t *testing.T) {
	checker := NewAvailabilityChecker()

	existing := []schedmodels.Task{taskAt(t, "11:00", "12:00")}

	// Bắt đầu 12:30 >= 12:00 + buffer 30 → nhận
	if !checker.IsAvailable(poolMember(1, 2, 30), taskAt(t, "12:30", "13:30"), existing) {
		t.Errorf("slot sau task cuối còn đủ buffer thì phải nhận")
	}

	// Bắt đầu 12:15 < 12:30 → từ chối
	if checker.IsAvailable(poolMember(1, 2, 30), taskAt(t, "12:15", "13:00"), existing) {
		t.Errorf("slot sau task cuối thiếu buffer thì phải từ chối")
	}
}

func TestIsAvailable_InputKhongSapXep(t *testing.T) {
	checker := NewAvailabilityChecker()

	// Task hiện có đưa vào không theo thứ tự thời gian
	existing := []schedmodels.Task{
		taskAt(t, "11:00", "12:00"),
		taskAt(t, "08:00", "09:00"),
	}
	if !checker.IsAvailable(poolMember(1, 3, 30), taskAt(t, "09:30", "10:30"), existing) {
		t.Errorf("checker phải tự sort task hiện có theo startAt trước khi thử slot")
	}
}
