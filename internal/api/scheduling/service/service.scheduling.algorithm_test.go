package schedsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	schedmodels "cleanops/internal/api/scheduling/models"
)

func newAlgorithm() *AssignmentAlgorithm {
	return NewAssignmentAlgorithm(NewAvailabilityChecker())
}

func namedPoolMember(name string, priority, maxTasks, travelMinutes int) schedmodels.CleanerGroupAssignment {
	ca := poolMember(priority, maxTasks, travelMinutes)
	ca.CleanerID = primitive.NewObjectID()
	ca.CleanerName = name
	return ca
}

func assignedTo(t *testing.T, base schedmodels.Task, cleanerID primitive.ObjectID) schedmodels.Task {
	t.Helper()
	base.AssignedCleanerID = &cleanerID
	return base
}

func TestRun_ChonNhanVienUuTienCaoNhat(t *testing.T) {
	// Scenario A: P1 trống lịch, P2 dự phòng → P1 thắng
	p1 := namedPoolMember("P1", 1, 2, 30)
	p2 := namedPoolMember("P2", 2, 2, 30)

	task := taskAt(t, "10:00", "11:00")
	task.ID = primitive.NewObjectID()

	result := newAlgorithm().Run(schedmodels.AssignmentContext{
		Task:               task,
		CleanerAssignments: []schedmodels.CleanerGroupAssignment{p2, p1},
	})

	if !result.Assigned() {
		t.Fatalf("phải chọn được nhân viên, got reason %q", result.Reason)
	}
	if *result.CleanerID != p1.CleanerID {
		t.Errorf("phải chọn P1 (priority thấp nhất), got %s", result.CleanerName)
	}
	// 1000 - 1*100 + (2 - 0)
	if result.Confidence != 902 {
		t.Errorf("confidence = %d, want 902", result.Confidence)
	}
	if result.Algorithm != schedmodels.AlgorithmPriorityV1 {
		t.Errorf("algorithm = %q, want %q", result.Algorithm, schedmodels.AlgorithmPriorityV1)
	}
}

func TestRun_RoiXuongNhanVienTiepTheoKhiThieuBuffer(t *testing.T) {
	// Scenario B: P1 có task 09:00-10:00, buffer 30 → task 10:15-11:00 rơi xuống P2
	p1 := namedPoolMember("P1", 1, 2, 30)
	p2 := namedPoolMember("P2", 2, 2, 30)

	task := taskAt(t, "10:15", "11:00")
	task.ID = primitive.NewObjectID()

	result := newAlgorithm().Run(schedmodels.AssignmentContext{
		Task:               task,
		CleanerAssignments: []schedmodels.CleanerGroupAssignment{p1, p2},
		ExistingTasks:      []schedmodels.Task{assignedTo(t, taskAt(t, "09:00", "10:00"), p1.CleanerID)},
	})

	if !result.Assigned() || *result.CleanerID != p2.CleanerID {
		t.Errorf("P1 thiếu buffer thì phải rơi xuống P2, got %s (reason %q)", result.CleanerName, result.Reason)
	}
}

func TestRun_BoQuaNhanVienDaDayCapacity(t *testing.T) {
	// Scenario C: P1 đạt maxTasksPerDay → bỏ qua dù khung giờ trống
	p1 := namedPoolMember("P1", 1, 1, 0)
	p2 := namedPoolMember("P2", 2, 2, 0)

	task := taskAt(t, "14:00", "15:00")
	task.ID = primitive.NewObjectID()

	result := newAlgorithm().Run(schedmodels.AssignmentContext{
		Task:               task,
		CleanerAssignments: []schedmodels.CleanerGroupAssignment{p1, p2},
		ExistingTasks:      []schedmodels.Task{assignedTo(t, taskAt(t, "08:00", "09:00"), p1.CleanerID)},
	})

	if !result.Assigned() || *result.CleanerID != p2.CleanerID {
		t.Errorf("P1 đầy capacity thì phải chọn P2, got %s", result.CleanerName)
	}
}

func TestRun_KhongAiKhaDung(t *testing.T) {
	// Scenario D: mọi nhân viên đều bị từ chối
	p1 := namedPoolMember("P1", 1, 1, 0)

	task := taskAt(t, "14:00", "15:00")
	task.ID = primitive.NewObjectID()

	result := newAlgorithm().Run(schedmodels.AssignmentContext{
		Task:               task,
		CleanerAssignments: []schedmodels.CleanerGroupAssignment{p1},
		ExistingTasks:      []schedmodels.Task{assignedTo(t, taskAt(t, "08:00", "09:00"), p1.CleanerID)},
	})

	if result.Assigned() {
		t.Fatalf("không ai khả dụng mà vẫn chọn được %s", result.CleanerName)
	}
	if result.Confidence != 0 {
		t.Errorf("confidence = %d, want 0", result.Confidence)
	}
	if result.Reason != schedmodels.ReasonNoCleanersAfterCheck {
		t.Errorf("reason = %q, want %q", result.Reason, schedmodels.ReasonNoCleanersAfterCheck)
	}
}

func TestRun_PoolRong(t *testing.T) {
	task := taskAt(t, "10:00", "11:00")
	task.ID = primitive.NewObjectID()

	result := newAlgorithm().Run(schedmodels.AssignmentContext{Task: task})

	if result.Assigned() {
		t.Fatalf("pool rỗng mà vẫn chọn được nhân viên")
	}
	if result.Reason != schedmodels.ReasonNoCleaners {
		t.Errorf("reason = %q, want %q", result.Reason, schedmodels.ReasonNoCleaners)
	}
	if result.Algorithm != schedmodels.AlgorithmPriorityV1 {
		t.Errorf("algorithm = %q, want %q", result.Algorithm, schedmodels.AlgorithmPriorityV1)
	}
}

func TestRun_LocNhanVienInactive(t *testing.T) {
	inactive := namedPoolMember("Inactive", 1, 2, 0)
	inactive.IsActive = false
	active := namedPoolMember("Active", 5, 2, 0)

	task := taskAt(t, "10:00", "11:00")
	task.ID = primitive.NewObjectID()

	result := newAlgorithm().Run(schedmodels.AssignmentContext{
		Task:               task,
		CleanerAssignments: []schedmodels.CleanerGroupAssignment{inactive, active},
	})

	if !result.Assigned() || *result.CleanerID != active.CleanerID {
		t.Errorf("nhân viên inactive phải bị loại, got %s", result.CleanerName)
	}
}

func TestRun_TrungPriorityGiuThuTuInput(t *testing.T) {
	first := namedPoolMember("First", 1, 2, 0)
	second := namedPoolMember("Second", 1, 2, 0)

	task := taskAt(t, "10:00", "11:00")
	task.ID = primitive.NewObjectID()

	result := newAlgorithm().Run(schedmodels.AssignmentContext{
		Task:               task,
		CleanerAssignments: []schedmodels.CleanerGroupAssignment{first, second},
	})

	if !result.Assigned() || *result.CleanerID != first.CleanerID {
		t.Errorf("trùng priority thì nhân viên đứng trước trong input phải thắng, got %s", result.CleanerName)
	}
}

func TestRun_TaskCuaNguoiKhacKhongTinhVaoCapacity(t *testing.T) {
	p1 := namedPoolMember("P1", 1, 1, 0)
	other := primitive.NewObjectID()

	task := taskAt(t, "14:00", "15:00")
	task.ID = primitive.NewObjectID()

	// Task cùng ngày nhưng của nhân viên khác → không chặn P1
	result := newAlgorithm().Run(schedmodels.AssignmentContext{
		Task:               task,
		CleanerAssignments: []schedmodels.CleanerGroupAssignment{p1},
		ExistingTasks:      []schedmodels.Task{assignedTo(t, taskAt(t, "08:00", "09:00"), other)},
	})

	if !result.Assigned() || *result.CleanerID != p1.CleanerID {
		t.Errorf("task của nhân viên khác không được tính vào capacity của P1")
	}
}

func TestRun_ConfidenceGiamTheoSoTaskHienCo(t *testing.T) {
	p1 := namedPoolMember("P1", 1, 3, 0)

	task := taskAt(t, "14:00", "15:00")
	task.ID = primitive.NewObjectID()

	result := newAlgorithm().Run(schedmodels.AssignmentContext{
		Task:               task,
		CleanerAssignments: []schedmodels.CleanerGroupAssignment{p1},
		ExistingTasks:      []schedmodels.Task{assignedTo(t, taskAt(t, "08:00", "09:00"), p1.CleanerID)},
	})

	// 1000 - 1*100 + (3 - 1)
	if result.Confidence != 902 {
		t.Errorf("confidence = %d, want 902", result.Confidence)
	}
}
