package schedsvc

import (
	"sort"

	schedmodels "cleanops/internal/api/scheduling/models"
)

// AssignmentAlgorithm - thuật toán priority-saturation: duyệt pool theo priority
// tăng dần, nhân viên đầu tiên được AvailabilityChecker chấp nhận sẽ thắng.
// Hàm total: mọi input hợp lệ (kể cả pool rỗng) đều cho ra AssignmentResult,
// không bao giờ trả lỗi cho các trường hợp nghiệp vụ không khớp.
type AssignmentAlgorithm struct {
	checker *AvailabilityChecker
}

// NewAssignmentAlgorithm tạo mới AssignmentAlgorithm
func NewAssignmentAlgorithm(checker *AvailabilityChecker) *AssignmentAlgorithm {
	return &AssignmentAlgorithm{checker: checker}
}

// Run chạy thuật toán trên context đã lắp ráp.
//
// Các bước:
//  1. Lọc assignment active, sort ổn định theo priority tăng dần
//     (trùng priority giữ thứ tự input).
//  2. Pool rỗng → no-worker, confidence 0, reason "no available cleaners".
//  3. Duyệt theo thứ tự, gọi AvailabilityChecker với subset task của từng
//     nhân viên; nhân viên ĐẦU TIÊN được chấp nhận thắng (priority saturation).
//  4. Confidence = 1000 - priority*100 + (maxTasksPerDay - số task hiện có trong ngày).
//  5. Tất cả bị từ chối → reason "no available cleaners after priority check".
func (a *AssignmentAlgorithm) Run(actx schedmodels.AssignmentContext) schedmodels.AssignmentResult {
	// 1. Lọc active + stable sort theo priority
	var pool []schedmodels.CleanerGroupAssignment
	for _, ca := range actx.CleanerAssignments {
		if ca.IsActive {
			pool = append(pool, ca)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Priority < pool[j].Priority
	})

	// 2. Pool rỗng
	if len(pool) == 0 {
		return schedmodels.AssignmentResult{
			TaskID:     actx.Task.ID,
			Confidence: 0,
			Reason:     schedmodels.ReasonNoCleaners,
			Algorithm:  schedmodels.AlgorithmPriorityV1,
		}
	}

	// 3. Duyệt theo priority, nhân viên đầu tiên khả dụng thắng
	for _, ca := range pool {
		cleanerTasks := tasksForCleaner(actx.ExistingTasks, ca)

		if a.checker.IsAvailable(ca, actx.Task, cleanerTasks) {
			cleanerID := ca.CleanerID
			return schedmodels.AssignmentResult{
				TaskID:      actx.Task.ID,
				CleanerID:   &cleanerID,
				CleanerName: ca.CleanerName,
				Confidence:  confidenceScore(ca, len(cleanerTasks)),
				Reason:      "assigned by priority",
				Algorithm:   schedmodels.AlgorithmPriorityV1,
			}
		}
	}

	// 5. Không ai khả dụng
	return schedmodels.AssignmentResult{
		TaskID:     actx.Task.ID,
		Confidence: 0,
		Reason:     schedmodels.ReasonNoCleanersAfterCheck,
		Algorithm:  schedmodels.AlgorithmPriorityV1,
	}
}

// confidenceScore tính điểm tin cậy cho một nhân viên được chọn.
// Không phải xác suất — chỉ là số hỗ trợ quyết định: đơn điệu cao hơn
// với priority thấp hơn và capacity còn lại nhiều hơn, chấp nhận hòa.
func confidenceScore(ca schedmodels.CleanerGroupAssignment, currentTaskCount int) int {
	return 1000 - ca.Priority*100 + (ca.MaxTasksPerDay - currentTaskCount)
}

// tasksForCleaner lọc các task cùng ngày thuộc về một nhân viên cụ thể
func tasksForCleaner(existing []schedmodels.Task, ca schedmodels.CleanerGroupAssignment) []schedmodels.Task {
	var result []schedmodels.Task
	for _, t := range existing {
		if t.AssignedCleanerID != nil && *t.AssignedCleanerID == ca.CleanerID {
			result = append(result, t)
		}
	}
	return result
}
