package schedsvc

import (
	"sort"
	"time"

	schedmodels "cleanops/internal/api/scheduling/models"
	"cleanops/internal/utility"
)

// AvailabilityChecker kiểm tra một nhân viên có thể nhận thêm một task trong ngày hay không.
// Logic thuần, không I/O — interval-scheduling feasibility với buffer di chuyển.
type AvailabilityChecker struct{}

// NewAvailabilityChecker tạo mới AvailabilityChecker
func NewAvailabilityChecker() *AvailabilityChecker {
	return &AvailabilityChecker{}
}

// IsAvailable quyết định task ứng viên có chèn được vào lịch ngày của nhân viên không.
//
// Thứ tự kiểm tra:
//  1. Capacity: số task hiện có >= maxTasksPerDay → từ chối (trước mọi logic thời gian).
//  2. Ngày trống → nhận ngay.
//  3. Sort task hiện có theo startAt tăng dần, thử từng slot: trước task đầu,
//     giữa từng cặp liên tiếp, sau task cuối. Buffer được áp với TỪNG láng giềng
//     độc lập — hai task hiện có sát nhau không chừa đủ buffer hai phía thì slot
//     ở giữa bị từ chối đúng.
//
// Parameters:
//   - assignment: tư cách pool của nhân viên (capacity + buffer)
//   - candidate: task ứng viên
//   - existingTasksForDay: các task của CHÍNH nhân viên đó trong ngày
//
// Returns:
//   - bool: true nếu chèn được
func (c *AvailabilityChecker) IsAvailable(assignment schedmodels.CleanerGroupAssignment, candidate schedmodels.Task, existingTasksForDay []schedmodels.Task) bool {
	// 1. Capacity cap
	if len(existingTasksForDay) >= assignment.MaxTasksPerDay {
		return false
	}

	// 2. Ngày trống
	if len(existingTasksForDay) == 0 {
		return true
	}

	// 3. Sort theo startAt tăng dần
	existing := make([]schedmodels.Task, len(existingTasksForDay))
	copy(existing, existingTasksForDay)
	sort.SliceStable(existing, func(i, j int) bool {
		return existing[i].StartAt < existing[j].StartAt
	})

	buffer := utility.MinutesToDuration(assignment.TravelTimeMinutes)

	candStart := time.UnixMilli(candidate.StartAt)
	candEnd := time.UnixMilli(candidate.EndAt)

	// Slot trước task đầu tiên
	firstStart := time.UnixMilli(existing[0].StartAt)
	if !candEnd.Add(buffer).After(firstStart) {
		return true
	}

	// Slot giữa từng cặp liên tiếp
	for i := 0; i < len(existing)-1; i++ {
		prevEnd := time.UnixMilli(existing[i].EndAt)
		nextStart := time.UnixMilli(existing[i+1].StartAt)

		if !candStart.Before(prevEnd.Add(buffer)) && !candEnd.Add(buffer).After(nextStart) {
			return true
		}
	}

	// Slot sau task cuối cùng
	lastEnd := time.UnixMilli(existing[len(existing)-1].EndAt)
	if !candStart.Before(lastEnd.Add(buffer)) {
		return true
	}

	return false
}
