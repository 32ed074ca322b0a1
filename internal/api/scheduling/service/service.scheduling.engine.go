package schedsvc

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	schedmodels "cleanops/internal/api/scheduling/models"
	"cleanops/internal/logger"
)

// AssignmentStore trừu tượng hóa mọi truy cập dữ liệu của engine.
// Bản production là MongoAssignmentStore; test dùng bản giả trong bộ nhớ.
type AssignmentStore interface {
	// GetTask đọc task theo ID. Không tìm thấy → common.ErrNotFound.
	GetTask(ctx context.Context, taskID primitive.ObjectID) (schedmodels.Task, error)

	// GetGroupForProperty resolve nhóm của bất động sản qua membership.
	// (nil, nil) = không thuộc nhóm nào (not applicable).
	GetGroupForProperty(ctx context.Context, propertyID primitive.ObjectID) (*schedmodels.PropertyGroup, error)

	// ListCleanerAssignments trả về pool nhân viên của nhóm (chưa lọc active)
	ListCleanerAssignments(ctx context.Context, groupID primitive.ObjectID) ([]schedmodels.CleanerGroupAssignment, error)

	// ListTasksOnDate trả về mọi task trong ngày, loại trừ excludeTaskID
	ListTasksOnDate(ctx context.Context, date string, excludeTaskID primitive.ObjectID) ([]schedmodels.Task, error)

	// ListPatterns trả về pattern telemetry của nhóm
	ListPatterns(ctx context.Context, groupID primitive.ObjectID) ([]schedmodels.AssignmentPattern, error)

	// ApplyAssignment ghi kết quả vào task với điều kiện bảo vệ.
	// (false, nil) = điều kiện bảo vệ chặn, không phải lỗi hạ tầng.
	ApplyAssignment(ctx context.Context, taskID, cleanerID primitive.ObjectID, confidence int) (bool, error)

	// RecordLog ghi một dòng nhật ký quyết định
	RecordLog(ctx context.Context, groupID primitive.ObjectID, result schedmodels.AssignmentResult) error
}

// MongoAssignmentStore ghép các service Mongo thành AssignmentStore production
type MongoAssignmentStore struct {
	Tasks              *TaskService
	Groups             *PropertyGroupService
	GroupMembers       *PropertyGroupMemberService
	CleanerAssignments *CleanerGroupAssignmentService
	Patterns           *AssignmentPatternService
	Logs               *AssignmentLogService
}

// NewMongoAssignmentStore tạo mới MongoAssignmentStore từ các service đã khởi tạo
func NewMongoAssignmentStore(tasks *TaskService, groups *PropertyGroupService, members *PropertyGroupMemberService, cleanerAssignments *CleanerGroupAssignmentService, patterns *AssignmentPatternService, logs *AssignmentLogService) *MongoAssignmentStore {
	return &MongoAssignmentStore{
		Tasks:              tasks,
		Groups:             groups,
		GroupMembers:       members,
		CleanerAssignments: cleanerAssignments,
		Patterns:           patterns,
		Logs:               logs,
	}
}

func (s *MongoAssignmentStore) GetTask(ctx context.Context, taskID primitive.ObjectID) (schedmodels.Task, error) {
	return s.Tasks.FindOneById(ctx, taskID)
}

func (s *MongoAssignmentStore) GetGroupForProperty(ctx context.Context, propertyID primitive.ObjectID) (*schedmodels.PropertyGroup, error) {
	return FindGroupForProperty(ctx, s.GroupMembers, s.Groups, propertyID)
}

func (s *MongoAssignmentStore) ListCleanerAssignments(ctx context.Context, groupID primitive.ObjectID) ([]schedmodels.CleanerGroupAssignment, error) {
	return s.CleanerAssignments.FindByGroup(ctx, groupID)
}

func (s *MongoAssignmentStore) ListTasksOnDate(ctx context.Context, date string, excludeTaskID primitive.ObjectID) ([]schedmodels.Task, error) {
	return s.Tasks.FindTasksOnDate(ctx, date, excludeTaskID)
}

func (s *MongoAssignmentStore) ListPatterns(ctx context.Context, groupID primitive.ObjectID) ([]schedmodels.AssignmentPattern, error) {
	return s.Patterns.FindByGroup(ctx, groupID)
}

func (s *MongoAssignmentStore) ApplyAssignment(ctx context.Context, taskID, cleanerID primitive.ObjectID, confidence int) (bool, error) {
	return s.Tasks.ApplyAssignment(ctx, taskID, cleanerID, confidence)
}

func (s *MongoAssignmentStore) RecordLog(ctx context.Context, groupID primitive.ObjectID, result schedmodels.AssignmentResult) error {
	return s.Logs.RecordDecision(ctx, groupID, result)
}

// AssignmentEngine điều phối toàn bộ pipeline phân công cho một task:
// đọc task → resolve nhóm → lắp context → chạy thuật toán → validate + persist + audit.
// Vì một nhân viên có thể thuộc nhiều nhóm, đoạn validate + persist được
// serialize theo cặp (nhân viên, ngày): trước khi ghi, engine đọc lại lịch
// trong ngày của nhân viên được chọn và kiểm tra khả dụng lần nữa dưới khóa,
// nên hai quyết định song song cho cùng một nhân viên không thể chồng giờ.
type AssignmentEngine struct {
	store     AssignmentStore
	builder   *ContextBuilder
	algorithm *AssignmentAlgorithm
	checker   *AvailabilityChecker

	storeTimeout time.Duration
	batchDelay   time.Duration

	// Bộ khóa striped cố định theo (nhân viên, ngày): không lớn dần theo thời gian,
	// hai cặp khác nhau có thể chia chung một mutex (chỉ serialize thừa, không sai)
	locks [64]sync.Mutex
}

// Số lần đánh giá lại tối đa khi quyết định bị vô hiệu bởi một phân công song song
const maxAssignAttempts = 3

// NewAssignmentEngine tạo mới AssignmentEngine
//
// Parameters:
//   - store: tầng truy cập dữ liệu
//   - storeTimeout: timeout cho MỖI lần truy cập store
//   - batchDelay: khoảng nghỉ giữa hai task khi phân công hàng loạt
func NewAssignmentEngine(store AssignmentStore, storeTimeout, batchDelay time.Duration) *AssignmentEngine {
	checker := NewAvailabilityChecker()
	return &AssignmentEngine{
		store:        store,
		builder:      NewContextBuilder(store, storeTimeout),
		algorithm:    NewAssignmentAlgorithm(checker),
		checker:      checker,
		storeTimeout: storeTimeout,
		batchDelay:   batchDelay,
	}
}

// lockFor trả về mutex của cặp (nhân viên, ngày)
func (e *AssignmentEngine) lockFor(cleanerID primitive.ObjectID, date string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(cleanerID.Hex()))
	h.Write([]byte{'|'})
	h.Write([]byte(date))
	return &e.locks[h.Sum32()%uint32(len(e.locks))]
}

// AssignTask chạy pipeline phân công cho một task.
//
// Hành vi theo từng nhánh:
//   - Task không tồn tại: trả lỗi, KHÔNG ghi gì.
//   - Bất động sản không thuộc nhóm nào, hoặc nhóm tắt auto-assign:
//     kết quả algorithm "none", KHÔNG ghi audit log (no-op có chủ đích).
//   - Lỗi hạ tầng ở bất kỳ bước nào: kết quả algorithm "error" với reason
//     là message lỗi gốc, đồng thời trả lỗi cho caller.
//   - Quyết định nghiệp vụ (chọn được/không chọn được ai): LUÔN ghi audit log,
//     kể cả khi điều kiện bảo vệ persist chặn việc ghi vào task.
//   - Quyết định dựa trên snapshot đã cũ (nhân viên vừa nhận một task chồng
//     giờ từ lần phân công song song): bị loại trong bước validate dưới khóa,
//     engine lắp lại context và đánh giá lại, tối đa maxAssignAttempts lần.
//
// Returns:
//   - schedmodels.AssignmentResult: kết quả luôn có giá trị, kể cả khi lỗi
//   - error: khác nil chỉ với lỗi hạ tầng hoặc task không tồn tại
func (e *AssignmentEngine) AssignTask(ctx context.Context, taskID primitive.ObjectID) (schedmodels.AssignmentResult, error) {
	appLogger := logger.GetAppLogger()

	// LOOKUP: đọc task
	lookupCtx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	task, err := e.store.GetTask(lookupCtx, taskID)
	cancel()
	if err != nil {
		appLogger.WithFields(logrus.Fields{
			"taskId": taskID.Hex(),
			"error":  err.Error(),
		}).Error("❌ Không đọc được task khi phân công")
		return errorResult(taskID, err), err
	}

	// GROUP_CHECK: resolve nhóm của bất động sản
	groupCtx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	group, err := e.store.GetGroupForProperty(groupCtx, task.PropertyID)
	cancel()
	if err != nil {
		result := errorResult(taskID, err)
		appLogger.WithFields(logrus.Fields{
			"taskId":     taskID.Hex(),
			"propertyId": task.PropertyID.Hex(),
			"error":      err.Error(),
		}).Error("❌ Không resolve được nhóm của bất động sản")
		return result, err
	}

	// Not applicable: không thuộc nhóm nào, hoặc nhóm tắt auto-assign.
	// Không ghi audit log cho nhánh này.
	if group == nil || !group.AutoAssignEnabled {
		appLogger.WithFields(logrus.Fields{
			"taskId":     taskID.Hex(),
			"propertyId": task.PropertyID.Hex(),
		}).Info("⏭️ Bỏ qua phân công: nhóm không áp dụng auto-assign")
		return schedmodels.AssignmentResult{
			TaskID:    taskID,
			Reason:    "auto-assign not applicable",
			Algorithm: schedmodels.AlgorithmNone,
		}, nil
	}

	// CONTEXT → DECIDE → VALIDATE+PERSIST, lặp lại khi quyết định dựa trên
	// snapshot đã cũ bị loại trong bước validate
	var result schedmodels.AssignmentResult
	for attempt := 1; ; attempt++ {
		actx, err := e.builder.Build(ctx, task, *group)
		if err != nil {
			errRes := errorResult(taskID, err)
			appLogger.WithFields(logrus.Fields{
				"taskId":  taskID.Hex(),
				"groupId": group.ID.Hex(),
				"error":   err.Error(),
			}).Error("❌ Không lắp ráp được context phân công")
			return errRes, err
		}

		// DECIDE: chạy thuật toán (thuần, không lỗi)
		result = e.algorithm.Run(*actx)
		if !result.Assigned() {
			break
		}

		// VALIDATE+PERSIST dưới khóa (nhân viên, ngày)
		committed, err := e.persistAssignment(ctx, task, actx.CleanerAssignments, result)
		if err != nil {
			errRes := errorResult(taskID, err)
			appLogger.WithFields(logrus.Fields{
				"taskId":    taskID.Hex(),
				"cleanerId": result.CleanerID.Hex(),
				"error":     err.Error(),
			}).Error("❌ Không ghi được kết quả phân công vào task")
			return errRes, err
		}
		if committed {
			break
		}

		if attempt >= maxAssignAttempts {
			appLogger.WithFields(logrus.Fields{
				"taskId":  taskID.Hex(),
				"groupId": group.ID.Hex(),
			}).Warn("⚠️ Quá số lần đánh giá lại, coi như không còn nhân viên khả dụng")
			result = schedmodels.AssignmentResult{
				TaskID:    taskID,
				Reason:    schedmodels.ReasonNoCleanersAfterCheck,
				Algorithm: schedmodels.AlgorithmPriorityV1,
			}
			break
		}
	}

	// AUDIT: mọi quyết định nghiệp vụ đều được ghi log
	auditCtx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	err = e.store.RecordLog(auditCtx, group.ID, result)
	cancel()
	if err != nil {
		errRes := errorResult(taskID, err)
		appLogger.WithFields(logrus.Fields{
			"taskId": taskID.Hex(),
			"error":  err.Error(),
		}).Error("❌ Không ghi được nhật ký phân công")
		return errRes, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"taskId":      result.TaskID.Hex(),
		"groupId":     group.ID.Hex(),
		"cleanerName": result.CleanerName,
		"confidence":  result.Confidence,
		"reason":      result.Reason,
		"algorithm":   result.Algorithm,
	}).Info("📋 Quyết định phân công tự động")

	return result, nil
}

// AssignTasks phân công tuần tự một danh sách task, nghỉ batchDelay giữa
// hai task liên tiếp để tránh dồn tải lên store. Một task lỗi không làm
// dừng batch — kết quả lỗi của nó vẫn có mặt trong slice trả về.
func (e *AssignmentEngine) AssignTasks(ctx context.Context, taskIDs []primitive.ObjectID) []schedmodels.AssignmentResult {
	results := make([]schedmodels.AssignmentResult, 0, len(taskIDs))

	for i, taskID := range taskIDs {
		if i > 0 && e.batchDelay > 0 {
			time.Sleep(e.batchDelay)
		}

		result, err := e.AssignTask(ctx, taskID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"taskId": taskID.Hex(),
				"error":  err.Error(),
			}).Error("❌ Phân công một task trong batch thất bại")
		}
		results = append(results, result)
	}

	return results
}

// persistAssignment ghi quyết định vào task dưới khóa (nhân viên, ngày).
// Trước khi ghi, đọc lại lịch trong ngày của nhân viên và kiểm tra khả dụng
// lần nữa: một nhân viên có thể thuộc nhiều nhóm nên quyết định dựa trên
// snapshot cũ phải bị loại trước khi chạm vào dữ liệu.
//
// Returns:
//   - bool: true nếu quyết định được giữ (kể cả khi điều kiện bảo vệ của task
//     chặn việc ghi), false nếu nhân viên không còn khả dụng và caller phải
//     đánh giá lại
//   - error: lỗi hạ tầng nếu có
func (e *AssignmentEngine) persistAssignment(ctx context.Context, task schedmodels.Task, pool []schedmodels.CleanerGroupAssignment, result schedmodels.AssignmentResult) (bool, error) {
	assignment, found := assignmentFor(pool, *result.CleanerID)
	if !found {
		return false, fmt.Errorf("cleaner %s không có trong pool của nhóm", result.CleanerID.Hex())
	}

	lock := e.lockFor(*result.CleanerID, task.Date)
	lock.Lock()
	defer lock.Unlock()

	// Đọc lại lịch trong ngày sau khi giữ khóa, không dùng lại snapshot của context
	readCtx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	sameDay, err := e.store.ListTasksOnDate(readCtx, task.Date, task.ID)
	cancel()
	if err != nil {
		return false, err
	}

	if !e.checker.IsAvailable(assignment, task, tasksForCleaner(sameDay, assignment)) {
		return false, nil
	}

	persistCtx, cancel := context.WithTimeout(ctx, e.storeTimeout)
	applied, err := e.store.ApplyAssignment(persistCtx, task.ID, *result.CleanerID, result.Confidence)
	cancel()
	if err != nil {
		return false, err
	}

	if !applied {
		// Task đã bị phân công thủ công giữa chừng — quyết định này thua,
		// nhưng vẫn ghi audit để truy vết
		logger.GetAppLogger().WithFields(logrus.Fields{
			"taskId":    task.ID.Hex(),
			"cleanerId": result.CleanerID.Hex(),
		}).Warn("⚠️ Kết quả phân công không được áp: task đã có phân công thủ công")
	}

	return true, nil
}

// assignmentFor tìm bản ghi liên kết của một nhân viên trong pool
func assignmentFor(pool []schedmodels.CleanerGroupAssignment, cleanerID primitive.ObjectID) (schedmodels.CleanerGroupAssignment, bool) {
	for _, ca := range pool {
		if ca.CleanerID == cleanerID {
			return ca, true
		}
	}
	return schedmodels.CleanerGroupAssignment{}, false
}

// errorResult đóng gói một lỗi hạ tầng thành AssignmentResult
func errorResult(taskID primitive.ObjectID, err error) schedmodels.AssignmentResult {
	return schedmodels.AssignmentResult{
		TaskID:    taskID,
		Reason:    err.Error(),
		Algorithm: schedmodels.AlgorithmError,
	}
}
