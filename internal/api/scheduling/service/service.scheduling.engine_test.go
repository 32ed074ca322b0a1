package schedsvc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	schedmodels "cleanops/internal/api/scheduling/models"
	"cleanops/internal/common"
)

// fakeAssignmentStore - store trong bộ nhớ cho test engine
type fakeAssignmentStore struct {
	task     schedmodels.Task
	taskErr  error
	group    *schedmodels.PropertyGroup
	groupErr error

	cleanerAssignments []schedmodels.CleanerGroupAssignment
	tasksOnDate        []schedmodels.Task
	patterns           []schedmodels.AssignmentPattern
	listErr            error

	// staleListReads > 0: bấy nhiêu lần đọc ListTasksOnDate đầu tiên trả về
	// staleTasksOnDate thay vì tasksOnDate, mô phỏng snapshot đã cũ
	staleTasksOnDate []schedmodels.Task
	staleListReads   int
	listCalls        int

	applyApplied bool
	applyErr     error
	applyCalls   int

	loggedResults []schedmodels.AssignmentResult
	logErr        error
}

func (f *fakeAssignmentStore) GetTask(ctx context.Context, taskID primitive.ObjectID) (schedmodels.Task, error) {
	if f.taskErr != nil {
		return schedmodels.Task{}, f.taskErr
	}
	return f.task, nil
}

func (f *fakeAssignmentStore) GetGroupForProperty(ctx context.Context, propertyID primitive.ObjectID) (*schedmodels.PropertyGroup, error) {
	if f.groupErr != nil {
		return nil, f.groupErr
	}
	return f.group, nil
}

func (f *fakeAssignmentStore) ListCleanerAssignments(ctx context.Context, groupID primitive.ObjectID) ([]schedmodels.CleanerGroupAssignment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.cleanerAssignments, nil
}

func (f *fakeAssignmentStore) ListTasksOnDate(ctx context.Context, date string, excludeTaskID primitive.ObjectID) ([]schedmodels.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.listCalls++
	src := f.tasksOnDate
	if f.listCalls <= f.staleListReads {
		src = f.staleTasksOnDate
	}
	var out []schedmodels.Task
	for _, t := range src {
		if t.ID != excludeTaskID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeAssignmentStore) ListPatterns(ctx context.Context, groupID primitive.ObjectID) ([]schedmodels.AssignmentPattern, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.patterns, nil
}

func (f *fakeAssignmentStore) ApplyAssignment(ctx context.Context, taskID, cleanerID primitive.ObjectID, confidence int) (bool, error) {
	f.applyCalls++
	if f.applyErr != nil {
		return false, f.applyErr
	}
	return f.applyApplied, nil
}

func (f *fakeAssignmentStore) RecordLog(ctx context.Context, groupID primitive.ObjectID, result schedmodels.AssignmentResult) error {
	if f.logErr != nil {
		return f.logErr
	}
	f.loggedResults = append(f.loggedResults, result)
	return nil
}

func newTestEngine(store AssignmentStore) *AssignmentEngine {
	return NewAssignmentEngine(store, 2*time.Second, 0)
}

func enabledGroup() *schedmodels.PropertyGroup {
	return &schedmodels.PropertyGroup{
		ID:                primitive.NewObjectID(),
		Name:              "Khu trung tâm",
		IsActive:          true,
		AutoAssignEnabled: true,
	}
}

func pendingTask(t *testing.T) schedmodels.Task {
	task := taskAt(t, "10:00", "11:00")
	task.ID = primitive.NewObjectID()
	task.PropertyID = primitive.NewObjectID()
	return task
}

func TestAssignTask_PhanCongVaGhiNhatKy(t *testing.T) {
	task := pendingTask(t)
	p1 := namedPoolMember("P1", 1, 2, 30)

	store := &fakeAssignmentStore{
		task:               task,
		group:              enabledGroup(),
		cleanerAssignments: []schedmodels.CleanerGroupAssignment{p1},
		applyApplied:       true,
	}

	result, err := newTestEngine(store).AssignTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("AssignTask lỗi: %v", err)
	}

	if !result.Assigned() || *result.CleanerID != p1.CleanerID {
		t.Errorf("phải chọn P1, got %+v", result)
	}
	if store.applyCalls != 1 {
		t.Errorf("applyCalls = %d, want 1", store.applyCalls)
	}
	if len(store.loggedResults) != 1 {
		t.Fatalf("phải ghi đúng 1 dòng nhật ký, got %d", len(store.loggedResults))
	}
	if store.loggedResults[0].Algorithm != schedmodels.AlgorithmPriorityV1 {
		t.Errorf("nhật ký phải mang tag %q, got %q", schedmodels.AlgorithmPriorityV1, store.loggedResults[0].Algorithm)
	}
}

func TestAssignTask_TaskKhongTonTai(t *testing.T) {
	store := &fakeAssignmentStore{taskErr: common.ErrNotFound}

	result, err := newTestEngine(store).AssignTask(context.Background(), primitive.NewObjectID())
	if err == nil {
		t.Fatalf("task không tồn tại phải trả lỗi")
	}
	if result.Algorithm != schedmodels.AlgorithmError {
		t.Errorf("algorithm = %q, want %q", result.Algorithm, schedmodels.AlgorithmError)
	}
	if store.applyCalls != 0 || len(store.loggedResults) != 0 {
		t.Errorf("task không tồn tại thì không được ghi gì (apply=%d, logs=%d)", store.applyCalls, len(store.loggedResults))
	}
}

func TestAssignTask_NhomTatAutoAssign(t *testing.T) {
	// Scenario E: nhóm tắt auto-assign → no-op, tag "none", KHÔNG ghi nhật ký
	task := pendingTask(t)
	group := enabledGroup()
	group.AutoAssignEnabled = false

	store := &fakeAssignmentStore{task: task, group: group}

	result, err := newTestEngine(store).AssignTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("nhánh not-applicable không phải lỗi: %v", err)
	}
	if result.Assigned() {
		t.Errorf("không được chọn nhân viên khi nhóm tắt auto-assign")
	}
	if result.Algorithm != schedmodels.AlgorithmNone {
		t.Errorf("algorithm = %q, want %q", result.Algorithm, schedmodels.AlgorithmNone)
	}
	if store.applyCalls != 0 {
		t.Errorf("task phải được giữ nguyên, applyCalls = %d", store.applyCalls)
	}
	if len(store.loggedResults) != 0 {
		t.Errorf("nhánh not-applicable không được ghi nhật ký, got %d dòng", len(store.loggedResults))
	}
}

func TestAssignTask_KhongThuocNhomNao(t *testing.T) {
	task := pendingTask(t)
	store := &fakeAssignmentStore{task: task, group: nil}

	result, err := newTestEngine(store).AssignTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("không thuộc nhóm nào không phải lỗi: %v", err)
	}
	if result.Algorithm != schedmodels.AlgorithmNone {
		t.Errorf("algorithm = %q, want %q", result.Algorithm, schedmodels.AlgorithmNone)
	}
	if len(store.loggedResults) != 0 {
		t.Errorf("không được ghi nhật ký khi bất động sản không thuộc nhóm nào")
	}
}

func TestAssignTask_LoiHaTangKhiLapContext(t *testing.T) {
	task := pendingTask(t)
	infraErr := errors.New("connection reset by peer")

	store := &fakeAssignmentStore{
		task:    task,
		group:   enabledGroup(),
		listErr: infraErr,
	}

	result, err := newTestEngine(store).AssignTask(context.Background(), task.ID)
	if err == nil {
		t.Fatalf("lỗi hạ tầng phải được trả về cho caller")
	}
	if result.Algorithm != schedmodels.AlgorithmError {
		t.Errorf("algorithm = %q, want %q", result.Algorithm, schedmodels.AlgorithmError)
	}
	if result.Reason != infraErr.Error() {
		t.Errorf("reason = %q, want message lỗi gốc %q", result.Reason, infraErr.Error())
	}
}

func TestAssignTask_KhongCoUngVienVanGhiNhatKy(t *testing.T) {
	// Pool rỗng: quyết định nghiệp vụ "không chọn được ai" vẫn phải có audit row
	task := pendingTask(t)
	store := &fakeAssignmentStore{task: task, group: enabledGroup()}

	result, err := newTestEngine(store).AssignTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("không có ứng viên không phải lỗi: %v", err)
	}
	if result.Assigned() {
		t.Errorf("pool rỗng mà vẫn chọn được nhân viên")
	}
	if result.Reason != schedmodels.ReasonNoCleaners {
		t.Errorf("reason = %q, want %q", result.Reason, schedmodels.ReasonNoCleaners)
	}
	if store.applyCalls != 0 {
		t.Errorf("không chọn được ai thì không được ghi vào task")
	}
	if len(store.loggedResults) != 1 {
		t.Errorf("phải ghi đúng 1 dòng nhật ký, got %d", len(store.loggedResults))
	}
}

func TestAssignTask_DieuKienBaoVeChanVanGhiNhatKy(t *testing.T) {
	// Task đã bị phân công thủ công giữa chừng: quyết định thua nhưng vẫn có audit row
	task := pendingTask(t)
	p1 := namedPoolMember("P1", 1, 2, 30)

	store := &fakeAssignmentStore{
		task:               task,
		group:              enabledGroup(),
		cleanerAssignments: []schedmodels.CleanerGroupAssignment{p1},
		applyApplied:       false,
	}

	result, err := newTestEngine(store).AssignTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("điều kiện bảo vệ chặn không phải lỗi: %v", err)
	}
	if !result.Assigned() {
		t.Errorf("quyết định vẫn phải mang nhân viên được chọn")
	}
	if len(store.loggedResults) != 1 {
		t.Errorf("phải ghi đúng 1 dòng nhật ký, got %d", len(store.loggedResults))
	}
}

func TestAssignTask_DanhGiaLaiIdempotent(t *testing.T) {
	// Chạy lại trên input không đổi phải cho cùng nhân viên và cùng confidence
	task := pendingTask(t)
	p1 := namedPoolMember("P1", 1, 2, 30)

	store := &fakeAssignmentStore{
		task:               task,
		group:              enabledGroup(),
		cleanerAssignments: []schedmodels.CleanerGroupAssignment{p1},
		applyApplied:       true,
	}

	engine := newTestEngine(store)
	first, err := engine.AssignTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("lần chạy đầu lỗi: %v", err)
	}
	second, err := engine.AssignTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("lần chạy lại lỗi: %v", err)
	}

	if *first.CleanerID != *second.CleanerID || first.Confidence != second.Confidence {
		t.Errorf("đánh giá lại không ổn định: lần 1 (%s, %d), lần 2 (%s, %d)",
			first.CleanerName, first.Confidence, second.CleanerName, second.Confidence)
	}
}

func TestAssignTasks_TraDuKetQuaChoTungTask(t *testing.T) {
	task := pendingTask(t)
	p1 := namedPoolMember("P1", 1, 2, 30)

	store := &fakeAssignmentStore{
		task:               task,
		group:              enabledGroup(),
		cleanerAssignments: []schedmodels.CleanerGroupAssignment{p1},
		applyApplied:       true,
	}

	ids := []primitive.ObjectID{task.ID, task.ID}
	results := newTestEngine(store).AssignTasks(context.Background(), ids)

	if len(results) != len(ids) {
		t.Fatalf("batch phải trả đủ %d kết quả, got %d", len(ids), len(results))
	}
	for i, r := range results {
		if r.TaskID != task.ID {
			t.Errorf("kết quả %d mang sai taskId", i)
		}
	}
}

func TestAssignTask_QuyetDinhTrenSnapshotCuBiLoai(t *testing.T) {
	// Thuật toán chọn nhân viên trên snapshot không thấy task chồng giờ đã commit;
	// bước validate dưới khóa đọc lại lịch mới phải loại quyết định đó,
	// và lần đánh giá lại (thấy lịch mới) không chọn được ai
	p1 := namedPoolMember("P1", 1, 5, 0)

	task := pendingTask(t)
	task.StartAt = taskAt(t, "10:30", "11:30").StartAt
	task.EndAt = taskAt(t, "10:30", "11:30").EndAt

	committed := assignedTo(t, taskAt(t, "10:00", "11:00"), p1.CleanerID)
	committed.ID = primitive.NewObjectID()

	store := &fakeAssignmentStore{
		task:               task,
		group:              enabledGroup(),
		cleanerAssignments: []schedmodels.CleanerGroupAssignment{p1},
		tasksOnDate:        []schedmodels.Task{committed},
		staleTasksOnDate:   nil,
		staleListReads:     1, // lần đọc đầu (context) chưa thấy task đã commit
		applyApplied:       true,
	}

	result, err := newTestEngine(store).AssignTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("AssignTask lỗi: %v", err)
	}

	if result.Assigned() {
		t.Fatalf("quyết định trên snapshot cũ phải bị loại, got %s", result.CleanerName)
	}
	if result.Reason != schedmodels.ReasonNoCleanersAfterCheck {
		t.Errorf("reason = %q, want %q", result.Reason, schedmodels.ReasonNoCleanersAfterCheck)
	}
	if store.applyCalls != 0 {
		t.Errorf("không được ghi vào task khi validate thất bại, applyCalls = %d", store.applyCalls)
	}
	if len(store.loggedResults) != 1 {
		t.Errorf("quyết định cuối vẫn phải có audit row, got %d", len(store.loggedResults))
	}
}

// sharedScheduleStore - store trong bộ nhớ có trạng thái chia sẻ giữa các nhóm,
// ApplyAssignment thật sự commit vào lịch để các lần đọc sau nhìn thấy
type sharedScheduleStore struct {
	mu sync.Mutex

	tasks           map[primitive.ObjectID]schedmodels.Task
	groupByProperty map[primitive.ObjectID]*schedmodels.PropertyGroup
	poolByGroup     map[primitive.ObjectID][]schedmodels.CleanerGroupAssignment

	loggedResults []schedmodels.AssignmentResult
}

func (s *sharedScheduleStore) GetTask(ctx context.Context, taskID primitive.ObjectID) (schedmodels.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, exist := s.tasks[taskID]
	if !exist {
		return schedmodels.Task{}, common.ErrNotFound
	}
	return task, nil
}

func (s *sharedScheduleStore) GetGroupForProperty(ctx context.Context, propertyID primitive.ObjectID) (*schedmodels.PropertyGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groupByProperty[propertyID], nil
}

func (s *sharedScheduleStore) ListCleanerAssignments(ctx context.Context, groupID primitive.ObjectID) ([]schedmodels.CleanerGroupAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]schedmodels.CleanerGroupAssignment{}, s.poolByGroup[groupID]...), nil
}

func (s *sharedScheduleStore) ListTasksOnDate(ctx context.Context, date string, excludeTaskID primitive.ObjectID) ([]schedmodels.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []schedmodels.Task
	for _, task := range s.tasks {
		if task.Date == date && task.ID != excludeTaskID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (s *sharedScheduleStore) ListPatterns(ctx context.Context, groupID primitive.ObjectID) ([]schedmodels.AssignmentPattern, error) {
	return nil, nil
}

func (s *sharedScheduleStore) ApplyAssignment(ctx context.Context, taskID, cleanerID primitive.ObjectID, confidence int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := s.tasks[taskID]
	task.AssignedCleanerID = &cleanerID
	task.AssignmentConfidence = &confidence
	task.AutoAssigned = true
	s.tasks[taskID] = task
	return true, nil
}

func (s *sharedScheduleStore) RecordLog(ctx context.Context, groupID primitive.ObjectID, result schedmodels.AssignmentResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedResults = append(s.loggedResults, result)
	return nil
}

func TestAssignTask_NhanVienChungHaiNhomKhongNhanHaiTaskChongGio(t *testing.T) {
	// Một nhân viên thuộc hai nhóm, hai task chồng giờ cùng ngày của hai nhóm
	// được phân công đồng thời: chỉ một task được gán, task kia phải bị từ chối
	cleanerID := primitive.NewObjectID()
	memberOf := func(groupID primitive.ObjectID) schedmodels.CleanerGroupAssignment {
		ca := poolMember(1, 5, 0)
		ca.CleanerID = cleanerID
		ca.GroupID = groupID
		ca.CleanerName = "Chung"
		return ca
	}

	group1 := enabledGroup()
	group2 := enabledGroup()

	task1 := taskAt(t, "10:00", "11:00")
	task1.ID = primitive.NewObjectID()
	task1.PropertyID = primitive.NewObjectID()
	task2 := taskAt(t, "10:30", "11:30")
	task2.ID = primitive.NewObjectID()
	task2.PropertyID = primitive.NewObjectID()

	store := &sharedScheduleStore{
		tasks: map[primitive.ObjectID]schedmodels.Task{
			task1.ID: task1,
			task2.ID: task2,
		},
		groupByProperty: map[primitive.ObjectID]*schedmodels.PropertyGroup{
			task1.PropertyID: group1,
			task2.PropertyID: group2,
		},
		poolByGroup: map[primitive.ObjectID][]schedmodels.CleanerGroupAssignment{
			group1.ID: {memberOf(group1.ID)},
			group2.ID: {memberOf(group2.ID)},
		},
	}

	engine := newTestEngine(store)

	var wg sync.WaitGroup
	results := make([]schedmodels.AssignmentResult, 2)
	errs := make([]error, 2)
	for i, taskID := range []primitive.ObjectID{task1.ID, task2.ID} {
		wg.Add(1)
		go func(i int, taskID primitive.ObjectID) {
			defer wg.Done()
			results[i], errs[i] = engine.AssignTask(context.Background(), taskID)
		}(i, taskID)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("AssignTask %d lỗi: %v", i, err)
		}
	}

	assignedCount := 0
	for _, r := range results {
		if r.Assigned() {
			assignedCount++
		}
		if !r.Assigned() && r.Reason != schedmodels.ReasonNoCleanersAfterCheck {
			t.Errorf("task thua phải mang reason %q, got %q", schedmodels.ReasonNoCleanersAfterCheck, r.Reason)
		}
	}
	if assignedCount != 1 {
		t.Fatalf("hai task chồng giờ chỉ được gán cho nhân viên chung đúng 1 lần, got %d", assignedCount)
	}

	committed := 0
	for _, task := range store.tasks {
		if task.AssignedCleanerID != nil {
			committed++
		}
	}
	if committed != 1 {
		t.Errorf("store chỉ được commit đúng 1 task, got %d", committed)
	}
}

func TestAssignTasks_KetQuaLoiVanCoMatTrongBatch(t *testing.T) {
	store := &fakeAssignmentStore{taskErr: common.ErrNotFound}

	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	results := newTestEngine(store).AssignTasks(context.Background(), ids)

	if len(results) != 2 {
		t.Fatalf("batch phải trả đủ 2 kết quả kể cả khi lỗi, got %d", len(results))
	}
	for _, r := range results {
		if r.Algorithm != schedmodels.AlgorithmError {
			t.Errorf("kết quả lỗi phải mang tag %q, got %q", schedmodels.AlgorithmError, r.Algorithm)
		}
	}
}
