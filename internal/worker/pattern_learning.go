// Package worker chứa các batch job chạy nền theo lịch cron.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	schedmodels "cleanops/internal/api/scheduling/models"
	schedsvc "cleanops/internal/api/scheduling/service"
	"cleanops/internal/logger"
	"cleanops/internal/utility"
)

// PatternLearner - batch học pattern phân công từ các task đã hoàn thành.
// Hoàn toàn tách khỏi assignment engine: chỉ ghi vào collection pattern
// (một upsert atomic cho mỗi mẫu), không đọc lại quyết định phân công.
type PatternLearner struct {
	tasks    *schedsvc.TaskService
	groups   *schedsvc.PropertyGroupService
	members  *schedsvc.PropertyGroupMemberService
	patterns *schedsvc.AssignmentPatternService

	lookbackDays int
	cronSpec     string
	scheduler    *cron.Cron
}

// NewPatternLearner tạo mới PatternLearner
//
// Parameters:
//   - cronSpec: lịch chạy (cron spec 5 trường, ví dụ "0 * * * *")
//   - lookbackDays: số ngày quét ngược mỗi lượt
func NewPatternLearner(cronSpec string, lookbackDays int) (*PatternLearner, error) {
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
	patterns, err := schedsvc.NewAssignmentPatternService()
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment pattern service: %v", err)
	}

	return &PatternLearner{
		tasks:        tasks,
		groups:       groups,
		members:      members,
		patterns:     patterns,
		lookbackDays: lookbackDays,
		cronSpec:     cronSpec,
	}, nil
}

// RunOnce chạy một lượt học: quét các task đã qua giờ kết thúc trong cửa sổ
// lookback có đủ nhân viên và bất động sản, resolve nhóm qua membership, rồi
// ghi một mẫu vào bucket (nhóm, nhân viên, thứ, giờ) tương ứng. Task hoàn
// thành là mẫu thành công; task quá giờ mà chưa hoàn thành là mẫu thất bại,
// nên successRate của bucket phản ánh tỷ lệ hoàn thành thật.
//
// Returns:
//   - int: số mẫu đã ghi thành công
//   - error: lỗi hạ tầng khi quét; lỗi ghi từng mẫu chỉ được log, không dừng lượt
func (w *PatternLearner) RunOnce(ctx context.Context) (int, error) {
	log := logger.GetAppLogger()

	now := time.Now()
	since := now.AddDate(0, 0, -w.lookbackDays).UnixMilli()

	elapsedTasks, err := w.tasks.FindElapsedWithCleaner(ctx, since, now.UnixMilli())
	if err != nil {
		log.WithError(err).Error("📊 [PATTERN] Lỗi khi quét task trong cửa sổ học")
		return 0, err
	}

	processed := 0
	for _, task := range elapsedTasks {
		if task.AssignedCleanerID == nil {
			continue
		}

		group, err := schedsvc.FindGroupForProperty(ctx, w.members, w.groups, task.PropertyID)
		if err != nil {
			log.WithError(err).WithField("taskId", task.ID.Hex()).Warn("📊 [PATTERN] Không resolve được nhóm, bỏ qua task")
			continue
		}
		if group == nil {
			// Bất động sản không thuộc nhóm nào — không có bucket để ghi
			continue
		}

		weekday, hour, completionMinutes, success := sampleOf(task)

		err = w.patterns.RecordSample(ctx, group.ID, *task.AssignedCleanerID, weekday, hour, completionMinutes, success)
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"taskId":    task.ID.Hex(),
				"groupId":   group.ID.Hex(),
				"cleanerId": task.AssignedCleanerID.Hex(),
			}).Warn("📊 [PATTERN] Không ghi được mẫu, bỏ qua task")
			continue
		}
		processed++
	}

	log.WithFields(logrus.Fields{
		"scanned":   len(elapsedTasks),
		"processed": processed,
	}).Info("📊 [PATTERN] Hoàn thành một lượt học pattern")

	return processed, nil
}

// sampleOf rút các thành phần mẫu từ một task đã qua giờ kết thúc.
// Task hoàn thành là mẫu thành công và đóng góp thời gian hoàn thành;
// task quá giờ mà chưa hoàn thành là mẫu thất bại, không đóng góp thời gian
// (thời lượng lịch của task dở dang không phải thời gian hoàn thành thật).
func sampleOf(task schedmodels.Task) (weekday, hour int, completionMinutes int64, success bool) {
	weekday, hour = utility.WeekdayAndHourOf(task.StartAt)
	if task.Status == schedmodels.TaskStatusCompleted {
		success = true
		completionMinutes = int64(time.UnixMilli(task.EndAt).Sub(time.UnixMilli(task.StartAt)).Minutes())
	}
	return weekday, hour, completionMinutes, success
}

// Start đăng ký job vào scheduler cron và chạy nền theo lịch.
// Mỗi lượt chạy được bọc recover để panic không làm sập scheduler.
func (w *PatternLearner) Start() error {
	w.scheduler = cron.New()

	_, err := w.scheduler.AddFunc(w.cronSpec, func() {
		defer func() {
			if r := recover(); r != nil {
				logger.GetAppLogger().WithField("panic", r).Error("📊 [PATTERN] Panic trong lượt học pattern")
			}
		}()

		if _, err := w.RunOnce(context.Background()); err != nil {
			logger.GetAppLogger().WithError(err).Error("📊 [PATTERN] Lượt học pattern thất bại")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule pattern learning job: %v", err)
	}

	w.scheduler.Start()
	logger.GetAppLogger().WithField("cronSpec", w.cronSpec).Info("📊 [PATTERN] Đã khởi động batch học pattern")
	return nil
}

// Stop dừng scheduler, chờ lượt đang chạy kết thúc
func (w *PatternLearner) Stop() {
	if w.scheduler != nil {
		ctx := w.scheduler.Stop()
		<-ctx.Done()
	}
}
