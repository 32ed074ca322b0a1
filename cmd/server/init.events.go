package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"cleanops/internal/api/events"
	schedmodels "cleanops/internal/api/scheduling/models"
	schedsvc "cleanops/internal/api/scheduling/service"
	"cleanops/internal/global"
	"cleanops/internal/logger"
)

// InitEventHandlers đăng ký các handler phản ứng với thay đổi dữ liệu.
// Task mới tạo (insert, status pending, chưa phân công) được đẩy qua engine
// ngay sau khi ghi — đây là hook "phân công khi task được tạo".
func InitEventHandlers(engine *schedsvc.AssignmentEngine) {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		if e.CollectionName != global.MongoDB_ColNames.Tasks || e.Operation != events.OpInsert {
			return
		}

		task, ok := e.Document.(schedmodels.Task)
		if !ok {
			return
		}
		if task.Status != schedmodels.TaskStatusPending || task.AssignedCleanerID != nil {
			return
		}

		// Event handler chạy trong goroutine riêng; request context có thể đã
		// kết thúc nên dùng context nền
		result, err := engine.AssignTask(context.Background(), task.ID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"taskId": task.ID.Hex(),
				"error":  err.Error(),
			}).Error("❌ Phân công tự động cho task mới tạo thất bại")
			return
		}

		logger.GetAppLogger().WithFields(logrus.Fields{
			"taskId":    task.ID.Hex(),
			"algorithm": result.Algorithm,
			"reason":    result.Reason,
		}).Info("🤖 Đã chạy phân công tự động cho task mới tạo")
	})

	logger.GetAppLogger().Info("Initialized data change event handlers")
}
