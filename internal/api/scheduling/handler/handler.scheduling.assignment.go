package schedhdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "cleanops/internal/api/base/handler"
	scheddto "cleanops/internal/api/scheduling/dto"
	schedmodels "cleanops/internal/api/scheduling/models"
	schedsvc "cleanops/internal/api/scheduling/service"
	"cleanops/internal/common"
	"cleanops/internal/global"
)

// PatternRecomputer trừu tượng hóa batch học pattern để handler trigger thủ công
type PatternRecomputer interface {
	RunOnce(ctx context.Context) (int, error)
}

// AssignmentHandler xử lý các request trigger phân công tự động
type AssignmentHandler struct {
	engine     *schedsvc.AssignmentEngine
	recomputer PatternRecomputer
}

// NewAssignmentHandler tạo mới AssignmentHandler.
// Engine và recomputer là singleton được khởi tạo ở tầng bootstrap.
func NewAssignmentHandler(engine *schedsvc.AssignmentEngine, recomputer PatternRecomputer) *AssignmentHandler {
	return &AssignmentHandler{
		engine:     engine,
		recomputer: recomputer,
	}
}

// HandleAssignTask xử lý request phân công một task theo ID trên path
func (h *AssignmentHandler) HandleAssignTask(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		idStr := c.Params("taskId")

		taskID, err := primitive.ObjectIDFromHex(idStr)
		if err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code":    common.ErrCodeValidationFormat.Code,
				"message": fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", idStr),
				"status":  "error",
			})
			return nil
		}

		result, err := h.engine.AssignTask(c.Context(), taskID)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleAssignBatch xử lý request phân công hàng loạt.
// Các task được xử lý tuần tự; một task lỗi không dừng batch,
// kết quả (kể cả kết quả lỗi) luôn đủ một dòng cho mỗi task.
func (h *AssignmentHandler) HandleAssignBatch(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input scheddto.AssignBatchInput
		if err := c.Bind().Body(&input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code":    common.ErrCodeValidationFormat.Code,
				"message": fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				"status":  "error",
			})
			return nil
		}

		if err := global.Validate.Struct(&input); err != nil {
			c.Status(common.StatusBadRequest).JSON(fiber.Map{
				"code":    common.ErrCodeValidationInput.Code,
				"message": common.MsgValidationError,
				"details": err.Error(),
				"status":  "error",
			})
			return nil
		}

		taskIDs := make([]primitive.ObjectID, 0, len(input.TaskIDs))
		for _, idStr := range input.TaskIDs {
			taskID, err := primitive.ObjectIDFromHex(idStr)
			if err != nil {
				c.Status(common.StatusBadRequest).JSON(fiber.Map{
					"code":    common.ErrCodeValidationFormat.Code,
					"message": fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", idStr),
					"status":  "error",
				})
				return nil
			}
			taskIDs = append(taskIDs, taskID)
		}

		results := h.engine.AssignTasks(c.Context(), taskIDs)

		assigned := 0
		for _, r := range results {
			if r.Assigned() && r.Algorithm == schedmodels.AlgorithmPriorityV1 {
				assigned++
			}
		}

		basehdl.HandleResponse(c, fiber.Map{
			"total":    len(results),
			"assigned": assigned,
			"results":  results,
		}, nil)
		return nil
	})
}

// HandleRecomputePatterns trigger thủ công một lượt học pattern (ngoài lịch cron)
func (h *AssignmentHandler) HandleRecomputePatterns(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		processed, err := h.recomputer.RunOnce(c.Context())
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, fiber.Map{
			"samplesProcessed": processed,
		}, nil)
		return nil
	})
}
