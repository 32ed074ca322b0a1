// Package synchdl - các handler thuộc domain Sync.
package synchdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "cleanops/internal/api/base/handler"
	syncdto "cleanops/internal/api/sync/dto"
	syncsvc "cleanops/internal/api/sync/service"
	"cleanops/internal/common"
	"cleanops/internal/global"
)

// ReservationSyncHandler xử lý webhook ingest sự kiện đặt phòng
type ReservationSyncHandler struct {
	syncService *syncsvc.ReservationSyncService
}

// NewReservationSyncHandler tạo mới ReservationSyncHandler
func NewReservationSyncHandler(syncService *syncsvc.ReservationSyncService) *ReservationSyncHandler {
	return &ReservationSyncHandler{syncService: syncService}
}

// HandleSyncReservations nhận batch reservation, tạo task check-out và
// phân công từng task vừa tạo. Response chứa kết quả cho từng reservation.
func (h *ReservationSyncHandler) HandleSyncReservations(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input syncdto.ReservationSyncInput
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

		results := h.syncService.SyncReservations(c.Context(), input)

		created := 0
		for _, r := range results {
			if r.TaskID != "" {
				created++
			}
		}

		basehdl.HandleResponse(c, fiber.Map{
			"total":   len(results),
			"created": created,
			"results": results,
		}, nil)
		return nil
	})
}
