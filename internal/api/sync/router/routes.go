// Package router đăng ký các route thuộc domain Sync.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "cleanops/internal/api/router"
	schedsvc "cleanops/internal/api/scheduling/service"
	synchdl "cleanops/internal/api/sync/handler"
	syncsvc "cleanops/internal/api/sync/service"
)

// Register trả về hàm đăng ký các route sync lên v1.
// Engine là singleton do tầng bootstrap khởi tạo và truyền xuống.
func Register(engine *schedsvc.AssignmentEngine) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		syncService, err := syncsvc.NewReservationSyncService(engine)
		if err != nil {
			return fmt.Errorf("create reservation sync service: %w", err)
		}

		syncHandler := synchdl.NewReservationSyncHandler(syncService)
		apirouter.RegisterRouteWithMiddleware(v1, "/sync", "POST", "/reservations", nil, syncHandler.HandleSyncReservations)

		return nil
	}
}
