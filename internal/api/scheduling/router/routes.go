// Package router đăng ký các route thuộc domain Scheduling: Task, PropertyGroup,
// PropertyGroupMember, CleanerGroupAssignment, AssignmentPattern, AssignmentLog, Assignment.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "cleanops/internal/api/router"
	schedhdl "cleanops/internal/api/scheduling/handler"
	schedsvc "cleanops/internal/api/scheduling/service"
)

// Register trả về hàm đăng ký tất cả route scheduling lên v1.
// Engine và recomputer là singleton do tầng bootstrap khởi tạo và truyền xuống.
func Register(engine *schedsvc.AssignmentEngine, recomputer schedhdl.PatternRecomputer) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		taskHandler, err := schedhdl.NewTaskHandler()
		if err != nil {
			return fmt.Errorf("create task handler: %w", err)
		}
		r.RegisterCRUDRoutes(v1, "/scheduling/task", taskHandler, apirouter.ReadWriteConfig)

		groupHandler, err := schedhdl.NewPropertyGroupHandler()
		if err != nil {
			return fmt.Errorf("create property group handler: %w", err)
		}
		r.RegisterCRUDRoutes(v1, "/scheduling/group", groupHandler, apirouter.ReadWriteConfig)

		memberHandler, err := schedhdl.NewPropertyGroupMemberHandler()
		if err != nil {
			return fmt.Errorf("create property group member handler: %w", err)
		}
		r.RegisterCRUDRoutes(v1, "/scheduling/group-member", memberHandler, apirouter.ReadWriteConfig)

		cleanerAssignmentHandler, err := schedhdl.NewCleanerGroupAssignmentHandler()
		if err != nil {
			return fmt.Errorf("create cleaner group assignment handler: %w", err)
		}
		r.RegisterCRUDRoutes(v1, "/scheduling/cleaner-assignment", cleanerAssignmentHandler, apirouter.ReadWriteConfig)

		patternHandler, err := schedhdl.NewAssignmentPatternHandler()
		if err != nil {
			return fmt.Errorf("create assignment pattern handler: %w", err)
		}
		r.RegisterCRUDRoutes(v1, "/scheduling/pattern", patternHandler, apirouter.ReadOnlyConfig)

		logHandler, err := schedhdl.NewAssignmentLogHandler()
		if err != nil {
			return fmt.Errorf("create assignment log handler: %w", err)
		}
		r.RegisterCRUDRoutes(v1, "/scheduling/log", logHandler, apirouter.ReadOnlyConfig)

		assignmentHandler := schedhdl.NewAssignmentHandler(engine, recomputer)
		apirouter.RegisterRouteWithMiddleware(v1, "/scheduling/assignment", "POST", "/assign/:taskId", nil, assignmentHandler.HandleAssignTask)
		apirouter.RegisterRouteWithMiddleware(v1, "/scheduling/assignment", "POST", "/assign-batch", nil, assignmentHandler.HandleAssignBatch)
		apirouter.RegisterRouteWithMiddleware(v1, "/scheduling/pattern", "POST", "/recompute", nil, assignmentHandler.HandleRecomputePatterns)

		return nil
	}
}
