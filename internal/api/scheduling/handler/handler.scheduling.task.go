package schedhdl

import (
	"fmt"

	basehdl "cleanops/internal/api/base/handler"
	scheddto "cleanops/internal/api/scheduling/dto"
	schedmodels "cleanops/internal/api/scheduling/models"
	schedsvc "cleanops/internal/api/scheduling/service"
)

// TaskHandler xử lý các request liên quan đến Task
type TaskHandler struct {
	*basehdl.BaseHandler[schedmodels.Task, scheddto.TaskCreateInput, scheddto.TaskUpdateInput]
	TaskService *schedsvc.TaskService
}

// NewTaskHandler tạo mới TaskHandler
func NewTaskHandler() (*TaskHandler, error) {
	taskService, err := schedsvc.NewTaskService()
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %v", err)
	}

	hdl := &TaskHandler{
		BaseHandler: basehdl.NewBaseHandler[schedmodels.Task, scheddto.TaskCreateInput, scheddto.TaskUpdateInput](taskService),
		TaskService: taskService,
	}
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields:     []string{},
		AllowedOperators: []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"},
		MaxFields:        10,
	})
	return hdl, nil
}
