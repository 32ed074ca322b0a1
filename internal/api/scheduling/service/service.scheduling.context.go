package schedsvc

import (
	"context"
	"sync"
	"time"

	schedmodels "cleanops/internal/api/scheduling/models"
)

// ContextBuilder lắp ráp AssignmentContext cho một task bằng cách fan-out
// song song 3 lần đọc độc lập (pool nhân viên, task cùng ngày, pattern).
// Mỗi lần đọc có timeout riêng; lỗi đầu tiên gặp được trả về.
type ContextBuilder struct {
	store        AssignmentStore
	storeTimeout time.Duration
}

// NewContextBuilder tạo mới ContextBuilder
func NewContextBuilder(store AssignmentStore, storeTimeout time.Duration) *ContextBuilder {
	return &ContextBuilder{
		store:        store,
		storeTimeout: storeTimeout,
	}
}

// Build lắp ráp context quyết định cho task thuộc group.
// ExistingTasks loại trừ chính task ứng viên để re-evaluate là idempotent.
func (b *ContextBuilder) Build(ctx context.Context, task schedmodels.Task, group schedmodels.PropertyGroup) (*schedmodels.AssignmentContext, error) {
	actx := &schedmodels.AssignmentContext{
		Task:  task,
		Group: group,
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	wg.Add(3)

	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, b.storeTimeout)
		defer cancel()

		pool, err := b.store.ListCleanerAssignments(fetchCtx, group.ID)
		if err != nil {
			setErr(err)
			return
		}
		actx.CleanerAssignments = pool
	}()

	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, b.storeTimeout)
		defer cancel()

		existing, err := b.store.ListTasksOnDate(fetchCtx, task.Date, task.ID)
		if err != nil {
			setErr(err)
			return
		}
		actx.ExistingTasks = existing
	}()

	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, b.storeTimeout)
		defer cancel()

		patterns, err := b.store.ListPatterns(fetchCtx, group.ID)
		if err != nil {
			setErr(err)
			return
		}
		actx.Patterns = patterns
	}()

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return actx, nil
}
