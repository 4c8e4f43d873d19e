package auditing

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stensrud/agentic-dsta/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestActionLogger_ConcurrentAppends(t *testing.T) {
	logger := NewActionLogger()
	logger.Clear()

	const workers = 10
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				logger.Append(domain.Action{
					Tool:   "campaign_status_change",
					Params: map[string]any{"worker": worker, "seq": i},
				})
			}
		}(w)
	}
	wg.Wait()

	snapshot := logger.Snapshot()
	assert.Len(t, snapshot, workers*perWorker)

	seen := make(map[string]struct{}, len(snapshot))
	for _, action := range snapshot {
		key := fmt.Sprintf("%v-%v", action.Params["worker"], action.Params["seq"])
		_, duplicated := seen[key]
		assert.False(t, duplicated, "ação duplicada %s", key)
		seen[key] = struct{}{}
		assert.False(t, action.Timestamp.IsZero())
	}
}

func TestActionLogger_SnapshotIsCopy(t *testing.T) {
	logger := NewActionLogger()
	logger.Append(domain.Action{Tool: "budget_change"})

	snapshot := logger.Snapshot()
	snapshot[0].Tool = "alterado"

	assert.Equal(t, "budget_change", logger.Snapshot()[0].Tool)
	assert.Equal(t, 1, logger.Count())

	logger.Clear()
	assert.Empty(t, logger.Snapshot())
	assert.Len(t, snapshot, 1)
}
