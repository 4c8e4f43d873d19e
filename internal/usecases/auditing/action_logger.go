package auditing

import (
	"sync"
	"time"

	"github.com/stensrud/agentic-dsta/internal/domain"
)

// ActionLogger acumula as ações de uma execução na ordem em que terminam.
// É seguro para uso concorrente; Snapshot devolve uma cópia.
type ActionLogger struct {
	mu      sync.Mutex
	actions []domain.Action
	now     func() time.Time
}

func NewActionLogger() *ActionLogger {
	return &ActionLogger{
		actions: make([]domain.Action, 0),
		now:     time.Now,
	}
}

// Clear descarta as ações acumuladas. Deve ser chamado uma vez no início da execução.
func (l *ActionLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.actions = make([]domain.Action, 0)
}

// Append registra a ação, preenchendo o timestamp quando ausente, e devolve o registro gravado
func (l *ActionLogger) Append(action domain.Action) domain.Action {
	l.mu.Lock()
	defer l.mu.Unlock()

	if action.Timestamp.IsZero() {
		action.Timestamp = l.now().UTC()
	}
	if action.Params == nil {
		action.Params = map[string]any{}
	}

	l.actions = append(l.actions, action)
	return action
}

func (l *ActionLogger) Snapshot() []domain.Action {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]domain.Action, len(l.actions))
	copy(snapshot, l.actions)
	return snapshot
}

func (l *ActionLogger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.actions)
}
