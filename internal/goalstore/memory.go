package goalstore

import (
	"context"
	"sync"

	"tablero/internal/model"
)

// MemoryStore 内存存储，用于测试与无外部存储的本地运行
type MemoryStore struct {
	docs map[string]model.GoalMatrix
	mu   sync.RWMutex
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]model.GoalMatrix)}
}

// WeekGoals 读取整周目标文档
func (s *MemoryStore) WeekGoals(_ context.Context, weekday string) (model.GoalMatrix, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[weekday]
	if !ok {
		return model.GoalMatrix{}, nil
	}
	// 拷贝，避免调用方改写内部状态
	out := make(model.GoalMatrix, len(doc))
	for k, week := range doc {
		w := make(model.WeekGoals, len(week))
		for d, n := range week {
			w[d] = n
		}
		out[k] = w
	}
	return out, nil
}

// SaveWeekGoals 整体替换文档
func (s *MemoryStore) SaveWeekGoals(_ context.Context, weekday string, goals model.GoalMatrix) error {
	copied := make(model.GoalMatrix, len(goals))
	for k, week := range goals {
		w := make(model.WeekGoals, len(week))
		for d, n := range week {
			w[d] = n
		}
		copied[k] = w
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[weekday] = copied
	return nil
}

// Ping 恒为可用
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Close 无资源可释放
func (s *MemoryStore) Close() error {
	return nil
}
