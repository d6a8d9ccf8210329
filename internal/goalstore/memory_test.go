package goalstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"tablero/internal/model"
)

func TestMemoryStore_Isolation(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	src := model.GoalMatrix{"A - 1": {"lunes": 10}}
	assert.NoError(t, s.SaveWeekGoals(ctx, "lunes", src))

	// 写入后改动原矩阵不应影响存储
	src["A - 1"]["lunes"] = 99
	got, err := s.WeekGoals(ctx, "lunes")
	assert.NoError(t, err)
	assert.Equal(t, 10, got.Goal("A - 1", "lunes"))

	// 读出后改动也不应影响存储
	got["A - 1"]["lunes"] = 77
	again, err := s.WeekGoals(ctx, "lunes")
	assert.NoError(t, err)
	assert.Equal(t, 10, again.Goal("A - 1", "lunes"))
}

func TestMemoryStore_MissingDoc(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	got, err := s.WeekGoals(context.Background(), "domingo")
	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(Options{Driver: "dynamo"})
	assert.Error(t, err)
}
