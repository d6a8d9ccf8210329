// Package goalstore 周目标文档的外部存储边界
//
// 每个小写星期名对应一份完整的周目标文档（"以星期 D 为基准编辑的整周目标"），
// 读取按单键查询，写入整体替换，不与旧文档合并。
package goalstore

import (
	"context"
	"fmt"

	"tablero/internal/model"
)

// Store 周目标存储
type Store interface {
	// WeekGoals 读取星期名对应的整周目标文档；文档不存在返回空矩阵而非错误
	WeekGoals(ctx context.Context, weekday string) (model.GoalMatrix, error)
	// SaveWeekGoals 整体替换星期名对应的文档（后写覆盖，无并发保护）
	SaveWeekGoals(ctx context.Context, weekday string, goals model.GoalMatrix) error
	// Ping 连通性检查
	Ping(ctx context.Context) error
	// Close 释放连接
	Close() error
}

// Options 后端选择与连接参数
type Options struct {
	Driver string // sqlite | mongo | redis | memory

	SQLitePath string

	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open 按配置打开目标存储
func Open(opts Options) (Store, error) {
	switch opts.Driver {
	case "", "sqlite":
		return NewSQLiteStore(opts.SQLitePath)
	case "mongo":
		return NewMongoStore(opts.MongoURI, opts.MongoDatabase)
	case "redis":
		return NewRedisStore(opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown goal store driver: %q", opts.Driver)
	}
}
