package goalstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"tablero/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS metas (
	weekday TEXT PRIMARY KEY,
	doc     TEXT NOT NULL
);`

// SQLiteStore 本地 SQLite 存储，每个星期名一行，文档按 JSON 存放
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore 打开（必要时创建）数据库文件并初始化表结构
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite 建议单连接
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// WeekGoals 读取整周目标文档
func (s *SQLiteStore) WeekGoals(ctx context.Context, weekday string) (model.GoalMatrix, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, "SELECT doc FROM metas WHERE weekday = ?", weekday).Scan(&doc)
	if err == sql.ErrNoRows {
		return model.GoalMatrix{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}

	var goals model.GoalMatrix
	if err := json.Unmarshal([]byte(doc), &goals); err != nil {
		return nil, fmt.Errorf("failed to decode goals document: %w", err)
	}
	return goals, nil
}

// SaveWeekGoals 整体替换文档
func (s *SQLiteStore) SaveWeekGoals(ctx context.Context, weekday string, goals model.GoalMatrix) error {
	doc, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("failed to encode goals document: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO metas (weekday, doc) VALUES (?, ?) ON CONFLICT(weekday) DO UPDATE SET doc = excluded.doc",
		weekday, string(doc))
	if err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	return nil
}

// Ping 连通性检查
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close 关闭数据库连接
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
