// Package session 会话级可变状态
//
// 原实现依赖隐式全局会话变量；此处改为显式状态对象，
// 由上传处理器写入、看板与目标页读取，服务停止时随进程销毁。
package session

import (
	"sync"
	"time"

	"tablero/internal/board"
	"tablero/internal/model"
)

// UploadInfo 最近一次成功上传的元信息
type UploadInfo struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Rows       int       `json:"rows"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// State 会话状态：已知场所集合 + 当前数据集
// 上传数据只存在于会话内，不做任何持久化
type State struct {
	mu       sync.RWMutex
	universe []string
	records  []model.ReservationRecord
	upload   *UploadInfo
	boardErr string
}

// New 创建空会话状态
func New() *State {
	return &State{}
}

// MergeUniverse 并入本次上传发现的场所，只增不减
func (s *State) MergeUniverse(discovered []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.universe = board.MergeUniverse(s.universe, discovered)
}

// Universe 已知场所快照（排序后的副本）
func (s *State) Universe() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.universe))
	copy(out, s.universe)
	return out
}

// SetDataset 替换当前数据集
func (s *State) SetDataset(records []model.ReservationRecord, info UploadInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.upload = &info
	s.boardErr = ""
}

// SetInvalidDataset 记录一次缺少看板必需列的上传：
// 预览可用，但看板渲染硬失败，直到下一次有效上传
func (s *State) SetInvalidDataset(reason string, info UploadInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.upload = &info
	s.boardErr = reason
}

// BoardError 当前数据集无法渲染看板的原因；空串表示可渲染
func (s *State) BoardError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.boardErr
}

// Dataset 当前数据集；ok=false 表示本会话尚未上传
func (s *State) Dataset() (records []model.ReservationRecord, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.upload == nil {
		return nil, false
	}
	return s.records, true
}

// Upload 最近一次上传信息；无上传时返回 nil
func (s *State) Upload() *UploadInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.upload == nil {
		return nil
	}
	info := *s.upload
	return &info
}
