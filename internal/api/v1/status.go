package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tablero/internal/dates"
	"tablero/internal/session"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	DatasetLoaded bool                `json:"datasetLoaded"` // 会话内是否已有数据集
	UniverseSize  int                 `json:"universeSize"`  // 已知场所数
	TodayWeekday  string              `json:"todayWeekday"`  // 今天的西班牙语星期名
	LastUpload    *session.UploadInfo `json:"lastUpload,omitempty"`
	GoalsDriver   string              `json:"goalsDriver"`
	GoalsOnline   bool                `json:"goalsOnline"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	_, loaded := h.state.Dataset()

	online := false
	if h.goals != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		online = h.goals.Ping(ctx) == nil
	}

	c.JSON(http.StatusOK, StatusResponse{
		DatasetLoaded: loaded,
		UniverseSize:  len(h.state.Universe()),
		TodayWeekday:  dates.TodayWeekday(),
		LastUpload:    h.state.Upload(),
		GoalsDriver:   h.goalsDriver,
		GoalsOnline:   online,
	})
}
