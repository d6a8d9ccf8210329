package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tablero/internal/goalstore"
	"tablero/internal/session"
)

// Handler API 处理器
// goals 为 nil 表示目标存储初始化失败：看板降级渲染，目标页返回 503
type Handler struct {
	state       *session.State
	goals       goalstore.Store
	goalsDriver string
	log         *logrus.Logger
}

// NewHandler 创建 API 处理器
func NewHandler(state *session.State, goals goalstore.Store, goalsDriver string, log *logrus.Logger) *Handler {
	return &Handler{
		state:       state,
		goals:       goals,
		goalsDriver: goalsDriver,
		log:         log,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 预订文件上传
	router.POST("/upload", h.Upload)

	// 看板
	router.GET("/board", h.GetBoard)
	router.GET("/board/export", h.ExportBoard)

	// 周目标管理
	router.GET("/goals/:weekday", h.GetWeekGoals)
	router.PUT("/goals/:weekday", h.SaveWeekGoals)
}
