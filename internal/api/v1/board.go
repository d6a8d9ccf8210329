package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tablero/internal/board"
	"tablero/internal/dates"
	"tablero/internal/model"
)

// BoardResponse 看板响应：数据 + 档位配色 + 可能的降级告警
type BoardResponse struct {
	Board   *model.Board          `json:"board"`
	Colors  map[model.Band]string `json:"colors"`
	Warning string                `json:"warning,omitempty"`
}

// GetBoard 渲染未来 7 天的预订看板
// 每次请求从会话数据集完整重算，上传或目标保存后的下一次渲染即可见
// GET /api/board
func (h *Handler) GetBoard(c *gin.Context) {
	records, ok := h.state.Dataset()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Sube un archivo para ver el tablero."})
		return
	}
	if reason := h.state.BoardError(); reason != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": reason})
		return
	}

	goals, warning := h.fetchTodayGoals(c)
	b := board.Build(records, h.state.Universe(), goals, time.Now())

	c.JSON(http.StatusOK, BoardResponse{
		Board:   b,
		Colors:  model.BandColors,
		Warning: warning,
	})
}

// fetchTodayGoals 取"今天"星期名对应的整周目标文档
// 存储不可用时返回空矩阵并给出告警：看板照常渲染，全部 UNSCORED
func (h *Handler) fetchTodayGoals(c *gin.Context) (model.GoalMatrix, string) {
	const unavailable = "No se pudo conectar al almacén de metas; el tablero se muestra sin colores."

	if h.goals == nil {
		return model.GoalMatrix{}, unavailable
	}

	goals, err := h.goals.WeekGoals(c.Request.Context(), dates.TodayWeekday())
	if err != nil {
		h.log.WithError(err).Warn("goal store read failed, rendering unscored board")
		return model.GoalMatrix{}, unavailable
	}
	return goals, ""
}
