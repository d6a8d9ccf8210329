package v1

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tablero/internal/board"
	"tablero/internal/dates"
	"tablero/internal/model"
)

// GoalRow 目标编辑页一行：一个场所的整周目标
type GoalRow struct {
	Establishment string          `json:"establishment"`
	Goals         model.WeekGoals `json:"goals"`
}

// WeekGoalsResponse 某个星期名下的整周目标矩阵
type WeekGoalsResponse struct {
	Weekday string    `json:"weekday"`
	Days    []string  `json:"days"`
	Rows    []GoalRow `json:"rows"`
}

// GetWeekGoals 读取以 :weekday 为基准的整周目标
// 行 = 已存文档中的场所 ∪ 会话已知场所，7 个星期列全量补 0
// GET /api/goals/:weekday
func (h *Handler) GetWeekGoals(c *gin.Context) {
	weekday, ok := h.weekdayParam(c)
	if !ok {
		return
	}
	if h.goals == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No se pudo conectar al almacén de metas. La gestión de metas está deshabilitada."})
		return
	}

	stored, err := h.goals.WeekGoals(c.Request.Context(), weekday)
	if err != nil {
		h.log.WithError(err).Warn("goal store read failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No se pudo conectar al almacén de metas. La gestión de metas está deshabilitada."})
		return
	}

	establishments := board.MergeUniverse(h.state.Universe(), stored.Establishments())

	rows := make([]GoalRow, len(establishments))
	for i, key := range establishments {
		week := make(model.WeekGoals, len(dates.SpanishDays))
		for _, day := range dates.SpanishDays {
			week[day] = stored.Goal(key, day)
		}
		rows[i] = GoalRow{Establishment: key, Goals: week}
	}

	c.JSON(http.StatusOK, WeekGoalsResponse{
		Weekday: weekday,
		Days:    dates.SpanishDays[:],
		Rows:    rows,
	})
}

// saveGoalsRequest 保存请求；单元格值允许数字或数字字符串
type saveGoalsRequest struct {
	Rows []struct {
		Establishment string         `json:"establishment" binding:"required"`
		Goals         map[string]any `json:"goals"`
	} `json:"rows" binding:"required"`
}

// SaveWeekGoals 整体替换 :weekday 的目标文档
// 任何一格无法转为非负整数则整次保存拒绝，已存文档保持原样
// PUT /api/goals/:weekday
func (h *Handler) SaveWeekGoals(c *gin.Context) {
	weekday, ok := h.weekdayParam(c)
	if !ok {
		return
	}
	if h.goals == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No se pudo conectar al almacén de metas. La gestión de metas está deshabilitada."})
		return
	}

	var req saveGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de solicitud inválido."})
		return
	}

	goals := make(model.GoalMatrix, len(req.Rows))
	for _, row := range req.Rows {
		week := make(model.WeekGoals, len(dates.SpanishDays))
		for _, day := range dates.SpanishDays {
			raw, present := row.Goals[day]
			if !present {
				week[day] = 0
				continue
			}
			n, err := coerceGoal(raw)
			if err != nil {
				// 单格失败 -> 整次保存拒绝
				c.JSON(http.StatusBadRequest, gin.H{
					"error": fmt.Sprintf("Error al guardar las metas: valor inválido para %q (%s).", row.Establishment, day),
				})
				return
			}
			week[day] = n
		}
		goals[row.Establishment] = week
	}

	if err := h.goals.SaveWeekGoals(c.Request.Context(), weekday, goals); err != nil {
		h.log.WithError(err).WithField("weekday", weekday).Error("goal store write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar las metas."})
		return
	}

	h.log.WithFields(logrus.Fields{
		"weekday":        weekday,
		"establishments": len(goals),
	}).Info("metas guardadas")

	c.JSON(http.StatusOK, gin.H{"saved": true, "weekday": weekday, "establishments": len(goals)})
}

// weekdayParam 校验路径参数是合法的小写西班牙语星期名
func (h *Handler) weekdayParam(c *gin.Context) (string, bool) {
	weekday := strings.ToLower(strings.TrimSpace(c.Param("weekday")))
	if !dates.IsWeekday(weekday) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Día de la semana inválido: %q.", c.Param("weekday"))})
		return "", false
	}
	return weekday, true
}

// coerceGoal 单元格值转非负整数：接受整数、整数值浮点与数字字符串
func coerceGoal(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, fmt.Errorf("not a non-negative integer: %v", n)
		}
		return int(n), nil
	case string:
		s := strings.TrimSpace(n)
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 0 {
			return 0, fmt.Errorf("not a non-negative integer: %q", n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}
