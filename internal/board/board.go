package board

import (
	"time"

	"tablero/internal/dates"
	"tablero/internal/model"
)

// WindowDays 看板前瞻天数（今天起含今天）
const WindowDays = 7

// Build 从会话数据集构建渲染就绪的看板
// 窗口每次调用重新计算（跨天不缓存）；goals 传 nil 则全部 UNSCORED
func Build(records []model.ReservationRecord, universe []string, goals model.GoalMatrix, today time.Time) *model.Board {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	window := dates.Window(day, WindowDays)
	labels := dates.Labels(window)

	filtered := FilterWindow(records, model.StatusAssigned, window)
	grouped := Aggregate(filtered)
	m := BuildMatrices(grouped, universe, labels)
	bands := ClassifyMatrix(m, goals)

	b := &model.Board{
		Columns: make([]model.BoardColumn, len(labels)),
		Rows:    make([]model.BoardRow, len(universe)),
	}
	for j, label := range labels {
		b.Columns[j] = model.BoardColumn{
			DateLabel: label,
			Weekday:   dates.WeekdayFromLabel(label),
		}
	}
	for i, key := range universe {
		cells := make([]model.BoardCell, 0, len(labels)*2)
		for j := range labels {
			cells = append(cells,
				model.BoardCell{Metric: model.MetricRSV, Value: m.RSV[i][j]},
				model.BoardCell{Metric: model.MetricPAX, Value: m.PAX[i][j], Band: bands[i][j]},
			)
		}
		b.Rows[i] = model.BoardRow{Establishment: key, Cells: cells}
	}
	return b
}
