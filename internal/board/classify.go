package board

import (
	"tablero/internal/dates"
	"tablero/internal/model"
)

// Classify 给单个 PAX 值定档
// 阈值为目标的 ±5%，边界值含入；整数乘法比较避免浮点误差吃掉边界
func Classify(pax, goal int) model.Band {
	if goal <= 0 {
		return model.BandUnscored
	}
	switch {
	case pax*100 >= goal*105:
		return model.BandAbove
	case pax*100 >= goal*95:
		return model.BandNear
	default:
		return model.BandBelow
	}
}

// ClassifyMatrix 对 PAX 矩阵逐格定档
// 目标按 (场所, 列标签星期) 查找，查不到视为 0 -> UNSCORED，绝不报错
func ClassifyMatrix(m *Matrices, goals model.GoalMatrix) [][]model.Band {
	weekdays := make([]string, len(m.Labels))
	for j, label := range m.Labels {
		weekdays[j] = dates.WeekdayFromLabel(label)
	}

	bands := make([][]model.Band, len(m.Universe))
	for i, key := range m.Universe {
		bands[i] = make([]model.Band, len(m.Labels))
		for j := range m.Labels {
			bands[i][j] = Classify(m.PAX[i][j], goals.Goal(key, weekdays[j]))
		}
	}
	return bands
}
