package model

// WeekGoals 单个场所一周的 PAX 目标，键为小写西班牙语星期名
type WeekGoals map[string]int

// GoalMatrix 场所键 -> 一周目标
// 外部存储中每个星期名对应一份完整的 GoalMatrix 文档（整周整体替换，不做合并）
type GoalMatrix map[string]WeekGoals

// Goal 查目标值：场所或星期缺失时返回 0（即未设目标）
func (m GoalMatrix) Goal(key, weekday string) int {
	if m == nil {
		return 0
	}
	return m[key][weekday]
}

// Establishments 返回矩阵中出现过的全部场所键（无序）
func (m GoalMatrix) Establishments() []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
