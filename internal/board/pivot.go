package board

// Matrices 稠密透视结果：行 = 已知场所（固定顺序），列 = 窗口日期标签
// 缺失组合补 0
type Matrices struct {
	Universe []string
	Labels   []string
	RSV      [][]int
	PAX      [][]int
}

// BuildMatrices 将分组聚合重塑为两张对齐矩阵
// universe 中未出现在本次数据里的场所保留全 0 行；
// 分组里不在 universe 中的场所直接丢弃（正常流程下不会出现）
func BuildMatrices(grouped map[GroupKey]Totals, universe, labels []string) *Matrices {
	rowIndex := make(map[string]int, len(universe))
	for i, k := range universe {
		rowIndex[k] = i
	}
	colIndex := make(map[string]int, len(labels))
	for j, l := range labels {
		colIndex[l] = j
	}

	m := &Matrices{
		Universe: universe,
		Labels:   labels,
		RSV:      make([][]int, len(universe)),
		PAX:      make([][]int, len(universe)),
	}
	for i := range universe {
		m.RSV[i] = make([]int, len(labels))
		m.PAX[i] = make([]int, len(labels))
	}

	for k, t := range grouped {
		i, okRow := rowIndex[k.Establishment]
		j, okCol := colIndex[k.DateLabel]
		if !okRow || !okCol {
			continue
		}
		m.RSV[i][j] = t.RSV
		m.PAX[i][j] = t.PAX
	}
	return m
}
