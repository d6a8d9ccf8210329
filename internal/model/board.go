package model

// Band PAX 达成档位
type Band string

const (
	BandAbove    Band = "ABOVE"    // pax >= goal * 1.05
	BandNear     Band = "NEAR"     // goal * 0.95 <= pax < goal * 1.05
	BandBelow    Band = "BELOW"    // pax < goal * 0.95
	BandUnscored Band = "UNSCORED" // 未设目标（goal <= 0 或查不到）
)

// BandColors 档位 -> 展示背景色（与原看板配色一致），分类逻辑本身不感知颜色
var BandColors = map[Band]string{
	BandAbove:    "#d4edda",
	BandNear:     "#fff3cd",
	BandBelow:    "#f8d7da",
	BandUnscored: "",
}

// Metric 看板二级列指标
type Metric string

const (
	MetricRSV Metric = "RSV" // 预订数
	MetricPAX Metric = "PAX" // 总人数
)

// BoardCell 看板单元格：某场所某日期列的一个指标值
// Band 仅对 PAX 列有意义，RSV 列恒为空
type BoardCell struct {
	Metric Metric `json:"metric"`
	Value  int    `json:"value"`
	Band   Band   `json:"band,omitempty"`
}

// BoardColumn 看板日期列：一个日期标签下 RSV 与 PAX 两个子列
type BoardColumn struct {
	DateLabel string `json:"dateLabel"`
	Weekday   string `json:"weekday"`
}

// BoardRow 看板一行：一个场所在 7 个日期列上的单元格
// Cells 顺序与列顺序一致，每列先 RSV 后 PAX
type BoardRow struct {
	Establishment string      `json:"establishment"`
	Cells         []BoardCell `json:"cells"`
}

// Board 渲染就绪的看板
type Board struct {
	Columns []BoardColumn `json:"columns"`
	Rows    []BoardRow    `json:"rows"`
}
