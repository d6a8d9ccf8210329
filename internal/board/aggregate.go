package board

import (
	"time"

	"tablero/internal/dates"
	"tablero/internal/model"
)

// GroupKey 聚合分组键：(场所, 日期列标签)
type GroupKey struct {
	Establishment string
	DateLabel     string
}

// Totals 一个分组的累计值
type Totals struct {
	RSV int // 预订条数
	PAX int // 人数合计
}

// FilterWindow 过滤出指定状态且预订日期落在窗口内的记录
// 日期按天相等比较；无日期的记录一律排除
func FilterWindow(records []model.ReservationRecord, status string, window []time.Time) []model.ReservationRecord {
	inWindow := make(map[time.Time]struct{}, len(window))
	for _, d := range window {
		inWindow[d] = struct{}{}
	}

	var kept []model.ReservationRecord
	for _, r := range records {
		if r.Status != status || r.Date == nil {
			continue
		}
		if _, ok := inWindow[*r.Date]; ok {
			kept = append(kept, r)
		}
	}
	return kept
}

// Aggregate 按 (场所, 日期标签) 分组累计 RSV 与 PAX
// 同组多条记录累加，不覆盖
func Aggregate(records []model.ReservationRecord) map[GroupKey]Totals {
	grouped := make(map[GroupKey]Totals)
	for _, r := range records {
		if r.Date == nil {
			continue
		}
		k := GroupKey{
			Establishment: r.Key(),
			DateLabel:     dates.FormatDate(*r.Date),
		}
		t := grouped[k]
		t.RSV++
		t.PAX += r.PartySize
		grouped[k] = t
	}
	return grouped
}
