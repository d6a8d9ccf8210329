package board

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tablero/internal/decoder"
	"tablero/internal/model"
)

// 预订日期接受的写法；源文件混有日期与日期时间
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02/01/2006 15:04",
	"02-01-2006",
}

// ParseReservationDate 解析预订日期，时间部分归零
// 解析失败返回 nil（该行不参与聚合，不算错误：历史/取消数据常为空）
func ParseReservationDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}
	return nil
}

// parsePartySize 人数列整数化；兼容 "4.0" 这类导出格式，负数与乱码记 0
func parsePartySize(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f > 0 {
		return int(f)
	}
	return 0
}

// ExtractRecords 将解码后的表格转为强类型预订记录
// 看板必需列缺失时整体失败（硬错误），多余列忽略
func ExtractRecords(tbl *decoder.Table) ([]model.ReservationRecord, error) {
	if missing := tbl.MissingColumns(model.DashboardColumns); len(missing) > 0 {
		return nil, fmt.Errorf("el archivo debe contener las siguientes columnas: %s", strings.Join(missing, ", "))
	}

	records := make([]model.ReservationRecord, 0, tbl.Len())
	for i := 0; i < tbl.Len(); i++ {
		records = append(records, model.ReservationRecord{
			Status:    strings.TrimSpace(tbl.Cell(i, model.ColStatus)),
			Name:      strings.TrimSpace(tbl.Cell(i, model.ColName)),
			Branch:    strings.TrimSpace(tbl.Cell(i, model.ColBranch)),
			Date:      ParseReservationDate(tbl.Cell(i, model.ColDate)),
			PartySize: parsePartySize(tbl.Cell(i, model.ColPersons)),
		})
	}
	return records, nil
}
