package dates

import (
	"fmt"
	"strings"
	"time"
)

// SpanishDays 西班牙语星期名（周一为 0，与 time.Weekday 的周日起点不同）
var SpanishDays = [7]string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}

// SpanishMonths 西班牙语月份名，下标 = 月份 - 1
var SpanishMonths = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// WeekdayIndex 返回周一起点的星期下标 (0-6)
func WeekdayIndex(d time.Time) int {
	// time.Weekday: Sunday=0，转换为 Monday=0
	return (int(d.Weekday()) + 6) % 7
}

// WeekdayName 返回日期对应的西班牙语星期名
func WeekdayName(d time.Time) string {
	return SpanishDays[WeekdayIndex(d)]
}

// FormatDate 格式化日期为看板列标签: "{星期}, {DD} de {月份}"
// 不依赖系统 locale，固定查表
func FormatDate(d time.Time) string {
	return fmt.Sprintf("%s, %02d de %s", WeekdayName(d), d.Day(), SpanishMonths[d.Month()-1])
}

// WeekdayFromLabel 从列标签中还原星期名：取第一个逗号之前的部分
// 与 FormatDate 严格互逆
func WeekdayFromLabel(label string) string {
	head, _, _ := strings.Cut(label, ",")
	return strings.ToLower(strings.TrimSpace(head))
}

// TodayWeekday 当前日期的西班牙语星期名
func TodayWeekday() string {
	return WeekdayName(time.Now())
}

// IsWeekday 判断给定名称是否为合法的星期名（小写）
func IsWeekday(name string) bool {
	for _, d := range SpanishDays {
		if d == name {
			return true
		}
	}
	return false
}

// Window 从 start 开始的连续 n 天（含 start），时间部分归零
func Window(start time.Time, n int) []time.Time {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	out := make([]time.Time, n)
	for i := 0; i < n; i++ {
		out[i] = day.AddDate(0, 0, i)
	}
	return out
}

// Labels 对窗口内每个日期生成列标签，顺序与输入一致
func Labels(window []time.Time) []string {
	out := make([]string, len(window))
	for i, d := range window {
		out[i] = FormatDate(d)
	}
	return out
}
