package dates

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	// 2026-01-05 是周一
	d := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	got := FormatDate(d)
	want := "lunes, 05 de enero"
	if got != want {
		t.Fatalf("FormatDate = %q, want %q", got, want)
	}
}

func TestWeekdayFromLabel_RoundTrip(t *testing.T) {
	t.Parallel()

	// 全年每一天：label -> weekday 必须还原 FormatDate 所用的星期名
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i++ {
		d := start.AddDate(0, 0, i)
		label := FormatDate(d)
		got := WeekdayFromLabel(label)
		want := SpanishDays[WeekdayIndex(d)]
		if got != want {
			t.Fatalf("day %s: WeekdayFromLabel(%q) = %q, want %q", d.Format("2006-01-02"), label, got, want)
		}
	}
}

func TestWeekdayIndex_MondayFirst(t *testing.T) {
	t.Parallel()

	cases := []struct {
		date time.Time
		idx  int
		name string
	}{
		{time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), 0, "lunes"},
		{time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), 5, "sabado"},
		{time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), 6, "domingo"},
	}
	for _, c := range cases {
		if got := WeekdayIndex(c.date); got != c.idx {
			t.Fatalf("WeekdayIndex(%s) = %d, want %d", c.date.Format("2006-01-02"), got, c.idx)
		}
		if got := WeekdayName(c.date); got != c.name {
			t.Fatalf("WeekdayName(%s) = %q, want %q", c.date.Format("2006-01-02"), got, c.name)
		}
	}
}

func TestWindow(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 2, 26, 15, 30, 0, 0, time.UTC)
	w := Window(start, 7)
	if len(w) != 7 {
		t.Fatalf("window length = %d", len(w))
	}
	if w[0].Hour() != 0 || w[0].Day() != 26 {
		t.Fatalf("window start not truncated: %v", w[0])
	}
	// 跨月
	if w[3].Month() != time.March || w[3].Day() != 1 {
		t.Fatalf("expected 2026-03-01 at index 3, got %v", w[3])
	}
	labels := Labels(w)
	if len(labels) != 7 {
		t.Fatalf("labels length = %d", len(labels))
	}
	if labels[3] != "domingo, 01 de marzo" {
		t.Fatalf("labels[3] = %q", labels[3])
	}
}

func TestIsWeekday(t *testing.T) {
	t.Parallel()

	for _, d := range SpanishDays {
		if !IsWeekday(d) {
			t.Fatalf("IsWeekday(%q) = false", d)
		}
	}
	if IsWeekday("Lunes") || IsWeekday("monday") || IsWeekday("") {
		t.Fatalf("IsWeekday accepted invalid name")
	}
}
