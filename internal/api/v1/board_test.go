package v1

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tablero/internal/dates"
	"tablero/internal/goalstore"
	"tablero/internal/model"
)

func getBoard(t *testing.T, r http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/board", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetBoard_NoDataset(t *testing.T) {
	r, _ := newTestRouter(t, goalstore.NewMemoryStore())
	if w := getBoard(t, r); w.Code != http.StatusConflict {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
}

// 端到端：上传今天+明天的记录，今天的星期设有目标
func TestGetBoard_EndToEnd(t *testing.T) {
	goals := goalstore.NewMemoryStore()
	r, _ := newTestRouter(t, goals)

	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1)
	csv := fmt.Sprintf(`status,establishment_name,establishment_branch_address,meta_reservation_date,meta_reservation_persons
Asignado,A,Branch1,%s,4
Asignado,A,Branch1,%s,6
Asignado,A,Branch1,%s,10
`, today.Format("2006-01-02"), today.Format("2006-01-02"), tomorrow.Format("2006-01-02"))

	if w := uploadCSV(t, r, "reservas.csv", csv); w.Code != http.StatusOK {
		t.Fatalf("upload: %d", w.Code)
	}

	// 目标按"今天"的星期文档读取
	err := goals.SaveWeekGoals(context.Background(), dates.TodayWeekday(), model.GoalMatrix{
		"A - Branch1": {dates.TodayWeekday(): 5},
	})
	if err != nil {
		t.Fatalf("seed goals: %v", err)
	}

	w := getBoard(t, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp BoardResponse
	decodeJSON(t, w, &resp)
	if resp.Warning != "" {
		t.Fatalf("unexpected warning: %s", resp.Warning)
	}
	if len(resp.Board.Columns) != 7 || len(resp.Board.Rows) != 1 {
		t.Fatalf("board shape: %d cols %d rows", len(resp.Board.Columns), len(resp.Board.Rows))
	}

	cells := resp.Board.Rows[0].Cells
	// 今天: RSV=2, PAX=10 -> ABOVE (10 >= 5*1.05)
	if cells[0].Value != 2 || cells[1].Value != 10 {
		t.Fatalf("today cells = %+v %+v", cells[0], cells[1])
	}
	if cells[1].Band != model.BandAbove {
		t.Fatalf("today band = %s", cells[1].Band)
	}
	// 明天: PAX=10 但明天的星期无目标 -> UNSCORED
	if cells[3].Value != 10 || cells[3].Band != model.BandUnscored {
		t.Fatalf("tomorrow PAX = %+v", cells[3])
	}
	if resp.Colors[model.BandAbove] == "" {
		t.Fatalf("colors legend missing")
	}
}

// 目标存储不可用：看板照常渲染，全部 UNSCORED，带告警
func TestGetBoard_GoalStoreDown(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	if w := uploadCSV(t, r, "reservas.csv", validCSV); w.Code != http.StatusOK {
		t.Fatalf("upload: %d", w.Code)
	}

	w := getBoard(t, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp BoardResponse
	decodeJSON(t, w, &resp)
	if resp.Warning == "" {
		t.Fatalf("expected degraded warning")
	}
	for _, row := range resp.Board.Rows {
		for _, cell := range row.Cells {
			if cell.Metric == model.MetricPAX && cell.Band != model.BandUnscored {
				t.Fatalf("expected UNSCORED, got %s", cell.Band)
			}
		}
	}
}

func TestGetBoard_MissingDashboardColumns(t *testing.T) {
	r, _ := newTestRouter(t, goalstore.NewMemoryStore())

	w := uploadCSV(t, r, "malo.csv", "status,meta_reservation_date\nAsignado,2026-09-02\n")
	if w.Code != http.StatusOK {
		t.Fatalf("upload: %d", w.Code)
	}

	if w := getBoard(t, r); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
}

func TestExportBoard(t *testing.T) {
	r, _ := newTestRouter(t, goalstore.NewMemoryStore())

	if w := uploadCSV(t, r, "reservas.csv", validCSV); w.Code != http.StatusOK {
		t.Fatalf("upload: %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/board/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("content type = %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatalf("empty workbook body")
	}
}
