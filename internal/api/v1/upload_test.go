package v1

import (
	"net/http"
	"testing"

	"tablero/internal/goalstore"
)

const validCSV = `status,establishment_name,establishment_branch_address,meta_reservation_date,meta_reservation_persons
Asignado,A,Branch1,2026-09-02,4
Asignado,B,Norte,2026-09-03,6
`

func TestUpload_ValidCSV(t *testing.T) {
	r, state := newTestRouter(t, goalstore.NewMemoryStore())

	w := uploadCSV(t, r, "reservas.csv", validCSV)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp UploadResponse
	decodeJSON(t, w, &resp)
	if resp.Rows != 2 || resp.ID == "" {
		t.Fatalf("response = %+v", resp)
	}
	if len(resp.Preview) != 2 {
		t.Fatalf("preview rows = %d", len(resp.Preview))
	}
	if len(resp.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", resp.Warnings)
	}

	// 场所集合已并入
	universe := state.Universe()
	if len(universe) != 2 || universe[0] != "A - Branch1" {
		t.Fatalf("universe = %v", universe)
	}
	if _, ok := state.Dataset(); !ok {
		t.Fatalf("dataset should be stored")
	}
}

func TestUpload_UnsupportedFormat_KeepsPriorState(t *testing.T) {
	r, state := newTestRouter(t, goalstore.NewMemoryStore())

	// 先上传一份有效数据
	if w := uploadCSV(t, r, "reservas.csv", validCSV); w.Code != http.StatusOK {
		t.Fatalf("first upload: %d", w.Code)
	}

	// 再上传不支持的格式：拒绝且不破坏之前的会话数据
	w := uploadCSV(t, r, "reservas.pdf", "basura")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if _, ok := state.Dataset(); !ok {
		t.Fatalf("prior dataset should remain usable")
	}
	if len(state.Universe()) != 2 {
		t.Fatalf("universe should be unchanged: %v", state.Universe())
	}
}

func TestUpload_MissingIdentityColumns_WarnsAndKeepsUniverse(t *testing.T) {
	r, state := newTestRouter(t, goalstore.NewMemoryStore())

	if w := uploadCSV(t, r, "reservas.csv", validCSV); w.Code != http.StatusOK {
		t.Fatalf("first upload: %d", w.Code)
	}

	// 身份列缺失：上传仍成功（预览可用），集合不变，带告警
	w := uploadCSV(t, r, "otros.csv", "status,meta_reservation_date,meta_reservation_persons\nAsignado,2026-09-02,4\n")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	var resp UploadResponse
	decodeJSON(t, w, &resp)
	if len(resp.Warnings) == 0 {
		t.Fatalf("expected warnings, got none")
	}
	if len(state.Universe()) != 2 {
		t.Fatalf("universe should be unchanged: %v", state.Universe())
	}
	// 该数据集缺看板列 -> 看板渲染应硬失败
	if state.BoardError() == "" {
		t.Fatalf("expected board error for dataset missing dashboard columns")
	}
}
