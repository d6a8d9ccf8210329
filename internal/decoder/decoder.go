package decoder

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat 文件格式不受支持（仅接受 .csv / .xlsx）
var ErrUnsupportedFormat = errors.New("formato de archivo no soportado, sube un archivo .csv o .xlsx")

// Table 解码后的表格：表头 + 行，按列名取值
type Table struct {
	Headers []string
	index   map[string]int
	Rows    [][]string
}

// newTable 构建表格并建立列索引，表头两端空白去除
func newTable(headers []string, rows [][]string) *Table {
	trimmed := make([]string, len(headers))
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		trimmed[i] = h
		if _, ok := index[h]; !ok && h != "" {
			index[h] = i
		}
	}
	return &Table{Headers: trimmed, index: index, Rows: rows}
}

// HasColumn 判断列是否存在
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// MissingColumns 返回 required 中缺失的列名，顺序保持
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Cell 取第 row 行 name 列的值；列不存在或行过短返回空串
func (t *Table) Cell(row int, name string) string {
	idx, ok := t.index[name]
	if !ok || row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if idx >= len(r) {
		return ""
	}
	return r[idx]
}

// Len 数据行数（不含表头）
func (t *Table) Len() int {
	return len(t.Rows)
}

// Decode 按文件名后缀识别格式并解码
func Decode(filename string, data []byte) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return DecodeCSV(bytes.NewReader(data))
	case ".xlsx":
		return DecodeXLSX(bytes.NewReader(data))
	default:
		return nil, ErrUnsupportedFormat
	}
}

// DecodeCSV 解码分隔文本
func DecodeCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // 允许行字段数不齐
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("csv has no header row")
	}
	return newTable(all[0], all[1:]), nil
}

// DecodeXLSX 解码 Excel 工作簿，取第一个 sheet
func DecodeXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet has no header row")
	}
	return newTable(rows[0], rows[1:]), nil
}
