// Package exporter 看板导出为 Excel 工作簿
package exporter

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"tablero/internal/model"
)

const sheetName = "Tablero"

// BuildWorkbook 将看板渲染为工作簿：两级表头（日期标签 / RSV+PAX），
// PAX 单元格按达成档位着色，配色与页面一致
func BuildWorkbook(b *model.Board) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	styles, err := buildBandStyles(f)
	if err != nil {
		return nil, err
	}

	// 第一列：场所
	if err := f.SetCellValue(sheetName, "A1", "Establecimiento"); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.MergeCell(sheetName, "A1", "A2"); err != nil {
		return nil, fmt.Errorf("failed to merge header: %w", err)
	}

	// 两级表头：每个日期标签横跨 RSV/PAX 两列
	for j, col := range b.Columns {
		left := 2 + j*2
		topLeft, _ := excelize.CoordinatesToCellName(left, 1)
		topRight, _ := excelize.CoordinatesToCellName(left+1, 1)
		if err := f.SetCellValue(sheetName, topLeft, col.DateLabel); err != nil {
			return nil, fmt.Errorf("failed to write date header: %w", err)
		}
		if err := f.MergeCell(sheetName, topLeft, topRight); err != nil {
			return nil, fmt.Errorf("failed to merge date header: %w", err)
		}

		rsvCell, _ := excelize.CoordinatesToCellName(left, 2)
		paxCell, _ := excelize.CoordinatesToCellName(left+1, 2)
		if err := f.SetCellValue(sheetName, rsvCell, string(model.MetricRSV)); err != nil {
			return nil, fmt.Errorf("failed to write metric header: %w", err)
		}
		if err := f.SetCellValue(sheetName, paxCell, string(model.MetricPAX)); err != nil {
			return nil, fmt.Errorf("failed to write metric header: %w", err)
		}
	}

	// 数据区
	for i, row := range b.Rows {
		rowNum := 3 + i
		nameCell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetCellValue(sheetName, nameCell, row.Establishment); err != nil {
			return nil, fmt.Errorf("failed to write establishment: %w", err)
		}

		for c, cell := range row.Cells {
			ref, _ := excelize.CoordinatesToCellName(2+c, rowNum)
			if err := f.SetCellValue(sheetName, ref, cell.Value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
			if cell.Metric == model.MetricPAX {
				if styleID, ok := styles[cell.Band]; ok {
					if err := f.SetCellStyle(sheetName, ref, ref, styleID); err != nil {
						return nil, fmt.Errorf("failed to style cell: %w", err)
					}
				}
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 36); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	f.SetActiveSheet(0)
	return f, nil
}

// buildBandStyles 为有颜色的档位各创建一个填充样式
func buildBandStyles(f *excelize.File) (map[model.Band]int, error) {
	styles := make(map[model.Band]int)
	for band, hex := range model.BandColors {
		if hex == "" {
			continue
		}
		styleID, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{strings.TrimPrefix(hex, "#")}},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create style: %w", err)
		}
		styles[band] = styleID
	}
	return styles, nil
}
