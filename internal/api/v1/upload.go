package v1

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tablero/internal/board"
	"tablero/internal/decoder"
	"tablero/internal/session"
)

// 预览返回的最大行数
const previewRows = 5

// UploadResponse 上传结果：预览 + 告警
type UploadResponse struct {
	ID       string              `json:"id"`
	Filename string              `json:"filename"`
	Rows     int                 `json:"rows"`
	Headers  []string            `json:"headers"`
	Preview  []map[string]string `json:"preview"`
	Warnings []string            `json:"warnings,omitempty"`
}

// Upload 上传预订导出文件 (csv / xlsx)
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se encontró el archivo en el formulario."})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer el archivo subido."})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer el archivo subido."})
		return
	}

	tbl, err := decoder.Decode(fileHeader.Filename, data)
	if err != nil {
		// 解码失败不改动任何会话状态，之前的数据仍可用
		if errors.Is(err, decoder.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de archivo no soportado. Por favor, sube un archivo .csv o .xlsx."})
			return
		}
		h.log.WithError(err).WithField("filename", fileHeader.Filename).Warn("upload decode failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ocurrió un error al procesar el archivo. Verifica el formato."})
		return
	}

	var warnings []string

	// 身份列缺失：仅告警，已知场所集合保持不变
	if keys, ok := board.DiscoverUniverse(tbl); ok {
		h.state.MergeUniverse(keys)
	} else {
		warnings = append(warnings, "Las columnas 'establishment_name' o 'establishment_branch_address' no se encontraron. La gestión de metas podría no funcionar correctamente.")
	}

	info := session.UploadInfo{
		ID:         uuid.NewString(),
		Filename:   fileHeader.Filename,
		Rows:       tbl.Len(),
		UploadedAt: time.Now(),
	}

	// 看板必需列缺失：上传仍返回预览，但看板渲染将硬失败
	records, err := board.ExtractRecords(tbl)
	if err != nil {
		warnings = append(warnings, err.Error())
		h.state.SetInvalidDataset(err.Error(), info)
	} else {
		h.state.SetDataset(records, info)
	}

	h.log.WithFields(logrus.Fields{
		"upload":   info.ID,
		"filename": info.Filename,
		"rows":     info.Rows,
		"warnings": len(warnings),
	}).Info("archivo cargado")

	c.JSON(http.StatusOK, UploadResponse{
		ID:       info.ID,
		Filename: info.Filename,
		Rows:     tbl.Len(),
		Headers:  tbl.Headers,
		Preview:  previewOf(tbl),
		Warnings: warnings,
	})
}

// previewOf 表格前几行，按列名映射
func previewOf(tbl *decoder.Table) []map[string]string {
	n := tbl.Len()
	if n > previewRows {
		n = previewRows
	}
	out := make([]map[string]string, n)
	for i := 0; i < n; i++ {
		row := make(map[string]string, len(tbl.Headers))
		for _, name := range tbl.Headers {
			if name == "" {
				continue
			}
			row[name] = tbl.Cell(i, name)
		}
		out[i] = row
	}
	return out
}
