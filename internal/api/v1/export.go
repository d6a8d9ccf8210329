package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tablero/internal/board"
	"tablero/internal/exporter"
)

// ExportBoard 导出当前看板为 xlsx
// GET /api/board/export
func (h *Handler) ExportBoard(c *gin.Context) {
	records, ok := h.state.Dataset()
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Sube un archivo para ver el tablero."})
		return
	}
	if reason := h.state.BoardError(); reason != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": reason})
		return
	}

	goals, _ := h.fetchTodayGoals(c)
	b := board.Build(records, h.state.Universe(), goals, time.Now())

	f, err := exporter.BuildWorkbook(b)
	if err != nil {
		h.log.WithError(err).Error("board export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el archivo de exportación."})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("tablero_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		h.log.WithError(err).Error("board export write failed")
	}
}
