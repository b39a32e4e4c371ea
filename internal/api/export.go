package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diyouva/H1-B-Analysis/internal/exporter"
	"github.com/diyouva/H1-B-Analysis/internal/simulate"
)

// downloadTTL 导出文件下载链接的有效期
const downloadTTL = 10 * time.Minute

// ExportRequest 导出请求，模拟参数与 /simulate 相同
type ExportRequest struct {
	SimulateRequest
}

// Export 生成分析工作簿
// POST /api/export
//
// 工作簿写进临时目录，返回一次性下载令牌；文件过期后由令牌仓库清理。
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}

	summary := simulate.Run(h.result.Records, h.simulateOptions(req.SimulateRequest))
	workbook, err := exporter.BuildWorkbook(h.result.Records, h.calc.YearlyTotals(), summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("构建工作簿失败: %v", err)})
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("h1b_analysis_%s.xlsx", time.Now().Format("20060102_150405"))
	path := filepath.Join(os.TempDir(), filename)
	if err := workbook.SaveAs(path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("保存工作簿失败: %v", err)})
		return
	}

	token := h.downloads.put(path, downloadTTL)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": filename,
	})
}

// DownloadExport 下载已生成的工作簿
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接不存在或已过期"})
		return
	}

	c.FileAttachment(item.filePath, filepath.Base(item.filePath))
}
