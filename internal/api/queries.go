package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Records      int   `json:"records"`
	Files        int   `json:"files"`
	Years        []int `json:"years"`
	FortuneCount int   `json:"fortuneCount"`
	OPTCount     int   `json:"optCount"`
	CPTCount     int   `json:"cptCount"`
}

// GetStatus 系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	years := make([]int, 0, len(h.result.Report.Files))
	for _, f := range h.result.Report.Files {
		years = append(years, f.Year)
	}

	c.JSON(http.StatusOK, StatusResponse{
		Records:      len(h.result.Records),
		Files:        len(h.result.Report.Files),
		Years:        years,
		FortuneCount: h.result.FortuneCount,
		OPTCount:     h.result.OPTCount,
		CPTCount:     h.result.CPTCount,
	})
}

// GetYearlyTotals 年度合计序列
// GET /api/yearly
func (h *Handler) GetYearlyTotals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"yearly": h.calc.YearlyTotals()})
}

// GetTopEmployers 按批准量排名的雇主
// GET /api/employers/top?n=10
func (h *Handler) GetTopEmployers(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", "10"))
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "n 必须是正整数"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employers": h.calc.TopEmployers(n)})
}

// GetFlagOverlaps 各年度三类标记命中数
// GET /api/overlap
func (h *Handler) GetFlagOverlaps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"overlap": h.calc.FlagOverlaps()})
}
