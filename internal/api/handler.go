package api

import (
	"github.com/gin-gonic/gin"

	"github.com/diyouva/H1-B-Analysis/internal/calculator"
	"github.com/diyouva/H1-B-Analysis/internal/config"
	"github.com/diyouva/H1-B-Analysis/internal/pipeline"
)

// Handler 看板 API 处理器
//
// 持有一次数据准备的不可变快照；模拟请求在快照上即时计算，不落任何状态。
type Handler struct {
	cfg       *config.AppConfig
	result    *pipeline.Result
	calc      *calculator.Calculator
	downloads *exportDownloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(cfg *config.AppConfig, result *pipeline.Result) *Handler {
	return &Handler{
		cfg:       cfg,
		result:    result,
		calc:      calculator.NewCalculator(result.Records),
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 描述性统计
	router.GET("/yearly", h.GetYearlyTotals)
	router.GET("/employers/top", h.GetTopEmployers)
	router.GET("/overlap", h.GetFlagOverlaps)

	// 费用冲击模拟
	router.POST("/simulate", h.Simulate)

	// 工作簿导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
