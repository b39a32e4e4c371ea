package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diyouva/H1-B-Analysis/internal/simulate"
)

// SimulateRequest 模拟请求
//
// 省略弹性参数时使用配置里的默认值；只给 elasticity 一个值时两组共用。
type SimulateRequest struct {
	Alpha             *float64 `json:"alpha"`
	Elasticity        *float64 `json:"elasticity"`
	ElasticityLow     *float64 `json:"elasticityLow"`
	ElasticityHigh    *float64 `json:"elasticityHigh"`
	SplitByFortune500 bool     `json:"splitByFortune500"`
}

// simulateOptions 合并请求参数与配置默认值
func (h *Handler) simulateOptions(req SimulateRequest) simulate.Options {
	opts := simulate.Options{
		Alpha:             h.cfg.Simulation.Alpha,
		ElasticityLow:     h.cfg.Simulation.ElasticityLow,
		ElasticityHigh:    h.cfg.Simulation.ElasticityHigh,
		SplitByFortune500: req.SplitByFortune500,
	}
	if req.Alpha != nil {
		opts.Alpha = *req.Alpha
	}
	if req.Elasticity != nil {
		opts.ElasticityLow = *req.Elasticity
		opts.ElasticityHigh = *req.Elasticity
	}
	if req.ElasticityLow != nil {
		opts.ElasticityLow = *req.ElasticityLow
	}
	if req.ElasticityHigh != nil {
		opts.ElasticityHigh = *req.ElasticityHigh
	}
	return opts
}

// Simulate 费用冲击模拟
// POST /api/simulate
func (h *Handler) Simulate(c *gin.Context) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}

	opts := h.simulateOptions(req)
	rows := simulate.Run(h.result.Records, opts)
	c.JSON(http.StatusOK, gin.H{
		"options": opts,
		"summary": rows,
	})
}
