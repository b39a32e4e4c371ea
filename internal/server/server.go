package server

import (
	"github.com/gin-gonic/gin"

	"github.com/diyouva/H1-B-Analysis/internal/api"
	"github.com/diyouva/H1-B-Analysis/internal/config"
	"github.com/diyouva/H1-B-Analysis/internal/pipeline"
)

// Server 看板 API 服务器
//
// 只提供数据接口；图表渲染由外部展示层自理。
type Server struct {
	router  *gin.Engine
	handler *api.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, result *pipeline.Result) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:  gin.Default(),
		handler: api.NewHandler(cfg, result),
	}
	s.setupRoutes()
	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.handler.RegisterRoutes(apiGroup)
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router 暴露路由（测试用）
func (s *Server) Router() *gin.Engine {
	return s.router
}
