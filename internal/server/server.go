package server

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	v1 "tablero/internal/api/v1"
	"tablero/internal/config"
	"tablero/internal/goalstore"
	"tablero/internal/session"
)

// Server HTTP 服务器
type Server struct {
	router *gin.Engine
	state  *session.State
	goals  goalstore.Store
	v1     *v1.Handler
	log    *logrus.Logger
}

// NewServer 创建服务器
// 目标存储打开失败不阻止启动：看板降级渲染，目标页返回 503
func NewServer(cfg *config.AppConfig, log *logrus.Logger) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}

	goals, err := goalstore.Open(goalstore.Options{
		Driver:        cfg.Goals.Driver,
		SQLitePath:    filepath.Join(dataDir, "tablero.db"),
		MongoURI:      cfg.Goals.MongoURI,
		MongoDatabase: cfg.Goals.MongoDatabase,
		RedisAddr:     cfg.Goals.RedisAddr,
		RedisPassword: cfg.Goals.RedisPassword,
		RedisDB:       cfg.Goals.RedisDB,
	})
	if err != nil {
		log.WithError(err).WithField("driver", cfg.Goals.Driver).
			Error("no se pudo abrir el almacén de metas, se continúa en modo degradado")
		goals = nil
	}

	state := session.New()
	handler := v1.NewHandler(state, goals, cfg.Goals.Driver, log)

	s := &Server{
		router: gin.Default(),
		state:  state,
		goals:  goals,
		v1:     handler,
		log:    log,
	}

	s.setupRoutes()

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Sistema de Gestión y Análisis de Reservas",
			"api":     "/api",
		})
	})
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 释放目标存储连接
func (s *Server) Close() error {
	if s.goals != nil {
		return s.goals.Close()
	}
	return nil
}

// Router 获取路由（用于测试）
func (s *Server) Router() *gin.Engine {
	return s.router
}
