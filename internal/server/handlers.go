package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/polycalc/polycalc/internal/api/middleware"
	"github.com/polycalc/polycalc/internal/monitoring"
	"github.com/polycalc/polycalc/internal/types"
)

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "polycalc",
		"endpoints": []string{
			"/health",
			"/metrics",
			"/services",
			"/services/stats",
			"/services/discover",
			"/tools/execute",
		},
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listServices(c *gin.Context) {
	var category *types.Category
	if raw := c.Query("category"); raw != "" {
		cat := types.Category(raw)
		category = &cat
	}

	services := s.registry.List(category)
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (s *Server) serviceStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.registry.Stats())
}

type discoverRequest struct {
	Intent string `json:"intent" binding:"required"`
	Limit  int    `json:"limit"`
}

func (s *Server) discoverServices(c *gin.Context) {
	var req discoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 5
	}

	services := s.registry.Discover(req.Intent, req.Limit)
	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (s *Server) executeTool(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appCtx := &types.Context{}
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		appCtx.RequestID = &id
	}

	timer := monitoring.NewTimer(s.metrics, req.ToolID)
	result, err := s.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		s.logger.Error("Tool execution failed",
			zap.String("tool", req.ToolID),
			zap.Error(err),
		)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("ok")
	} else {
		timer.Stop("failed")
	}
	c.JSON(http.StatusOK, result)
}
