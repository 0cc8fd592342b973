// Package httpapi exposes the analysis engine over HTTP for collaborators
// that prefer REST to MCP.
package httpapi

import (
	"log"
	"net/http"

	"github.com/codemend/codemend/internal/analyzer"
	"github.com/codemend/codemend/internal/findings"
	"github.com/codemend/codemend/internal/rectify"
	"github.com/gin-gonic/gin"
)

// Server serves the detection and rectification endpoints.
type Server struct {
	eng  *analyzer.Engine
	addr string
}

// New creates an HTTP server wired to the given engine.
func New(eng *analyzer.Engine, addr string) *Server {
	return &Server{eng: eng, addr: addr}
}

// Router builds the gin router. Exposed for tests.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "codemend"})
	})

	v1 := router.Group("/api/v1")
	v1.POST("/analyze", s.handleAnalyze)
	v1.POST("/rectify", s.handleRectify)
	v1.POST("/rectify_all", s.handleRectifyAll)

	return router
}

// Run starts serving on the configured address. It blocks.
func (s *Server) Run() error {
	log.Printf("[httpapi] listening on %s", s.addr)
	return s.Router().Run(s.addr)
}

type analyzeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	lang, ok := findings.ParseLanguage(req.Language)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown language", "language": req.Language})
		return
	}

	report := s.eng.Analyze(req.Code, lang)
	c.JSON(http.StatusOK, report)
}

type rectifyRequest struct {
	Code    string           `json:"code"`
	Finding findings.Finding `json:"finding"`
}

func (s *Server) handleRectify(c *gin.Context) {
	var req rectifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	fixed, replaced, applied := rectify.One(req.Code, req.Finding)
	c.JSON(http.StatusOK, gin.H{
		"code":     fixed,
		"replaced": replaced,
		"applied":  applied,
	})
}

type rectifyAllRequest struct {
	Code     string             `json:"code"`
	Findings []findings.Finding `json:"findings"`
}

func (s *Server) handleRectifyAll(c *gin.Context) {
	var req rectifyAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	fixed := rectify.All(req.Code, req.Findings)
	c.JSON(http.StatusOK, gin.H{"code": fixed})
}
