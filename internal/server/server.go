// Package server exposes the assistant over a small HTTP chat API. The
// endpoint relays text both ways: the assistant already returns final
// conversational content, so there is nothing to transform here.
package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gigworks/gig-assistant/internal/ai"
)

type ChatRequest struct {
	Text string `json:"text"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type Server struct {
	assistant ai.Assistant
	logger    *zap.Logger
	engine    *gin.Engine
}

func New(assistant ai.Assistant, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		assistant: assistant,
		logger:    logger,
		engine:    gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.engine.GET("/", s.health)
	s.engine.POST("/chat", s.chat)
	return s
}

// Handler returns the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(addr string) error {
	s.logger.Info("chat api listening", zap.String("addr", addr))
	return s.engine.Run(addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "agent": "gig-assistant"})
}

func (s *Server) chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	s.logger.Info("chat request", zap.Int("text_length", len(text)))

	answer, err := s.assistant.Answer(c.Request.Context(), text)
	if err != nil {
		s.logger.Error("assistant failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Response: answer})
}
