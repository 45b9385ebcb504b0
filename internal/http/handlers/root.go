// Package handlers contains the gin endpoint handlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/esmanureral/dental-ai-backend/internal/http/response"
)

const welcomeMessage = "AI Backend Hazır! Diş sağlığına hoş geldin 🦷"

type RootHandler struct{}

func NewRootHandler() *RootHandler { return &RootHandler{} }

func (h *RootHandler) Root(c *gin.Context) {
	response.RespondOK(c, gin.H{"message": welcomeMessage})
}

func (h *RootHandler) Health(c *gin.Context) {
	response.RespondOK(c, gin.H{"status": "healthy"})
}
