package handlers

import (
	"context"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/esmanureral/dental-ai-backend/internal/chat"
	"github.com/esmanureral/dental-ai-backend/internal/http/response"
	"github.com/esmanureral/dental-ai-backend/internal/platform/logger"
	"github.com/esmanureral/dental-ai-backend/internal/platform/workpool"
)

const chatFailedDetail = "Sohbet işlemi sırasında bir hata oluştu. Lütfen tekrar deneyin."

type ChatHandler struct {
	responder *chat.Responder
	pool      *workpool.Pool
	log       *logger.Logger

	cliOnce sync.Once
}

func NewChatHandler(responder *chat.Responder, pool *workpool.Pool, log *logger.Logger) *ChatHandler {
	return &ChatHandler{responder: responder, pool: pool, log: log}
}

type chatForm struct {
	Message   string `form:"message" binding:"required"`
	SessionID string `form:"session_id" binding:"required"`
}

// POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var form chatForm
	if err := c.ShouldBind(&form); err != nil {
		response.RespondDetail(c, http.StatusBadRequest, "message ve session_id alanları zorunludur.")
		return
	}
	if h.log != nil {
		h.log.Info("chat message received", "session_id", form.SessionID)
	}

	var reply string
	err := h.pool.Do(c.Request.Context(), func() error {
		reply = h.responder.Chat(c.Request.Context(), form.Message)
		return nil
	})
	if err != nil {
		if h.log != nil {
			h.log.Error("chat work slot unavailable", "error", err)
		}
		response.RespondDetail(c, http.StatusInternalServerError, chatFailedDetail)
		return
	}
	response.RespondOK(c, gin.H{"reply": reply})
}

// GET /chat/start_cli
//
// Starts the interactive terminal loop over the process stdin. Only one
// loop ever runs; repeat calls still report started.
func (h *ChatHandler) StartCLI(c *gin.Context) {
	h.cliOnce.Do(func() {
		// Detach from the request context: the loop outlives the request.
		go h.responder.RunCLI(context.Background(), os.Stdin, os.Stdout)
	})
	response.RespondOK(c, gin.H{"status": "started"})
}
