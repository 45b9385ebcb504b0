package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/esmanureral/dental-ai-backend/internal/analysis"
	"github.com/esmanureral/dental-ai-backend/internal/http/response"
	"github.com/esmanureral/dental-ai-backend/internal/platform/logger"
	"github.com/esmanureral/dental-ai-backend/internal/platform/workpool"
)

const analyzeFailedDetail = "Görüntü analizi sırasında sunucu hatası oluştu."

type AnalyzeHandler struct {
	service *analysis.Service
	pool    *workpool.Pool
	log     *logger.Logger
}

func NewAnalyzeHandler(service *analysis.Service, pool *workpool.Pool, log *logger.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{service: service, pool: pool, log: log}
}

type analyzeForm struct {
	UserID   string `form:"user_id" binding:"required"`
	ImageB64 string `form:"image_b64" binding:"required"`
	Symptom  string `form:"symptom"`
}

// POST /analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var form analyzeForm
	if err := c.ShouldBind(&form); err != nil {
		response.RespondDetail(c, http.StatusBadRequest, "user_id ve image_b64 alanları zorunludur.")
		return
	}
	if h.log != nil {
		h.log.Info("analyze requested", "user_id", form.UserID, "symptom_set", form.Symptom != "")
	}

	var report analysis.Report
	err := h.pool.Do(c.Request.Context(), func() error {
		report = h.service.Analyze(c.Request.Context(), analysis.Request{
			ImageB64: form.ImageB64,
			UserID:   form.UserID,
			Symptom:  form.Symptom,
		})
		return nil
	})
	if err != nil {
		if h.log != nil {
			h.log.Error("analyze work slot unavailable", "error", err)
		}
		response.RespondDetail(c, http.StatusInternalServerError, analyzeFailedDetail)
		return
	}

	if !report.Success {
		response.RespondDetail(c, http.StatusBadRequest, report.Error)
		return
	}
	response.RespondOK(c, report)
}
