// Package chat answers free-form dental health questions through the
// configured text engine. The responder never returns an error: every
// failure mode maps to a fixed Turkish message so the HTTP layer and the
// CLI can hand whatever comes back straight to the user.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/esmanureral/dental-ai-backend/internal/llm"
	"github.com/esmanureral/dental-ai-backend/internal/platform/logger"
)

const (
	disabledMsg = "Üzgünüm, sohbet özelliği şu anda devre dışı. API anahtarı eksik veya servis kullanılamıyor."
	emptyMsg    = "Üzgünüm, şu an yanıt üretemiyorum."
)

const systemPrompt = "Sen Türkiye'deki diş sağlığı konularında uzman bir sanal asistansın.\n\n" +
	"KONUŞMA TARZI:\n" +
	"- Normal insan gibi konuş, asistan gibi değil\n" +
	"- Kısa ve doğal yanıtlar ver\n" +
	"- Selamlaşmalara kısa karşılık ver\n" +
	"- Sadece diş sağlığı sorularında detaya gir\n" +
	"- Gereksiz uzun açıklamalar yapma\n\n" +
	"ACİL DURUM YAKLAŞIMI:\n" +
	"- Önce acil rahatlama yöntemleri söyle\n" +
	"- Sonra doktora gitmesini söyle\n" +
	"- Pratik ve hemen uygulanabilir çözümler ver\n\n" +
	"ÖNEMLİ KURALLAR:\n" +
	"- Tıbbi tavsiye verme, sadece genel bilgi ver\n" +
	"- Acil durumlarda mutlaka diş hekimine başvurmasını söyle\n" +
	"- Normal insan gibi konuş, resmi olma\n" +
	"- Kısa ve samimi yanıtlar ver\n" +
	"- Sadece diş sağlığı konularında uzun yanıtlar ver\n"

type Responder struct {
	engine llm.Engine // nil when no provider is configured
	log    *logger.Logger
}

func NewResponder(engine llm.Engine, log *logger.Logger) *Responder {
	return &Responder{engine: engine, log: log}
}

// Enabled reports whether a text engine is configured.
func (r *Responder) Enabled() bool { return r.engine != nil }

// Chat answers one user message. The reply is always user-presentable.
func (r *Responder) Chat(ctx context.Context, message string) string {
	if r.engine == nil {
		return disabledMsg
	}
	reply, err := r.engine.GenerateText(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: message},
	})
	if err != nil {
		if r.log != nil {
			r.log.Warn("chat generation failed", "error", err)
		}
		return fmt.Sprintf("Üzgünüm, bir hata oluştu: %v", err)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return emptyMsg
	}
	return reply
}
