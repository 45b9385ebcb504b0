// Package narrative produces the patient-facing comment and 7-day care
// plan for a scan. Two strategies: a configured text-generation engine
// (personalized, uses recent scan history), and a deterministic template
// over the condition catalog. The template path needs no network and is
// the guaranteed fallback, so analysis always gets an answer.
package narrative

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/esmanureral/dental-ai-backend/internal/catalog"
	"github.com/esmanureral/dental-ai-backend/internal/history"
	"github.com/esmanureral/dental-ai-backend/internal/llm"
	"github.com/esmanureral/dental-ai-backend/internal/platform/logger"
)

type Result struct {
	Comment string
	Plan    []catalog.PlanItem
}

type Generator struct {
	engine  llm.Engine // nil when no provider is configured
	history *history.Store
	log     *logger.Logger
}

func NewGenerator(engine llm.Engine, hist *history.Store, log *logger.Logger) *Generator {
	return &Generator{engine: engine, history: hist, log: log}
}

// Enhanced reports whether the personalized strategy is available.
func (g *Generator) Enhanced() bool { return g.engine != nil }

// Generate returns a comment and a 7-item plan for the ranked findings.
// findingsText is the headline summary ("Label: 82.0%, ..."); topIssue is
// the TR label of the best finding, empty when the scan looks healthy.
func (g *Generator) Generate(ctx context.Context, findingsText, topIssue, userID string) Result {
	if g.engine != nil {
		if res, ok := g.fromModel(ctx, findingsText, topIssue, userID); ok {
			return res
		}
	}
	return g.fromTemplate(findingsText, topIssue)
}

type modelPayload struct {
	Comment string             `json:"comment"`
	Plan    []catalog.PlanItem `json:"plan"`
}

func (g *Generator) fromModel(ctx context.Context, findingsText, topIssue, userID string) (Result, bool) {
	historyStr := "Yeni kullanıcı."
	if g.history != nil && userID != "" {
		if entries := g.history.Recent(userID); len(entries) > 0 {
			lines := make([]string, 0, len(entries))
			for _, e := range entries {
				lines = append(lines, "Önceki: "+e.Findings+" -> "+e.Plan)
			}
			historyStr = strings.Join(lines, "\n")
		}
	}

	issue := topIssue
	if issue == "" {
		issue = "Sağlıklı görünüm"
	}

	system := "Sen kişisel diş koçu asistanısın. Tarama sonuçlarına göre motive edici, detaylı TÜRKÇE özet ve 7 günlük kişiselleştirilmiş bakım planı üret.\n" +
		"Özet: Riskleri, önerileri ve motivasyonu içersin (200 kelime max).\n" +
		"Plan: 7 gün için JSON array: [{\"day\": \"Pazartesi\", \"task\": \"Kısa, uygulanabilir görev\"}]. Görevler çeşitlilikli olsun, ana soruna odaklansın, hekime yönlendirsin.\n" +
		"Sadece JSON dön: {\"comment\": \"Özet metni\", \"plan\": [array]}"
	user := "Tarihçe: " + historyStr + "\n\n" +
		"Sonuçlar: " + findingsText + ". Ana sorun: " + issue + "."

	text, err := g.engine.GenerateText(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	})
	if err != nil {
		g.warn("narrative generation failed, using template", "error", err)
		return Result{}, false
	}

	payload, ok := parsePayload(text)
	if !ok {
		g.warn("narrative reply unparsable, using template")
		return Result{}, false
	}

	res := Result{Comment: payload.Comment, Plan: payload.Plan}
	if len(res.Plan) != 7 {
		g.warn("narrative plan malformed, using template plan", "items", len(res.Plan))
		res.Plan = catalog.WeeklyPlan(topIssue)
	}
	if strings.TrimSpace(res.Comment) == "" {
		return Result{}, false
	}
	return res, true
}

// parsePayload extracts the JSON object embedded in a model reply, which
// may be wrapped in prose or a markdown code fence.
func parsePayload(text string) (modelPayload, bool) {
	s := stripCodeFence(text)
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end <= start {
		return modelPayload{}, false
	}
	var payload modelPayload
	if err := json.Unmarshal([]byte(s[start:end+1]), &payload); err != nil {
		return modelPayload{}, false
	}
	return payload, true
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	firstNL := strings.IndexByte(s, '\n')
	if firstNL == -1 {
		return strings.TrimSpace(strings.Trim(s, "`"))
	}
	s = s[firstNL+1:]
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

func (g *Generator) warn(msg string, kv ...interface{}) {
	if g.log != nil {
		g.log.Warn(msg, kv...)
	}
}
