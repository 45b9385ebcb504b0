package narrative

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/esmanureral/dental-ai-backend/internal/history"
	llmmock "github.com/esmanureral/dental-ai-backend/internal/llm/mock"
)

const findingsCaries = "Diş Çürüğü (Karies): 82.0%, Diş Eti İltihabı (Gingivitis): 15.0%, Diş Taşı (Calculus): 2.0%"

func validReply() string {
	return `{"comment": "Harika gidiyorsun, çürük riskine dikkat!", "plan": [` +
		`{"day": "Pazartesi", "task": "Fırçala"},` +
		`{"day": "Salı", "task": "Diş ipi"},` +
		`{"day": "Çarşamba", "task": "Gargara"},` +
		`{"day": "Perşembe", "task": "Şekersiz gün"},` +
		`{"day": "Cuma", "task": "Fırçala"},` +
		`{"day": "Cumartesi", "task": "Randevu al"},` +
		`{"day": "Pazar", "task": "Kontrol"}]}`
}

func TestGenerateTemplateWhenNoEngine(t *testing.T) {
	g := NewGenerator(nil, history.NewStore(3), nil)

	res := g.Generate(context.Background(), findingsCaries, "Diş Çürüğü (Karies)", "u1")

	if !strings.Contains(res.Comment, "*Diş Çürüğü (Karies)*") {
		t.Errorf("comment missing top issue: %q", res.Comment)
	}
	if !strings.Contains(res.Comment, "82.0%") {
		t.Errorf("comment missing top probability: %q", res.Comment)
	}
	if !strings.Contains(res.Comment, "İkinci en olası bulgu ise 15.0% ile *Diş Eti İltihabı (Gingivitis)*") {
		t.Errorf("comment missing secondary finding: %q", res.Comment)
	}
	if !strings.Contains(res.Comment, "diş hekimine başvurmanız") {
		t.Errorf("comment missing closing text: %q", res.Comment)
	}
	if len(res.Plan) != 7 {
		t.Fatalf("plan length = %d, want 7", len(res.Plan))
	}
	if res.Plan[0].Day != "Pazartesi" || res.Plan[6].Day != "Pazar" {
		t.Errorf("plan days out of order: %v ... %v", res.Plan[0], res.Plan[6])
	}
}

func TestGenerateTemplateHealthy(t *testing.T) {
	g := NewGenerator(nil, nil, nil)

	res := g.Generate(context.Background(), "Sağlıklı: 99.0%", "", "u1")

	if !strings.Contains(res.Comment, "sağlıklı görünüyor") {
		t.Errorf("healthy comment wrong: %q", res.Comment)
	}
	if !strings.Contains(res.Comment, "Sağlıklı: 99.0%") {
		t.Errorf("healthy comment should embed findings: %q", res.Comment)
	}
	if len(res.Plan) != 7 {
		t.Fatalf("plan length = %d, want 7", len(res.Plan))
	}
}

func TestGenerateUsesEngineReply(t *testing.T) {
	eng := &llmmock.Engine{Reply: validReply()}
	g := NewGenerator(eng, history.NewStore(3), nil)

	res := g.Generate(context.Background(), findingsCaries, "Diş Çürüğü (Karies)", "u1")

	if res.Comment != "Harika gidiyorsun, çürük riskine dikkat!" {
		t.Errorf("comment = %q", res.Comment)
	}
	if len(res.Plan) != 7 || res.Plan[5].Task != "Randevu al" {
		t.Errorf("plan not taken from reply: %v", res.Plan)
	}
	if len(eng.Calls) != 1 {
		t.Fatalf("engine calls = %d, want 1", len(eng.Calls))
	}
}

func TestGeneratePromptIncludesHistory(t *testing.T) {
	hist := history.NewStore(3)
	hist.Append("u1", history.Entry{Findings: "Scan: Diş Taşı (Calculus): 60.0%", Plan: "Plan for Diş Taşı (Calculus)"})
	eng := &llmmock.Engine{Reply: validReply()}
	g := NewGenerator(eng, hist, nil)

	g.Generate(context.Background(), findingsCaries, "Diş Çürüğü (Karies)", "u1")

	prompt := eng.Calls[0][len(eng.Calls[0])-1].Content
	if !strings.Contains(prompt, "Önceki: Scan: Diş Taşı (Calculus): 60.0% -> Plan for Diş Taşı (Calculus)") {
		t.Errorf("prompt missing history line: %q", prompt)
	}
	if strings.Contains(prompt, "Yeni kullanıcı.") {
		t.Errorf("prompt should not call a returning user new: %q", prompt)
	}
}

func TestGeneratePromptNewUser(t *testing.T) {
	eng := &llmmock.Engine{Reply: validReply()}
	g := NewGenerator(eng, history.NewStore(3), nil)

	g.Generate(context.Background(), findingsCaries, "Diş Çürüğü (Karies)", "fresh")

	prompt := eng.Calls[0][len(eng.Calls[0])-1].Content
	if !strings.Contains(prompt, "Yeni kullanıcı.") {
		t.Errorf("prompt missing new-user marker: %q", prompt)
	}
}

func TestGenerateFencedReply(t *testing.T) {
	eng := &llmmock.Engine{Reply: "```json\n" + validReply() + "\n```"}
	g := NewGenerator(eng, nil, nil)

	res := g.Generate(context.Background(), findingsCaries, "Diş Çürüğü (Karies)", "u1")

	if res.Comment != "Harika gidiyorsun, çürük riskine dikkat!" {
		t.Errorf("fenced reply not parsed: %q", res.Comment)
	}
}

func TestGenerateFallsBackOnEngineError(t *testing.T) {
	eng := &llmmock.Engine{Err: errors.New("quota exceeded")}
	g := NewGenerator(eng, nil, nil)

	res := g.Generate(context.Background(), findingsCaries, "Diş Çürüğü (Karies)", "u1")

	if !strings.Contains(res.Comment, "*Diş Çürüğü (Karies)*") {
		t.Errorf("expected template comment, got %q", res.Comment)
	}
	if len(res.Plan) != 7 {
		t.Fatalf("plan length = %d, want 7", len(res.Plan))
	}
}

func TestGenerateFallsBackOnGarbageReply(t *testing.T) {
	eng := &llmmock.Engine{Reply: "maalesef bugün plan yok"}
	g := NewGenerator(eng, nil, nil)

	res := g.Generate(context.Background(), findingsCaries, "Diş Çürüğü (Karies)", "u1")

	if !strings.Contains(res.Comment, "Analiz sonuçlarınızı inceledim.") {
		t.Errorf("expected template comment, got %q", res.Comment)
	}
}

func TestGenerateRepairsShortPlan(t *testing.T) {
	eng := &llmmock.Engine{Reply: `{"comment": "Kısa plan geldi.", "plan": [{"day": "Pazartesi", "task": "Fırçala"}]}`}
	g := NewGenerator(eng, nil, nil)

	res := g.Generate(context.Background(), findingsCaries, "Diş Çürüğü (Karies)", "u1")

	if res.Comment != "Kısa plan geldi." {
		t.Errorf("model comment should be kept: %q", res.Comment)
	}
	if len(res.Plan) != 7 {
		t.Fatalf("plan length = %d, want 7 after repair", len(res.Plan))
	}
	if res.Plan[0].Day != "Pazartesi" {
		t.Errorf("repaired plan should start Monday: %v", res.Plan[0])
	}
}

func TestParsePayloadSurroundingProse(t *testing.T) {
	text := "İşte planın:\n" + validReply() + "\nSağlıklı günler!"
	payload, ok := parsePayload(text)
	if !ok {
		t.Fatal("parsePayload failed on prose-wrapped JSON")
	}
	if payload.Comment == "" || len(payload.Plan) != 7 {
		t.Errorf("payload = %+v", payload)
	}
}
