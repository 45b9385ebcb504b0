package chat

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	llmmock "github.com/esmanureral/dental-ai-backend/internal/llm/mock"
)

func TestChatDisabledWithoutEngine(t *testing.T) {
	r := NewResponder(nil, nil)

	got := r.Chat(context.Background(), "dişim ağrıyor")

	want := "Üzgünüm, sohbet özelliği şu anda devre dışı. API anahtarı eksik veya servis kullanılamıyor."
	if got != want {
		t.Errorf("reply = %q, want %q", got, want)
	}
	if r.Enabled() {
		t.Error("Enabled() should be false without an engine")
	}
}

func TestChatSendsPersonaAndMessage(t *testing.T) {
	eng := &llmmock.Engine{Reply: "  Geçmiş olsun, bol su için.  "}
	r := NewResponder(eng, nil)

	got := r.Chat(context.Background(), "dişim ağrıyor")

	if got != "Geçmiş olsun, bol su için." {
		t.Errorf("reply = %q", got)
	}
	if len(eng.Calls) != 1 {
		t.Fatalf("engine calls = %d, want 1", len(eng.Calls))
	}
	msgs := eng.Calls[0]
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	if !strings.Contains(msgs[0].Content, "diş sağlığı konularında uzman") {
		t.Errorf("system prompt missing persona: %q", msgs[0].Content)
	}
	if msgs[1].Content != "dişim ağrıyor" {
		t.Errorf("user message = %q", msgs[1].Content)
	}
}

func TestChatEmptyReply(t *testing.T) {
	eng := &llmmock.Engine{Reply: "   "}
	r := NewResponder(eng, nil)

	if got := r.Chat(context.Background(), "merhaba"); got != "Üzgünüm, şu an yanıt üretemiyorum." {
		t.Errorf("reply = %q", got)
	}
}

func TestChatEngineError(t *testing.T) {
	eng := &llmmock.Engine{Err: errors.New("quota exceeded")}
	r := NewResponder(eng, nil)

	got := r.Chat(context.Background(), "merhaba")

	if !strings.HasPrefix(got, "Üzgünüm, bir hata oluştu: ") {
		t.Errorf("reply = %q", got)
	}
	if !strings.Contains(got, "quota exceeded") {
		t.Errorf("reply should carry the cause: %q", got)
	}
}

func TestRunCLIExitWord(t *testing.T) {
	eng := &llmmock.Engine{Reply: "Tabii, anlatayım."}
	r := NewResponder(eng, nil)

	in := strings.NewReader("diş ipi nasıl kullanılır\n\nçık\n")
	var out bytes.Buffer
	r.RunCLI(context.Background(), in, &out)

	s := out.String()
	if !strings.Contains(s, "Bot: Tabii, anlatayım.") {
		t.Errorf("output missing bot reply: %q", s)
	}
	if !strings.Contains(s, "Görüşürüz! 😊") {
		t.Errorf("output missing goodbye: %q", s)
	}
	if len(eng.Calls) != 1 {
		t.Errorf("blank line should be skipped; calls = %d", len(eng.Calls))
	}
}

func TestRunCLIEOF(t *testing.T) {
	r := NewResponder(nil, nil)

	var out bytes.Buffer
	done := make(chan struct{})
	go func() {
		r.RunCLI(context.Background(), strings.NewReader(""), &out)
		close(done)
	}()
	<-done
}
