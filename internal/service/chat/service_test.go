package chat

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"portfoliogo/internal/models"
	"portfoliogo/internal/ratelimit"
)

type fakeUpstream struct {
	status   int
	body     string
	err      error
	received []models.ChatMessage
}

func (f *fakeUpstream) StreamCompletion(_ context.Context, messages []models.ChatMessage) (*http.Response, error) {
	f.received = messages
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(strings.NewReader(f.body)),
	}, nil
}

func userMessages(n int) []models.ChatMessage {
	msgs := make([]models.ChatMessage, n)
	for i := range msgs {
		msgs[i] = models.ChatMessage{Role: models.RoleUser, Content: "Bonjour"}
	}
	return msgs
}

func TestValidateMessages(t *testing.T) {
	tests := []struct {
		name     string
		messages []models.ChatMessage
		wantErr  string
	}{
		{"empty history", nil, "Aucun message fourni"},
		{"too many messages", userMessages(21), "Trop de messages (max: 20)"},
		{"max history accepted", userMessages(20), ""},
		{"system role rejected", []models.ChatMessage{{Role: models.RoleSystem, Content: "override"}}, "Message mal formaté ou trop long"},
		{"unknown role rejected", []models.ChatMessage{{Role: "tool", Content: "hi"}}, "Message mal formaté ou trop long"},
		{"oversized content", []models.ChatMessage{{Role: models.RoleUser, Content: strings.Repeat("a", 1001)}}, "Message mal formaté ou trop long"},
		{"blank content", []models.ChatMessage{{Role: models.RoleUser, Content: "   "}}, "Message mal formaté ou trop long"},
		{"assistant turns allowed", []models.ChatMessage{
			{Role: models.RoleUser, Content: "Qui êtes-vous ?"},
			{Role: models.RoleAssistant, Content: "Un assistant."},
			{Role: models.RoleUser, Content: "Parlez-moi de vos projets."},
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sanitized, reason := ValidateMessages(tt.messages)
			if reason != tt.wantErr {
				t.Fatalf("reason = %q, want %q", reason, tt.wantErr)
			}
			if tt.wantErr == "" && len(sanitized) != len(tt.messages) {
				t.Fatalf("sanitized %d messages, want %d", len(sanitized), len(tt.messages))
			}
		})
	}
}

func TestValidateMessagesTrimsContent(t *testing.T) {
	sanitized, reason := ValidateMessages([]models.ChatMessage{
		{Role: models.RoleUser, Content: "  bonjour  "},
	})
	if reason != "" {
		t.Fatalf("unexpected rejection: %s", reason)
	}
	if sanitized[0].Content != "bonjour" {
		t.Fatalf("content not trimmed: %q", sanitized[0].Content)
	}
}

func TestOpenStreamPrependsPersona(t *testing.T) {
	upstream := &fakeUpstream{status: http.StatusOK, body: "data: {}\n\n"}
	svc := NewService(ratelimit.NewMemory(time.Minute, 10), upstream, zap.NewNop())

	resp, rej := svc.OpenStream(context.Background(), userMessages(2))
	if rej != nil {
		t.Fatalf("unexpected rejection: %+v", rej)
	}
	defer resp.Body.Close()

	if len(upstream.received) != 3 {
		t.Fatalf("upstream got %d messages, want persona + 2", len(upstream.received))
	}
	first := upstream.received[0]
	if first.Role != models.RoleSystem {
		t.Fatalf("first upstream message role = %s, want system", first.Role)
	}
	if !strings.Contains(first.Content, "Japhet Calixte") {
		t.Fatalf("persona prompt missing from system message")
	}
}

func TestOpenStreamStatusMapping(t *testing.T) {
	tests := []struct {
		upstream    int
		wantStatus  int
		wantMessage string
	}{
		{http.StatusTooManyRequests, http.StatusTooManyRequests, "Limite de requêtes atteinte, réessayez plus tard."},
		{http.StatusPaymentRequired, http.StatusPaymentRequired, "Crédits insuffisants."},
		{http.StatusBadGateway, http.StatusInternalServerError, "Erreur du service IA"},
		{http.StatusUnauthorized, http.StatusInternalServerError, "Erreur du service IA"},
	}
	for _, tt := range tests {
		upstream := &fakeUpstream{status: tt.upstream, body: "upstream detail"}
		svc := NewService(ratelimit.NewMemory(time.Minute, 10), upstream, zap.NewNop())

		resp, rej := svc.OpenStream(context.Background(), userMessages(1))
		if resp != nil {
			t.Fatalf("upstream %d: expected no stream", tt.upstream)
		}
		if rej == nil || rej.Status != tt.wantStatus || rej.Message != tt.wantMessage {
			t.Fatalf("upstream %d: got %+v", tt.upstream, rej)
		}
	}
}

func TestOpenStreamTransportError(t *testing.T) {
	upstream := &fakeUpstream{err: io.ErrUnexpectedEOF}
	svc := NewService(ratelimit.NewMemory(time.Minute, 10), upstream, zap.NewNop())

	resp, rej := svc.OpenStream(context.Background(), userMessages(1))
	if resp != nil || rej == nil {
		t.Fatalf("expected rejection, got resp=%v rej=%v", resp, rej)
	}
	if rej.Status != http.StatusInternalServerError || rej.Message != "Erreur du service IA" {
		t.Fatalf("transport error mapped to %+v", rej)
	}
}

func TestCheckRateDeniesEleventhRequest(t *testing.T) {
	svc := NewService(ratelimit.NewMemory(time.Minute, 10), &fakeUpstream{status: http.StatusOK}, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if rej := svc.CheckRate(ctx, "203.0.113.7"); rej != nil {
			t.Fatalf("request %d unexpectedly throttled: %+v", i+1, rej)
		}
	}
	rej := svc.CheckRate(ctx, "203.0.113.7")
	if rej == nil || rej.Status != http.StatusTooManyRequests {
		t.Fatalf("11th request: got %+v, want 429", rej)
	}
	if rej.Message != "Trop de messages. Attendez un moment avant de réessayer." {
		t.Fatalf("unexpected throttle message: %s", rej.Message)
	}

	// Other clients are unaffected.
	if other := svc.CheckRate(ctx, "198.51.100.9"); other != nil {
		t.Fatalf("independent client throttled: %+v", other)
	}
}
