// Package chat validates recruiter-chat conversations and relays them to
// the upstream LLM gateway with the persona prompt prepended.
package chat

import (
	"context"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"portfoliogo/internal/models"
	"portfoliogo/internal/ratelimit"
)

const (
	maxMessageLength     = 1000
	maxMessagesInHistory = 20
)

// Upstream produces the raw streaming completion response.
type Upstream interface {
	StreamCompletion(ctx context.Context, messages []models.ChatMessage) (*http.Response, error)
}

// Rejection is a terminal non-streaming outcome.
type Rejection struct {
	Status  int
	Message string
}

// Service runs the two-phase request lifecycle: validating, then streaming.
type Service struct {
	limiter  ratelimit.Limiter
	upstream Upstream
	logger   *zap.Logger
}

// NewService wires the relay dependencies.
func NewService(limiter ratelimit.Limiter, upstream Upstream, logger *zap.Logger) *Service {
	return &Service{limiter: limiter, upstream: upstream, logger: logger}
}

// ValidateMessages checks the history shape and returns the sanitized copy,
// or a user-facing reason when the shape is invalid.
func ValidateMessages(messages []models.ChatMessage) ([]models.ChatMessage, string) {
	if len(messages) == 0 {
		return nil, "Aucun message fourni"
	}
	if len(messages) > maxMessagesInHistory {
		return nil, "Trop de messages (max: 20)"
	}
	sanitized := make([]models.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		if msg.Role != models.RoleUser && msg.Role != models.RoleAssistant {
			return nil, "Message mal formaté ou trop long"
		}
		if len(msg.Content) > maxMessageLength {
			return nil, "Message mal formaté ou trop long"
		}
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			return nil, "Message mal formaté ou trop long"
		}
		if len(content) > maxMessageLength {
			content = content[:maxMessageLength]
		}
		sanitized = append(sanitized, models.ChatMessage{Role: msg.Role, Content: content})
	}
	return sanitized, ""
}

// CheckRate counts the request against the client's window. It runs before
// the body is even parsed, so throttled clients learn nothing about
// validation. Returns nil when the request may proceed.
func (s *Service) CheckRate(ctx context.Context, clientID string) *Rejection {
	decision, err := s.limiter.Allow(ctx, clientID)
	if err != nil {
		s.logger.Error("chat rate limiter failure", zap.Error(err))
		return &Rejection{http.StatusInternalServerError, "Erreur du service IA"}
	}
	if !decision.Allowed {
		s.logger.Info("chat rate limit exceeded", zap.String("client", clientID))
		return &Rejection{http.StatusTooManyRequests, "Trop de messages. Attendez un moment avant de réessayer."}
	}
	return nil
}

// OpenStream validates the history and opens the upstream stream. Exactly
// one of the return values is non-nil. The caller owns the response body
// and must close it.
func (s *Service) OpenStream(ctx context.Context, messages []models.ChatMessage) (*http.Response, *Rejection) {
	sanitized, reason := ValidateMessages(messages)
	if reason != "" {
		return nil, &Rejection{http.StatusBadRequest, reason}
	}

	full := make([]models.ChatMessage, 0, len(sanitized)+1)
	full = append(full, models.ChatMessage{Role: models.RoleSystem, Content: personaPrompt})
	full = append(full, sanitized...)

	resp, err := s.upstream.StreamCompletion(ctx, full)
	if err != nil {
		s.logger.Error("ai gateway call failed", zap.Error(err))
		return nil, &Rejection{http.StatusInternalServerError, "Erreur du service IA"}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return nil, &Rejection{http.StatusTooManyRequests, "Limite de requêtes atteinte, réessayez plus tard."}
		case http.StatusPaymentRequired:
			return nil, &Rejection{http.StatusPaymentRequired, "Crédits insuffisants."}
		}
		// Upstream detail stays in server logs only.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.logger.Error("ai gateway error",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return nil, &Rejection{http.StatusInternalServerError, "Erreur du service IA"}
	}
	return resp, nil
}
