// Package contact implements the contact-form abuse-mitigation pipeline:
// layered bot heuristics, field validation, policy checks, rate limiting,
// and finally dispatch of the two transactional emails.
package contact

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"portfoliogo/internal/antispam"
	"portfoliogo/internal/mail"
	"portfoliogo/internal/models"
	"portfoliogo/internal/ratelimit"
)

const (
	// Forms submitted faster than this are treated as bots.
	minSubmitDelay = 3 * time.Second
	// Forms older than this are stale and rejected visibly.
	maxFormAge = time.Hour
)

// Config carries the addresses used for the two outbound emails.
type Config struct {
	OwnerEmail       string
	NotificationFrom string
	ConfirmationFrom string
}

// Result is the HTTP outcome of one submission.
type Result struct {
	Status int
	Body   map[string]any
}

// Service runs submissions through the pipeline. It holds no per-request
// state; the only shared mutable state is inside the injected limiter.
type Service struct {
	cfg     Config
	limiter ratelimit.Limiter
	sender  mail.Sender
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires the pipeline dependencies.
func NewService(cfg Config, limiter ratelimit.Limiter, sender mail.Sender, logger *zap.Logger) *Service {
	return &Service{
		cfg:     cfg,
		limiter: limiter,
		sender:  sender,
		logger:  logger,
		now:     time.Now,
	}
}

// Bot-suspected submissions are answered exactly like accepted ones so
// automated probing cannot tell rejection from success.
func silentSuccess() Result {
	return Result{Status: http.StatusOK, Body: map[string]any{"success": true}}
}

func failure(status int, message string) Result {
	return Result{Status: status, Body: map[string]any{"success": false, "error": message}}
}

// Process runs one submission through the pipeline and returns the HTTP
// outcome. Checks short-circuit in order; the first four reject silently.
func (s *Service) Process(ctx context.Context, sub *models.ContactSubmission) Result {
	// 1. Honeypots: hidden fields only bots fill in.
	if antispam.HoneypotTriggered(sub.Honeypots()) {
		s.logger.Info("honeypot triggered, bot detected")
		return silentSuccess()
	}

	// 2. Known automation user agents.
	if sub.UserAgent != "" && antispam.IsBotUserAgent(sub.UserAgent) {
		s.logger.Info("bot user agent detected", zap.String("user_agent", sub.UserAgent))
		return silentSuccess()
	}

	// 3. Timing window around the client-supplied form-load timestamp.
	if sub.Timestamp != 0 {
		elapsed := s.now().Sub(time.UnixMilli(sub.Timestamp))
		if elapsed < minSubmitDelay {
			s.logger.Info("form submitted too quickly", zap.Duration("elapsed", elapsed))
			return silentSuccess()
		}
		if elapsed > maxFormAge {
			s.logger.Info("form timestamp too old", zap.Duration("elapsed", elapsed))
			return failure(http.StatusBadRequest, "Session expirée. Veuillez rafraîchir la page.")
		}
	}

	// 4. Security token: only checked when the client sent the full triple.
	if sub.Timestamp != 0 && sub.Nonce != "" && sub.SecurityToken != "" {
		if !antispam.VerifySecurityToken(sub.Timestamp, sub.Nonce, sub.SecurityToken) {
			s.logger.Info("invalid security token")
			return silentSuccess()
		}
	}

	// 5. Behavior counters: soft signal, logged but never rejected on.
	if sub.MouseMovements != nil && sub.Keystrokes != nil {
		if antispam.LowInteraction(*sub.MouseMovements, *sub.Keystrokes) {
			s.logger.Warn("suspicious behavior, low interaction",
				zap.Int("mouse_movements", *sub.MouseMovements),
				zap.Int("keystrokes", *sub.Keystrokes))
		}
	}

	// 6. Screen resolution oddities: soft signal as well.
	if sub.ScreenResolution != "" && antispam.UnusualResolution(sub.ScreenResolution) {
		s.logger.Warn("unusual screen resolution", zap.String("resolution", sub.ScreenResolution))
	}

	// 7. Field validation.
	if sub.Name == "" {
		return failure(http.StatusBadRequest, "Le nom est requis")
	}
	if sub.Email == "" {
		return failure(http.StatusBadRequest, "L'email est requis")
	}
	if sub.Message == "" {
		return failure(http.StatusBadRequest, "Le message est requis")
	}

	name := strings.TrimSpace(sub.Name)
	email := strings.ToLower(strings.TrimSpace(sub.Email))
	message := strings.TrimSpace(sub.Message)

	if !antispam.IsValidName(name) {
		return failure(http.StatusBadRequest, "Nom invalide (2-100 caractères)")
	}
	if !antispam.IsValidEmail(email) {
		return failure(http.StatusBadRequest, "Email invalide")
	}
	if antispam.IsDisposableEmail(email) {
		s.logger.Info("disposable email detected", zap.String("email", email))
		return failure(http.StatusBadRequest, "Les emails temporaires ne sont pas acceptés.")
	}
	if !antispam.IsValidMessage(message) {
		return failure(http.StatusBadRequest, "Message invalide (10-2000 caractères)")
	}

	// 8. Spam signatures over the combined fields.
	if antispam.IsSpamContent(name, email, message) {
		s.logger.Info("spam content detected")
		return failure(http.StatusBadRequest, "Votre message a été détecté comme spam")
	}

	// 9. Rate limit, keyed by the normalized sender email.
	decision, err := s.limiter.Allow(ctx, email)
	if err != nil {
		s.logger.Error("rate limiter failure", zap.Error(err))
		return failure(http.StatusInternalServerError, "Une erreur est survenue. Veuillez réessayer.")
	}
	if !decision.Allowed {
		s.logger.Info("rate limit exceeded", zap.String("email", email))
		return failure(http.StatusTooManyRequests, "Limite de messages atteinte. Réessayez dans 1 heure.")
	}

	s.logger.Info("sending contact email",
		zap.String("name", name), zap.String("email", email),
		zap.String("timezone", sub.Timezone))

	// 10. Escape everything that lands in the email HTML, then dispatch.
	safeName := antispam.EscapeHTML(name)
	safeEmail := antispam.EscapeHTML(email)
	safeMessage := strings.ReplaceAll(antispam.EscapeHTML(message), "\n", "<br>")

	notificationID, err := s.sender.Send(ctx, mail.Email{
		From:    s.cfg.NotificationFrom,
		To:      []string{s.cfg.OwnerEmail},
		Subject: "Nouveau message de " + safeName,
		HTML: mail.NotificationHTML(mail.NotificationData{
			Name:             safeName,
			Email:            safeEmail,
			Message:          safeMessage,
			Remaining:        decision.Remaining,
			MouseMovements:   sub.MouseMovements,
			Keystrokes:       sub.Keystrokes,
			Timezone:         sub.Timezone,
			ScreenResolution: sub.ScreenResolution,
		}),
	})
	if err != nil {
		s.logger.Error("notification email failed", zap.Error(err))
		return failure(http.StatusInternalServerError, "Une erreur est survenue. Veuillez réessayer.")
	}

	confirmationID, err := s.sender.Send(ctx, mail.Email{
		From:    s.cfg.ConfirmationFrom,
		To:      []string{email},
		Subject: "Merci pour votre message !",
		HTML: mail.ConfirmationHTML(mail.ConfirmationData{
			Name:    safeName,
			Message: safeMessage,
		}),
	})
	if err != nil {
		s.logger.Error("confirmation email failed", zap.Error(err))
		return failure(http.StatusInternalServerError, "Une erreur est survenue. Veuillez réessayer.")
	}

	return Result{
		Status: http.StatusOK,
		Body: map[string]any{
			"success": true,
			"data": map[string]any{
				"notification": map[string]any{"id": notificationID},
				"confirmation": map[string]any{"id": confirmationID},
			},
		},
	}
}
