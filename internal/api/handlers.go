package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfoliogo/internal/models"
	"portfoliogo/internal/service/chat"
	"portfoliogo/internal/service/contact"
)

// Handler wires HTTP routes to the contact pipeline and the chat relay.
type Handler struct {
	contact *contact.Service
	chat    *chat.Service
	logger  *zap.Logger
}

// NewHandler constructs a Handler instance.
func NewHandler(contactService *contact.Service, chatService *chat.Service, logger *zap.Logger) *Handler {
	return &Handler{
		contact: contactService,
		chat:    chatService,
		logger:  logger,
	}
}

// RegisterRoutes attaches all HTTP routes to the router. Both endpoints are
// public and CORS-open: they are called directly from the browser.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.POST("/send-contact-email", h.sendContactEmail)
	router.POST("/recruiter-chat", h.recruiterChat)
}

// corsMiddleware answers preflight for every route, so no explicit OPTIONS
// handlers are registered.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (h *Handler) sendContactEmail(c *gin.Context) {
	var sub models.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		// Malformed bodies get the same generic failure as any other
		// internal error, with detail kept server-side.
		h.logger.Error("contact request decode failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Une erreur est survenue. Veuillez réessayer.",
		})
		return
	}
	result := h.contact.Process(c.Request.Context(), &sub)
	c.JSON(result.Status, result.Body)
}

func (h *Handler) recruiterChat(c *gin.Context) {
	clientID := clientIdentifier(c)
	if rej := h.chat.CheckRate(c.Request.Context(), clientID); rej != nil {
		c.JSON(rej.Status, gin.H{"error": rej.Message})
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format de messages invalide"})
		return
	}

	resp, rej := h.chat.OpenStream(c.Request.Context(), req.Messages)
	if rej != nil {
		c.JSON(rej.Status, gin.H{"error": rej.Message})
		return
	}
	defer resp.Body.Close()

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur du service IA"})
		return
	}

	// Forward the upstream bytes verbatim: no event parsing, no buffering
	// beyond the copy chunk.
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	buf := make([]byte, 4096)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			if _, werr := c.Writer.Write(buf[:n]); werr != nil {
				return
			}
			flusher.Flush()
		}
		if err != nil {
			return
		}
	}
}

// clientIdentifier derives a rate-limit key from proxy-forwarded IP
// headers, falling back to "unknown".
func clientIdentifier(c *gin.Context) string {
	if ip := c.GetHeader("cf-connecting-ip"); ip != "" {
		return ip
	}
	if ip := c.GetHeader("x-real-ip"); ip != "" {
		return ip
	}
	if forwarded := c.GetHeader("x-forwarded-for"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	return "unknown"
}
