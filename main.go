package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"portfoliogo/internal/api"
	"portfoliogo/internal/config"
	"portfoliogo/internal/gateway"
	"portfoliogo/internal/logging"
	"portfoliogo/internal/mail"
	"portfoliogo/internal/ratelimit"
	"portfoliogo/internal/redis"
	"portfoliogo/internal/service/chat"
	"portfoliogo/internal/service/contact"
)

func main() {
	// .env is a local-dev convenience; deployed instances set real env vars.
	_ = godotenv.Load()

	cfgPath := os.Getenv("PORTFOLIOGO_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New()
	defer logger.Sync()

	contactWindow := time.Duration(cfg.Contact.RateWindowMinutes) * time.Minute
	chatWindow := time.Duration(cfg.Chat.RateWindowSeconds) * time.Second

	var contactLimiter, chatLimiter ratelimit.Limiter
	if cfg.Redis.Host != "" {
		rdb, err := redis.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("create redis client: %v", err)
		}
		defer rdb.Close()
		contactLimiter = ratelimit.NewRedis(rdb, "ratelimit:contact", contactWindow, cfg.Contact.RateMaxRequests)
		chatLimiter = ratelimit.NewRedis(rdb, "ratelimit:chat", chatWindow, cfg.Chat.RateMaxRequests)
		logger.Info("rate limiting backed by redis")
	} else {
		contactLimiter = ratelimit.NewMemory(contactWindow, cfg.Contact.RateMaxRequests)
		chatLimiter = ratelimit.NewMemory(chatWindow, cfg.Chat.RateMaxRequests)
		logger.Info("rate limiting in process memory, limits are per-instance")
	}

	sender := mail.NewResendSender(os.Getenv("RESEND_API_KEY"))
	contactService := contact.NewService(contact.Config{
		OwnerEmail:       cfg.Contact.OwnerEmail,
		NotificationFrom: cfg.Contact.NotificationFrom,
		ConfirmationFrom: cfg.Contact.ConfirmationFrom,
	}, contactLimiter, sender, logger)

	upstream := gateway.NewClient(cfg.Chat.GatewayBaseURL, cfg.Chat.Model, os.Getenv("AI_GATEWAY_API_KEY"))
	chatService := chat.NewService(chatLimiter, upstream, logger)

	handlers := api.NewHandler(contactService, chatService, logger)

	router := gin.Default()
	handlers.RegisterRoutes(router)

	addr := cfg.BasicConfig.ServerAddress
	logger.Info("starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
