package bootstrap

import (
	"context"
	"log"
	"time"

	"paie-detect-be/internal/config"
	"paie-detect-be/internal/controller"
	"paie-detect-be/internal/pkg/blobstore"
	"paie-detect-be/internal/pkg/logger"
	"paie-detect-be/internal/pkg/mailer"
	"paie-detect-be/internal/pkg/ratelimit"
	"paie-detect-be/internal/pkg/serverutils"
	"paie-detect-be/internal/repository/unitofwork"
	"paie-detect-be/internal/service"
	"paie-detect-be/pkg/llm/factory"
	"paie-detect-be/pkg/refdata"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const rateWindow = time.Hour

type Container struct {
	// Controllers
	UploadController   controller.IUploadController
	AnalysisController controller.IAnalysisController
	ReportController   controller.IReportController
	ContactController  controller.IContactController
	AdminController    controller.IAdminController
	HealthController   controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.OperatorEmail,
		sysLogger,
	)

	blobs, err := blobstore.NewLocalStore(cfg.App.UploadDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to prepare upload storage: %v", err)
	}

	reference := refdata.Default()
	if err := reference.Validate(); err != nil {
		sysLogger.Warn("REFDATA", "Reference tables have overlapping or malformed periods", map[string]interface{}{"error": err.Error()})
	}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	// 3. Rate limiting
	limiter := newLimiter(cfg.App.RedisURL)
	limit := func(bucket string, max int, message string) fiber.Handler {
		return serverutils.RateLimitMiddleware(limiter, bucket, max, rateWindow, message, sysLogger)
	}

	// 4. Oracles
	vision, err := factory.NewLLMProvider(cfg.Ai.Provider, cfg.Ai.VisionModel, cfg.Ai.OllamaBaseURL, cfg.Keys.Anthropic)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize vision model: %v", err)
	}
	text, err := factory.NewLLMProvider(cfg.Ai.Provider, cfg.Ai.ReportModel, cfg.Ai.OllamaBaseURL, cfg.Keys.Anthropic)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize report model: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (vision %s, report %s)", cfg.Ai.Provider, cfg.Ai.VisionModel, cfg.Ai.ReportModel)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.LeadTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.LeadTopic, uowFactory, sysLogger)

	uploadService := service.NewUploadService(uowFactory, blobs, sysLogger)
	analysisService := service.NewAnalysisService(
		uowFactory,
		blobs,
		vision,
		reference,
		service.AnalysisConfig{Model: cfg.Ai.VisionModel, MaxTokens: cfg.Ai.MaxTokens},
		sysLogger,
	)
	reportService := service.NewReportService(
		uowFactory,
		text,
		publisherService,
		emailService,
		service.ReportConfig{Model: cfg.Ai.ReportModel, MaxTokens: cfg.Ai.MaxTokens},
		sysLogger,
	)
	contactService := service.NewContactService(uowFactory, emailService, sysLogger)
	adminService := service.NewAdminService(uowFactory, blobs, sysLogger)

	// 6. Controllers
	return &Container{
		UploadController: controller.NewUploadController(uploadService,
			limit("upload", cfg.Limits.UploadPerHour, "Trop d'envois de fichiers, réessayez dans une heure.")),
		AnalysisController: controller.NewAnalysisController(analysisService,
			limit("analyze", cfg.Limits.AnalyzePerHour, "Trop d'analyses, réessayez dans une heure.")),
		ReportController: controller.NewReportController(reportService),
		ContactController: controller.NewContactController(contactService,
			limit("contact", cfg.Limits.ContactPerHour, "Trop de messages, réessayez dans une heure.")),
		AdminController:  controller.NewAdminController(adminService, cfg.Keys.AdminJWTSecret),
		HealthController: controller.NewHealthController(),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}

// newLimiter shares the window through Redis when configured and falls back
// to a per-process window otherwise.
func newLimiter(redisURL string) ratelimit.Limiter {
	if redisURL == "" {
		log.Println("[INFO] REDIS_URL not set, rate limits are kept in memory")
		return ratelimit.NewMemoryLimiter()
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: redisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	return ratelimit.NewRedisLimiter(rdb)
}
