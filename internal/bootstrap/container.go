package bootstrap

import (
	"context"
	"log"

	"legaldocai-be/internal/config"
	"legaldocai-be/internal/constant"
	"legaldocai-be/internal/controller"
	"legaldocai-be/internal/handler"
	"legaldocai-be/internal/pkg/logger"
	"legaldocai-be/internal/repository/memory"
	"legaldocai-be/internal/service"
	"legaldocai-be/internal/websocket"
	"legaldocai-be/pkg/ai"
	"legaldocai-be/pkg/analyzer"
	"legaldocai-be/pkg/kvstore"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	UploadController    controller.IUploadController
	DocumentController  controller.IDocumentController
	AnalyticsController controller.IAnalyticsController
	InsightController   controller.IInsightController
	HistoryController   controller.IHistoryController
	PreviewController   controller.IPreviewController
	ShellController     controller.IShellController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	ProgressHandler *handler.ProgressHandler
	WebSocketHub    *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// Summary cache: Redis when configured, in-process memory otherwise.
	var summaryCache kvstore.Store
	if cfg.Cache.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Cache.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		summaryCache = kvstore.NewRedisStore(rdb)
		log.Printf("[INFO] Using Summary Cache: REDIS")
	} else {
		summaryCache = kvstore.NewMemoryStore()
		log.Printf("[INFO] Using Summary Cache: MEMORY")
	}

	// External analysis backend clients
	analyzerClient := analyzer.NewClient(cfg.Analyzer.BaseURL)
	aiClient := ai.NewClient(cfg.Analyzer.BaseURL)

	// WebSocket Hub
	wsHub := websocket.NewHub(sysLogger)

	// In-Memory Stores
	historyRepo := memory.NewHistoryRepository()
	previewRepo := memory.NewPreviewRepository()

	// 3. Services
	sessionService := service.NewSessionService(historyRepo, previewRepo, pubSub, sysLogger)
	uploadService := service.NewUploadService(analyzerClient, wsHub, sysLogger)
	documentService := service.NewDocumentService(sessionService)
	analyticsService := service.NewAnalyticsService(sessionService)
	insightService := service.NewInsightService(sessionService, aiClient, summaryCache, sysLogger)
	previewService := service.NewPreviewService(sessionService, previewRepo)

	consumerService := service.NewConsumerService(
		pubSub,
		constant.TopicDocumentEvents,
		wsHub,
		sysLogger,
	)

	// Handler
	progressHandler := handler.NewProgressHandler(wsHub, sysLogger)

	// 4. Controllers
	return &Container{
		UploadController:    controller.NewUploadController(uploadService, sessionService),
		DocumentController:  controller.NewDocumentController(documentService),
		AnalyticsController: controller.NewAnalyticsController(analyticsService),
		InsightController:   controller.NewInsightController(insightService),
		HistoryController:   controller.NewHistoryController(sessionService),
		PreviewController:   controller.NewPreviewController(previewService),
		ShellController:     controller.NewShellController(sessionService),

		ConsumerService: consumerService,

		ProgressHandler: progressHandler,
		WebSocketHub:    wsHub,
	}
}
