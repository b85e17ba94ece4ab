package bootstrap

import (
	"milktrack-be/internal/config"
	"milktrack-be/internal/controller"
	"milktrack-be/internal/pkg/logger"
	"milktrack-be/internal/repository/memory"
	"milktrack-be/internal/repository/unitofwork"
	"milktrack-be/internal/service"
	"milktrack-be/pkg/importer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ImportController  controller.IImportController
	SessionController controller.ISessionController

	// Background services (main.go runs these)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	appLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	uowFactory := unitofwork.NewRepositoryFactory(db)
	pendingRepo := memory.NewPendingImportRepository(cfg.Import.PendingTTL())
	pipeline := importer.New(cfg.Import.Limits())

	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	publisherService := service.NewPublisherService(cfg.App.ImportEventTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ImportEventTopic, appLogger)

	importService := service.NewImportService(uowFactory, pendingRepo, pipeline, publisherService, appLogger)
	sessionService := service.NewSessionService(uowFactory, pipeline)

	return &Container{
		ImportController:  controller.NewImportController(importService),
		SessionController: controller.NewSessionController(sessionService),
		ConsumerService:   consumerService,
		Logger:            appLogger,
	}
}
