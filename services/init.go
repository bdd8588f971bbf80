package services

import (
	"github.com/customeros/notestack/config"
	"github.com/customeros/notestack/interfaces"
	"github.com/customeros/notestack/internal/logger"
	"github.com/customeros/notestack/internal/repository"
	"github.com/customeros/notestack/services/events"
	"github.com/customeros/notestack/services/ingest"
	"github.com/customeros/notestack/services/storage"
)

type Services struct {
	StorageService interfaces.StorageService
	EventPublisher interfaces.EventPublisher
	Coordinator    *ingest.Coordinator
}

// InitStorage picks R2 when an account is configured and plain S3 otherwise.
func InitStorage(cfg *config.StorageConfig) interfaces.StorageService {
	if cfg.UseR2() {
		return storage.NewR2StorageService(cfg.R2AccountID, cfg.AccessKeyID, cfg.AccessKeySecret, cfg.ScanBucket, cfg.IsPublic)
	}
	return storage.NewS3StorageService(cfg.AWSRegion, cfg.AccessKeyID, cfg.AccessKeySecret, cfg.ScanBucket, cfg.IsPublic)
}

// InitServices wires the ingestion pipeline. Without a RabbitMQ url no events are published.
func InitServices(rabbitmqURL string, log logger.Logger, storageService interfaces.StorageService, repos *repository.Repositories) (*Services, error) {
	services := Services{
		StorageService: storageService,
	}

	if rabbitmqURL != "" {
		publisher, err := events.NewRabbitMQPublisher(rabbitmqURL, log, events.DefaultPublisherConfig())
		if err != nil {
			return nil, err
		}
		services.EventPublisher = publisher
	} else {
		log.Warn("RABBITMQ_URL not set, note.created events are disabled")
	}

	services.Coordinator = ingest.NewCoordinator(log, repos.UserRepository, repos.FileRepository, repos.NoteRepository, services.EventPublisher)

	return &services, nil
}
