package service

import (
	"github.com/molecule-insight/insight-server/internal/adapter"
	"github.com/molecule-insight/insight-server/internal/config"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/internal/store"
)

type Services struct {
	AuthService     AuthService
	ProfileService  ProfileService
	AnalysisService AnalysisService
	ArchiveService  ArchiveService
	FeedbackService FeedbackService
	AppInfoService  AppInfoService
}

func NewServices(storages store.Storages, adapters *adapter.Adapters, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, adapters.Google, cfg.Auth, logger),
		ProfileService:  NewProfileService(storages.UserRepository, storages.AvatarFileStorage, logger),
		AnalysisService: NewAnalysisService(adapters.Agent, adapters.PubChem, logger),
		ArchiveService:  NewArchiveService(storages.ArchiveRepository, logger),
		FeedbackService: NewFeedbackService(storages.FeedbackRepository, storages.UserRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
