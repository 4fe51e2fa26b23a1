package main

import (
	"fmt"

	"github.com/minhvu/portfolio-cms/adapters/event"
	httpAdapter "github.com/minhvu/portfolio-cms/adapters/http"
	"github.com/minhvu/portfolio-cms/adapters/media_storage"
	"github.com/minhvu/portfolio-cms/adapters/persistence"
	"github.com/minhvu/portfolio-cms/internal/application/service"
	authUC "github.com/minhvu/portfolio-cms/internal/application/usecase/auth"
	"github.com/minhvu/portfolio-cms/internal/application/usecase/content"
	"github.com/minhvu/portfolio-cms/internal/config"
	"github.com/minhvu/portfolio-cms/internal/domain/portfolio"
	"github.com/minhvu/portfolio-cms/pkg/auth"
	"github.com/minhvu/portfolio-cms/pkg/logger"
)

func main() {
	fmt.Println("Start Portfolio CMS API Server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("FATAL: cannot load config: %v", err))
	}

	log := logger.NewZapLogger(cfg.App.Env)

	// Store
	var store portfolio.Store
	switch cfg.Store.Backend {
	case "redis":
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			log.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		store = persistence.NewRedisStore(redisClient, log)
	default:
		store = persistence.NewFileStore(cfg.Store.Path, log)
	}

	// Content events
	events := event.NewKafkaPublisher(cfg, log)
	defer events.Close()

	// Media uploader
	var uploader service.Uploader
	uploadsDir := ""
	switch cfg.Media.Provider {
	case "cloudinary":
		uploader, err = media_storage.NewCloudinaryAdapter(cfg)
		if err != nil {
			log.Fatal("failed to initialize cloudinary uploader", err)
		}
	default:
		uploader, err = media_storage.NewLocalAdapter(cfg.Media.LocalDir)
		if err != nil {
			log.Fatal("failed to initialize local uploader", err)
		}
		uploadsDir = cfg.Media.LocalDir
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use cases
	loginUseCase := authUC.NewLoginUseCase(store, jwtSvc, log)
	profileUseCase := content.NewProfileUseCase(store, events)
	experienceUseCase := content.NewExperienceUseCase(store, events)
	projectUseCase := content.NewProjectUseCase(store, events)
	educationUseCase := content.NewEducationUseCase(store, events)
	certificationUseCase := content.NewCertificationUseCase(store, events)
	skillGroupUseCase := content.NewSkillGroupUseCase(store, events)

	// HTTP handlers
	handlers := httpAdapter.Handlers{
		Auth:           httpAdapter.NewAuthHandler(loginUseCase, jwtSvc, cfg.App.Env == "production"),
		Profile:        httpAdapter.NewProfileHandler(profileUseCase),
		Experiences:    httpAdapter.NewCollectionHandler(experienceUseCase, "Experience"),
		Projects:       httpAdapter.NewProjectHandler(projectUseCase),
		Education:      httpAdapter.NewCollectionHandler(educationUseCase, "Education"),
		Certifications: httpAdapter.NewCollectionHandler(certificationUseCase, "Certification"),
		Skills:         httpAdapter.NewCollectionHandler(skillGroupUseCase, "Skill group"),
		Upload:         httpAdapter.NewUploadHandler(uploader),
	}

	router := httpAdapter.NewRouter(handlers, jwtSvc, log, uploadsDir)

	log.Info("server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("cannot run server", err)
	}
}
