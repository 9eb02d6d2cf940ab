package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/izzypositivetech-001/Attendifybackend/internal/config"
	dbpkg "github.com/izzypositivetech-001/Attendifybackend/internal/db"
	"github.com/izzypositivetech-001/Attendifybackend/internal/logger"
	"github.com/izzypositivetech-001/Attendifybackend/internal/middleware"
	"github.com/izzypositivetech-001/Attendifybackend/internal/routes"
	"github.com/izzypositivetech-001/Attendifybackend/internal/upload"
)

func main() {

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Setup(cfg.Env, cfg.LogLevel)

	db := dbpkg.NewDB(cfg)
	storage := newStorage(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.StorageDriver == "local" {
		r.Static(cfg.PublicPath, cfg.UploadDir)
	}

	routes.RegisterRoutes(r, db, cfg, storage)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func newStorage(cfg *config.Config) upload.Storage {
	switch cfg.StorageDriver {
	case "s3":
		return upload.NewS3Storage(cfg)
	default:
		storage, err := upload.NewLocalStorage(cfg.UploadDir, cfg.PublicPath, cfg.MaxUploadBytes())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init upload storage")
		}
		return storage
	}
}
