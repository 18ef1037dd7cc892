package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"profolio/internal/api"
	"profolio/internal/assets"
	"profolio/internal/auth"
	"profolio/internal/config"
	"profolio/internal/portfolio"
	"profolio/internal/render"
	"profolio/internal/share"
	"profolio/internal/storage"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	storageClient, err := storage.NewClient(cfg.MinIO)
	if err != nil {
		log.Fatalf("init storage client: %v", err)
	}
	log.Printf("storage client ready, bucket=%s", cfg.MinIO.Bucket)

	assetStore := assets.NewStore(storageClient, cfg.Upload.MaxBytes, cfg.Upload.ClamdAddr)
	inliner := assets.NewInliner(storageClient)
	records := portfolio.NewStore()
	renderer := render.NewRenderer(render.NewCatalog(cfg.Templates.Dir), inliner)
	shareGenerator := share.NewGenerator(cfg.Share.Scheme, cfg.API.Port)

	authService, err := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
	if err != nil {
		log.Fatalf("init auth service: %v", err)
	}

	router := api.NewRouter(logger)
	api.RegisterRoutes(router, records, assetStore, renderer, shareGenerator, authService)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	log.Printf("portfolio generator listening on %s, templates=%s", address, cfg.Templates.Dir)

	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}
