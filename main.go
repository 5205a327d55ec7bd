package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/camden-git/photocatalog/config"
	"github.com/camden-git/photocatalog/database"
	"github.com/camden-git/photocatalog/handlers"
	"github.com/camden-git/photocatalog/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	if cfg.LogPath != "" {
		log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
		}))
	}

	db, err := database.InitGormDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database: %v", err)
	}

	assetRepo := repository.NewAssetRepository(db)
	albumRepo := repository.NewAlbumRepository(db)

	log.Printf("Using database: %s", cfg.DatabasePath)

	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	timelineHandler := &handlers.TimelineHandler{Assets: assetRepo}
	assetHandler := &handlers.AssetHandler{Assets: assetRepo}
	albumHandler := &handlers.AlbumHandler{Albums: albumRepo}

	r.Route("/api", func(r chi.Router) {
		r.Route("/timeline", func(r chi.Router) {
			r.Get("/buckets", timelineHandler.GetTimeBuckets)
			r.Get("/bucket", timelineHandler.GetTimeBucket)
		})
		r.Route("/assets", func(r chi.Router) {
			r.Get("/statistics", assetHandler.GetStatistics)
			r.Get("/map-markers", assetHandler.GetMapMarkers)
			r.Get("/scan", assetHandler.ScanProperty)
			r.Post("/trash", assetHandler.TrashAssets)
			r.Post("/restore", assetHandler.RestoreAssets)
			r.Get("/{asset_id}", assetHandler.GetAsset)
		})
		r.Route("/albums", func(r chi.Router) {
			r.Get("/{album_id}/assets", albumHandler.GetAlbumAssets)
		})
	})

	log.Printf("Listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatalf("FATAL: Server error: %v", err)
	}
}
