package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"assetverse/auth"
	"assetverse/config"
	"assetverse/db"
	"assetverse/db/mongo"
	"assetverse/db/postgres"
	"assetverse/handlers"
	"assetverse/logger"
	"assetverse/repository"
	"assetverse/routes"
)

func main() {
	log := logger.New("server")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var store db.DB
	var userRepo repository.UserRepository
	var assetRepo repository.AssetRepository
	var requestRepo repository.RequestRepository
	var packageRepo repository.PackageRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		if err := db.RunMigrations(cfg.PostgresURL); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		store = pg

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		assetRepo = repository.NewPostgresAssetRepo(pg.Conn)
		requestRepo = repository.NewPostgresRequestRepo(pg.Conn)
		packageRepo = repository.NewPostgresPackageRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		store = mg

		userRepo = repository.NewMongoUserRepo(mg.Client, cfg.DBName)
		assetRepo = repository.NewMongoAssetRepo(mg.Client, cfg.DBName)
		requestRepo = repository.NewMongoRequestRepo(mg.Client, cfg.DBName)
		packageRepo = repository.NewMongoPackageRepo(mg.Client, cfg.DBName)

	default:
		log.Fatal().Str("dbType", cfg.DBType).Msg("DB_TYPE not supported")
	}
	defer store.Disconnect()

	var verifier auth.TokenVerifier
	switch cfg.AuthDriver {
	case "jwt":
		verifier = auth.NewJWTVerifier(cfg.JWTSecret)
	case "firebase":
		verifier, err = auth.NewFirebaseVerifier(context.Background(), cfg.FirebaseCredentials)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init firebase verifier")
		}
	default:
		log.Fatal().Str("authDriver", cfg.AuthDriver).Msg("AUTH_DRIVER not supported")
	}

	h := routes.Handlers{
		Users:    &handlers.UserHandler{Repo: userRepo, Log: log},
		Assets:   &handlers.AssetHandler{Repo: assetRepo, Log: log},
		Requests: &handlers.RequestHandler{Repo: requestRepo, Log: log},
		Packages: &handlers.PackageHandler{Repo: packageRepo, Log: log},
	}

	router := routes.New(h, verifier, cfg.CORSOrigins, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("dbType", cfg.DBType).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
