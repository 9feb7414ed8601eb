package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nurpe/paintraffle/internal/auth"
	"github.com/nurpe/paintraffle/internal/config"
	"github.com/nurpe/paintraffle/internal/db"
	"github.com/nurpe/paintraffle/internal/excel"
	httphandler "github.com/nurpe/paintraffle/internal/http"
	"github.com/nurpe/paintraffle/internal/http/middleware"
	"github.com/nurpe/paintraffle/internal/logger"
	"github.com/nurpe/paintraffle/internal/pdf"
	"github.com/nurpe/paintraffle/internal/repository"
	"github.com/nurpe/paintraffle/internal/service"
	"github.com/nurpe/paintraffle/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	imageStore, err := storage.NewS3Store(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init image store")
	}

	accessTTL, err := time.ParseDuration(cfg.Auth.AccessTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT_ACCESS_TTL")
	}
	tokens := auth.NewTokens(cfg.Auth.AccessSecret, accessTTL)

	contractorRepo := repository.NewContractorRepository(database)
	validatorRepo := repository.NewValidatorRepository(database)
	projectRepo := repository.NewProjectRepository(database)

	contractorService := service.NewContractorService(contractorRepo, tokens)
	validatorService := service.NewValidatorService(validatorRepo, tokens, log)
	projectService := service.NewProjectService(projectRepo, contractorRepo, imageStore, log)
	raffleService := service.NewRaffleService(projectRepo, contractorRepo, excel.NewGenerator(), pdf.NewGenerator())

	if err := validatorService.EnsureBootstrap(context.Background(), cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to provision admin account")
	}

	handler := httphandler.NewHandler(contractorService, validatorService, projectService, raffleService, log)
	authMiddleware := middleware.Auth(tokens)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting raffle service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
