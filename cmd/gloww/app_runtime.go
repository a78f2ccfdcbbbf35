package main

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/gloww/internal/config"
	"github.com/terraincognita07/gloww/internal/content"
	"github.com/terraincognita07/gloww/internal/db"
	"github.com/terraincognita07/gloww/internal/logging"
	"github.com/terraincognita07/gloww/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type appRuntime struct {
	cfg      config.Config
	logger   *zap.Logger
	database *gorm.DB
	repos    *db.Repositories
	wellness *services.WellnessService
}

func openRuntime(cfg config.Config) (*appRuntime, error) {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(cfg.ContentPath)
	if err != nil {
		return nil, err
	}

	database, err := db.OpenSQLite(cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	repos := db.NewRepositories(database)

	wellness := services.NewWellnessService(
		repos.Profiles,
		repos.Periods,
		repos.SymptomEvents,
		repos.Conditions,
		repos.OrganHealth,
		catalog,
		cfg.RecentSymptomWindowDays,
	)

	return &appRuntime{
		cfg:      cfg,
		logger:   logger,
		database: database,
		repos:    repos,
		wellness: wellness,
	}, nil
}

func (rt *appRuntime) Close() {
	if sqlDB, err := rt.database.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rt.logger.Sync()
}

// loadCatalog returns the compiled-in catalog unless path names an override.
func loadCatalog(path string) (*content.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return content.Default(), nil
	}
	catalog, err := content.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content catalog %s: %w", path, err)
	}
	return catalog, nil
}
