package main

import (
	"Bloom/internal/api/config"
	"Bloom/internal/pkg/database"
	"Bloom/internal/pkg/es"
	"Bloom/internal/pkg/logger"
	"Bloom/internal/repository"
	"Bloom/internal/service"
	"context"
	log "log/slog"
	"time"
)

// 全量重建搜索索引的一次性工具, 供运维手动触发
func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}

	logger.InitLogger()

	dbCfg := config.Cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}

	if err = es.InitClient(); err != nil {
		log.Error("Fatal error: failed to initialize ElasticSearch", "err", err)
		panic(err)
	}

	searchSync := service.NewSearchSyncService(
		es.NewUserRepo(),
		es.NewPostRepo(),
		es.NewHashtagRepo(),
		repository.NewUserRepo(db),
		repository.NewPostRepo(db),
		repository.NewHashtagRepo(db),
	)

	start := time.Now()
	if err = searchSync.ReindexAll(context.Background()); err != nil {
		log.Error("Reindex failed", "err", err)
		panic(err)
	}
	log.Info("Reindex finished", "elapsed", time.Since(start).String())
}
