package job

import (
	"Bloom/internal/service"
	"context"
	log "log/slog"
	"time"
)

// ReindexJob 每日对账：全量重扫主库, 补齐搜索索引里漏掉或滞后的文档
type ReindexJob struct {
	searchSync service.SearchSyncService
}

func NewReindexJob(searchSync service.SearchSyncService) *ReindexJob {
	return &ReindexJob{searchSync: searchSync}
}

func (s *ReindexJob) Run() {
	ctx := context.Background()
	log.Info("start search reindex job")

	start := time.Now()
	if err := s.searchSync.ReindexAll(ctx); err != nil {
		log.Error("search reindex job failed", "err", err)
		return
	}

	log.Info("search reindex job finished", "elapsed", time.Since(start))
}
