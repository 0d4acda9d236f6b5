// Package memory keeps recent batch reports in process memory.
package memory

import (
	"context"
	"time"

	"rollcall/config"
	"rollcall/internal/domain/entity"
	"rollcall/internal/domain/repository"
	"rollcall/internal/errors"

	"github.com/patrickmn/go-cache"
)

type reportRepository struct {
	reports *cache.Cache
}

// NewBatchReportRepository holds reports for the configured TTL. Older ones are rebuilt from the delivery log.
func NewBatchReportRepository(cfg *config.Config) repository.BatchReportRepository {
	ttl := time.Duration(0)
	if cfg.Reports != nil {
		ttl = cfg.Reports.TTL
	}
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	cleanup := 2 * ttl
	if ttl == cache.NoExpiration {
		cleanup = 0
	}

	return &reportRepository{
		reports: cache.New(ttl, cleanup),
	}
}

// SaveReport stores or replaces the report under its batch id.
func (repo *reportRepository) SaveReport(_ context.Context, report *entity.BatchReport) error {
	if report == nil || report.ID == "" {
		return errors.New("report must have a batch id")
	}

	repo.reports.SetDefault(report.ID, report)

	return nil
}

// FindReport returns repository.ErrReportNotFound for unknown or expired batches.
func (repo *reportRepository) FindReport(_ context.Context, batchID string) (*entity.BatchReport, error) {
	value, ok := repo.reports.Get(batchID)
	if !ok {
		return nil, repository.ErrReportNotFound
	}

	report, ok := value.(*entity.BatchReport)
	if !ok {
		return nil, errors.Errorf("unexpected report type %T", value)
	}

	return report, nil
}
