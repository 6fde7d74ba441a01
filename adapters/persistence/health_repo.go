package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tuanhng/me-api/pkg/logger"
)

var healthTables = []string{"profiles", "skills", "projects", "work_experiences", "links"}

type HealthRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewHealthRepo(db *pgxpool.Pool, logger logger.Logger) *HealthRepo {
	return &HealthRepo{db: db, logger: logger}
}

func (r *HealthRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// TableCounts returns per-table row counts. A table that cannot be counted
// reports -1 instead of failing the whole call.
func (r *HealthRepo) TableCounts(ctx context.Context) map[string]int64 {
	counts := make(map[string]int64, len(healthTables))
	for _, table := range healthTables {
		var n int64
		if err := r.db.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n); err != nil {
			r.logger.Warn("health count failed", zap.String("table", table), zap.Error(err))
			counts[table] = -1
			continue
		}
		counts[table] = n
	}
	return counts
}
