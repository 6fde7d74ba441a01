package persistence

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuanhng/me-api/internal/config"
	"github.com/tuanhng/me-api/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func NewPostgresPool(cfg config.Config, log logger.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("cannot create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	log.Info("Connect PostgreSQL successfully.")
	return pool, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeContains builds a substring ILIKE pattern with user input escaped.
func likeContains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// likeQuotedElement matches s only as a quoted element of the stored
// technologies JSON text, e.g. "Python" but not "Pythonic".
func likeQuotedElement(s string) string {
	return `%"` + likeEscaper.Replace(s) + `"%`
}
