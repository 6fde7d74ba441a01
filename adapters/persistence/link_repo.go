package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuanhng/me-api/internal/domain/link"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type postgresLinkRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresLinkRepo(db *pgxpool.Pool, logger logger.Logger) link.Repository {
	return &postgresLinkRepo{db: db, logger: logger}
}

func (r *postgresLinkRepo) ListByProfile(ctx context.Context, profileID int64) ([]link.Link, error) {
	builder := psql.Select("id, profile_id, link_type, url").
		From("links").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("id")

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build link query", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query links", err)
	}
	defer rows.Close()

	links := make([]link.Link, 0)
	for rows.Next() {
		var l link.Link
		if err := rows.Scan(&l.ID, &l.ProfileID, &l.Type, &l.URL); err != nil {
			return nil, apperror.NewInternal("failed to scan link row", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating link rows", err)
	}
	return links, nil
}
