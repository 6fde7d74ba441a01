package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuanhng/me-api/internal/domain/work"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type postgresWorkRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresWorkRepo(db *pgxpool.Pool, logger logger.Logger) work.Repository {
	return &postgresWorkRepo{db: db, logger: logger}
}

const workColumns = "id, profile_id, company, position, description, start_date, end_date, is_current"

func scanWorkExperiences(rows pgx.Rows) ([]work.WorkExperience, error) {
	defer rows.Close()
	experiences := make([]work.WorkExperience, 0)

	for rows.Next() {
		var w work.WorkExperience
		err := rows.Scan(
			&w.ID, &w.ProfileID, &w.Company, &w.Position,
			&w.Description, &w.StartDate, &w.EndDate, &w.IsCurrent,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan work experience row", err)
		}
		experiences = append(experiences, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work experience rows", err)
	}
	return experiences, nil
}

func (r *postgresWorkRepo) list(ctx context.Context, builder sq.SelectBuilder) ([]work.WorkExperience, error) {
	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build work experience query", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query work experiences", err)
	}
	return scanWorkExperiences(rows)
}

func (r *postgresWorkRepo) ListByProfile(ctx context.Context, profileID int64) ([]work.WorkExperience, error) {
	builder := psql.Select(workColumns).
		From("work_experiences").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("id")
	return r.list(ctx, builder)
}

func (r *postgresWorkRepo) Search(ctx context.Context, profileID int64, query string) ([]work.WorkExperience, error) {
	pattern := likeContains(query)
	builder := psql.Select(workColumns).
		From("work_experiences").
		Where(sq.Eq{"profile_id": profileID}).
		Where(sq.Or{
			sq.ILike{"company": pattern},
			sq.ILike{"position": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy("id")
	return r.list(ctx, builder)
}
