package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuanhng/me-api/internal/domain/skill"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

const skillColumns = "id, profile_id, name, level"

func scanSkills(rows pgx.Rows) ([]skill.Skill, error) {
	defer rows.Close()
	skills := make([]skill.Skill, 0)

	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Level); err != nil {
			return nil, apperror.NewInternal("failed to scan skill row", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return skills, nil
}

func (r *postgresSkillRepo) list(ctx context.Context, builder sq.SelectBuilder) ([]skill.Skill, error) {
	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skill query", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	return scanSkills(rows)
}

func (r *postgresSkillRepo) ListByProfile(ctx context.Context, profileID int64) ([]skill.Skill, error) {
	builder := psql.Select(skillColumns).
		From("skills").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("id")
	return r.list(ctx, builder)
}

func (r *postgresSkillRepo) SearchByName(ctx context.Context, profileID int64, query string) ([]skill.Skill, error) {
	builder := psql.Select(skillColumns).
		From("skills").
		Where(sq.Eq{"profile_id": profileID}).
		Where(sq.ILike{"name": likeContains(query)}).
		OrderBy("id")
	return r.list(ctx, builder)
}
