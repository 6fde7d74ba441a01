package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuanhng/me-api/internal/domain/project"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

const projectColumns = "id, profile_id, title, description, technologies, github_url, demo_url, created_at"

func scanProjects(rows pgx.Rows) ([]project.Project, error) {
	defer rows.Close()
	projects := make([]project.Project, 0)

	for rows.Next() {
		var p project.Project
		var technologies *string
		err := rows.Scan(
			&p.ID, &p.ProfileID, &p.Title, &p.Description,
			&technologies, &p.GithubURL, &p.DemoURL, &p.CreatedAt,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}
		if technologies != nil {
			p.Technologies = *technologies
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) list(ctx context.Context, builder sq.SelectBuilder) ([]project.Project, error) {
	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project query", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	return scanProjects(rows)
}

func (r *postgresProjectRepo) ListByProfile(ctx context.Context, profileID int64, tag string) ([]project.Project, error) {
	builder := psql.Select(projectColumns).
		From("projects").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("id")

	if tag != "" {
		// quoted-element match against the serialized technologies text,
		// so "Python" does not match a project tagged only "Pythonic"
		builder = builder.Where(sq.ILike{"technologies": likeQuotedElement(tag)})
	}
	return r.list(ctx, builder)
}

func (r *postgresProjectRepo) Search(ctx context.Context, profileID int64, query string) ([]project.Project, error) {
	pattern := likeContains(query)
	builder := psql.Select(projectColumns).
		From("projects").
		Where(sq.Eq{"profile_id": profileID}).
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
			// the raw technologies text on purpose, matching the stored
			// serialization rather than each decoded element
			sq.ILike{"technologies": pattern},
		}).
		OrderBy("id")
	return r.list(ctx, builder)
}
