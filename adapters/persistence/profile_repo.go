package persistence

import (
	"context"
	"errors"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tuanhng/me-api/internal/domain/profile"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

const profileColumns = "id, name, email, education, created_at, updated_at"

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Education, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) FindByID(ctx context.Context, id int64) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", strconv.FormatInt(id, 10))
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

// CreateWithChildren inserts the profile and all of its children in one
// transaction. Any failure rolls the whole bundle back.
func (r *postgresProfileRepo) CreateWithChildren(ctx context.Context, b *profile.Bundle) (*profile.Profile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	insertProfile := `
		INSERT INTO profiles (name, email, education)
		VALUES ($1, $2, $3)
		RETURNING ` + profileColumns

	p, err := scanProfile(tx.QueryRow(ctx, insertProfile, b.Profile.Name, b.Profile.Email, b.Profile.Education))
	if err != nil {
		return nil, mapProfileWriteError(err, b.Profile.Email)
	}

	for _, s := range b.Skills {
		level := s.Level
		if level == "" {
			level = "beginner"
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO skills (profile_id, name, level) VALUES ($1, $2, $3)`,
			p.ID, s.Name, level,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to insert skill", err)
		}
	}

	for _, pr := range b.Projects {
		_, err = tx.Exec(ctx,
			`INSERT INTO projects (profile_id, title, description, technologies, github_url, demo_url)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, pr.Title, pr.Description, pr.Technologies, pr.GithubURL, pr.DemoURL,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to insert project", err)
		}
	}

	for _, w := range b.Work {
		_, err = tx.Exec(ctx,
			`INSERT INTO work_experiences (profile_id, company, position, description, start_date, end_date, is_current)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.ID, w.Company, w.Position, w.Description, w.StartDate, w.EndDate, w.IsCurrent,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to insert work experience", err)
		}
	}

	for _, l := range b.Links {
		_, err = tx.Exec(ctx,
			`INSERT INTO links (profile_id, link_type, url) VALUES ($1, $2, $3)`,
			p.ID, l.Type, l.URL,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to insert link", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewInternal("failed to commit profile bundle", err)
	}
	return p, nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, id int64, upd profile.Update) (*profile.Profile, error) {
	builder := psql.Update("profiles").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + profileColumns)

	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.Email != nil {
		builder = builder.Set("email", *upd.Email)
	}
	if upd.Education != nil {
		builder = builder.Set("education", *upd.Education)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile update query", err)
	}

	p, err := scanProfile(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", strconv.FormatInt(id, 10))
		}
		email := ""
		if upd.Email != nil {
			email = *upd.Email
		}
		return nil, mapProfileWriteError(err, email)
	}
	return p, nil
}

func mapProfileWriteError(err error, email string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperror.NewConflict("profile", "email", email)
	}
	return apperror.NewInternal("failed to write profile", err)
}
