package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/tuanhng/me-api/internal/domain/link"
	"github.com/tuanhng/me-api/internal/domain/profile"
	"github.com/tuanhng/me-api/internal/domain/project"
	"github.com/tuanhng/me-api/internal/domain/skill"
	"github.com/tuanhng/me-api/internal/domain/work"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type ProfileRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
	profileRepo profile.Repository
	skillRepo   skill.Repository
	projectRepo project.Repository
	workRepo    work.Repository
	linkRepo    link.Repository
}

func (s *ProfileRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewNop()
	s.profileRepo = NewPostgresProfileRepo(s.dbPool, s.testLogger)
	s.skillRepo = NewPostgresSkillRepo(s.dbPool, s.testLogger)
	s.projectRepo = NewPostgresProjectRepo(s.dbPool, s.testLogger)
	s.workRepo = NewPostgresWorkRepo(s.dbPool, s.testLogger)
	s.linkRepo = NewPostgresLinkRepo(s.dbPool, s.testLogger)
}

func (s *ProfileRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestProfileRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ProfileRepoIntegrationTestSuite))
}

func (s *ProfileRepoIntegrationTestSuite) seedProfile(email string, b profile.Bundle) *profile.Profile {
	b.Profile.Name = "Test User"
	b.Profile.Email = email
	created, err := s.profileRepo.CreateWithChildren(context.Background(), &b)
	s.Require().NoError(err)
	return created
}

func (s *ProfileRepoIntegrationTestSuite) Test_CreateWithChildren_And_FindByID() {
	ctx := context.Background()
	start, _ := time.Parse(work.DateLayout, "2023-06-01")

	created := s.seedProfile("create@example.com", profile.Bundle{
		Skills:   []skill.Skill{{Name: "Go", Level: skill.LevelAdvanced}, {Name: "SQL"}},
		Projects: []project.Project{{Title: "API", Technologies: `["Go","Postgres"]`}},
		Work:     []work.WorkExperience{{Company: "ACME", Position: "Dev", StartDate: &start, IsCurrent: true}},
		Links:    []link.Link{{Type: link.TypeGithub, URL: "https://github.com/me"}},
	})
	s.NotZero(created.ID)

	found, err := s.profileRepo.FindByID(ctx, created.ID)
	s.NoError(err)
	s.Equal("create@example.com", found.Email)

	skills, err := s.skillRepo.ListByProfile(ctx, created.ID)
	s.NoError(err)
	s.Len(skills, 2)
	s.Equal(skill.LevelBeginner, skills[1].Level, "unset level must be stored as beginner")

	projects, err := s.projectRepo.ListByProfile(ctx, created.ID, "")
	s.NoError(err)
	s.Len(projects, 1)

	workItems, err := s.workRepo.ListByProfile(ctx, created.ID)
	s.NoError(err)
	s.Require().Len(workItems, 1)
	s.True(workItems[0].IsCurrent)
	s.Nil(workItems[0].EndDate)

	links, err := s.linkRepo.ListByProfile(ctx, created.ID)
	s.NoError(err)
	s.Len(links, 1)
}

func (s *ProfileRepoIntegrationTestSuite) Test_DuplicateEmail_IsConflict() {
	s.seedProfile("dup@example.com", profile.Bundle{})

	_, err := s.profileRepo.CreateWithChildren(context.Background(), &profile.Bundle{
		Profile: profile.Profile{Name: "Other", Email: "dup@example.com"},
	})

	s.Error(err)
	s.ErrorIs(err, apperror.ErrConflict)
}

func (s *ProfileRepoIntegrationTestSuite) Test_FindByID_Absent_IsNotFound() {
	_, err := s.profileRepo.FindByID(context.Background(), 999999)

	s.Error(err)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ProfileRepoIntegrationTestSuite) Test_Update_PartialFields() {
	created := s.seedProfile("update@example.com", profile.Bundle{})

	name := "Renamed"
	updated, err := s.profileRepo.Update(context.Background(), created.ID, profile.Update{Name: &name})

	s.NoError(err)
	s.Equal("Renamed", updated.Name)
	s.Equal("update@example.com", updated.Email, "unset fields must keep their stored value")
	s.True(updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func (s *ProfileRepoIntegrationTestSuite) Test_Update_Absent_IsNotFound() {
	name := "Nobody"
	_, err := s.profileRepo.Update(context.Background(), 999999, profile.Update{Name: &name})

	s.Error(err)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ProfileRepoIntegrationTestSuite) Test_DeleteProfile_CascadesToChildren() {
	ctx := context.Background()
	created := s.seedProfile("cascade@example.com", profile.Bundle{
		Skills: []skill.Skill{{Name: "Go", Level: skill.LevelAdvanced}},
		Links:  []link.Link{{Type: link.TypeLinkedin, URL: "https://linkedin.com/in/me"}},
	})

	_, err := s.dbPool.Exec(ctx, "DELETE FROM profiles WHERE id = $1", created.ID)
	s.Require().NoError(err)

	skills, err := s.skillRepo.ListByProfile(ctx, created.ID)
	s.NoError(err)
	s.Len(skills, 0)

	links, err := s.linkRepo.ListByProfile(ctx, created.ID)
	s.NoError(err)
	s.Len(links, 0)
}

func (s *ProfileRepoIntegrationTestSuite) Test_ProjectTagFilter_MatchesWholeElementOnly() {
	ctx := context.Background()
	created := s.seedProfile("tags@example.com", profile.Bundle{
		Projects: []project.Project{
			{Title: "One", Technologies: `["Python","Flask"]`},
			{Title: "Two", Technologies: `["Pythonic"]`},
		},
	})

	projects, err := s.projectRepo.ListByProfile(ctx, created.ID, "Python")

	s.NoError(err)
	s.Require().Len(projects, 1)
	s.Equal("One", projects[0].Title)
}

func (s *ProfileRepoIntegrationTestSuite) Test_SkillSearch_IsCaseInsensitiveSubstring() {
	ctx := context.Background()
	created := s.seedProfile("search@example.com", profile.Bundle{
		Skills: []skill.Skill{
			{Name: "Java", Level: skill.LevelAdvanced},
			{Name: "JavaScript", Level: skill.LevelIntermediate},
			{Name: "Go", Level: skill.LevelAdvanced},
		},
	})

	matches, err := s.skillRepo.SearchByName(ctx, created.ID, "java")

	s.NoError(err)
	s.Len(matches, 2, "java must match both Java and JavaScript regardless of case")
}

func (s *ProfileRepoIntegrationTestSuite) Test_WorkSearch_CoversCompanyPositionDescription() {
	ctx := context.Background()
	start, _ := time.Parse(work.DateLayout, "2022-01-10")
	created := s.seedProfile("worksearch@example.com", profile.Bundle{
		Work: []work.WorkExperience{
			{Company: "Globex", Position: "Backend Engineer", Description: "Built billing pipelines", StartDate: &start},
			{Company: "Initech", Position: "SRE", Description: "On-call rotations", StartDate: &start},
		},
	})

	matches, err := s.workRepo.Search(ctx, created.ID, "billing")

	s.NoError(err)
	s.Require().Len(matches, 1)
	s.Equal("Globex", matches[0].Company)
}
