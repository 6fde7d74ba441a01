package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanhng/me-api/internal/domain/project"
	"github.com/tuanhng/me-api/internal/domain/skill"
	"github.com/tuanhng/me-api/internal/domain/work"
	"github.com/tuanhng/me-api/pkg/apperror"
	"github.com/tuanhng/me-api/pkg/logger"
)

type stubSkillRepo struct{ items []skill.Skill }

func (s *stubSkillRepo) ListByProfile(ctx context.Context, profileID int64) ([]skill.Skill, error) {
	return s.items, nil
}

func (s *stubSkillRepo) SearchByName(ctx context.Context, profileID int64, query string) ([]skill.Skill, error) {
	return s.items, nil
}

type stubProjectRepo struct{ items []project.Project }

func (s *stubProjectRepo) ListByProfile(ctx context.Context, profileID int64, tag string) ([]project.Project, error) {
	return s.items, nil
}

func (s *stubProjectRepo) Search(ctx context.Context, profileID int64, query string) ([]project.Project, error) {
	return s.items, nil
}

type stubWorkRepo struct{ items []work.WorkExperience }

func (s *stubWorkRepo) ListByProfile(ctx context.Context, profileID int64) ([]work.WorkExperience, error) {
	return s.items, nil
}

func (s *stubWorkRepo) Search(ctx context.Context, profileID int64, query string) ([]work.WorkExperience, error) {
	return s.items, nil
}

func TestSearch_EmptyQueryIsClientError(t *testing.T) {
	uc := NewSearchUseCase(&stubSkillRepo{}, &stubProjectRepo{}, &stubWorkRepo{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), SearchInput{ProfileID: 1, Query: ""})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestSearch_AllThreeKeysAlwaysPresent(t *testing.T) {
	uc := NewSearchUseCase(
		&stubSkillRepo{items: []skill.Skill{{ID: 1, Name: "Java"}}},
		&stubProjectRepo{},
		&stubWorkRepo{},
		logger.NewNop(),
	)

	out, err := uc.Execute(context.Background(), SearchInput{ProfileID: 1, Query: "Java"})

	require.NoError(t, err)
	assert.Len(t, out.Skills, 1)
	assert.NotNil(t, out.Projects)
	assert.NotNil(t, out.Work)
}
