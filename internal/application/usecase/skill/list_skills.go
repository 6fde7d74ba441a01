package skill

import (
	"context"
	"fmt"

	"github.com/tuanhng/me-api/internal/domain/skill"
)

type ListSkillsUseCase struct {
	skills skill.Repository
}

func NewListSkillsUseCase(repo skill.Repository) *ListSkillsUseCase {
	return &ListSkillsUseCase{skills: repo}
}

type ListSkillsInput struct {
	ProfileID int64
}

type ListSkillsOutput struct {
	Skills []skill.Representation
}

func (uc *ListSkillsUseCase) Execute(ctx context.Context, input ListSkillsInput) (*ListSkillsOutput, error) {
	items, err := uc.skills.ListByProfile(ctx, input.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("list skills failed: %w", err)
	}
	return &ListSkillsOutput{Skills: skill.Representations(items)}, nil
}
