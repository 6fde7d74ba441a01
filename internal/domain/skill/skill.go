package skill

import "context"

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

type Skill struct {
	ID        int64
	ProfileID int64
	Name      string
	Level     string
}

type Representation struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

func (s *Skill) Representation() Representation {
	level := s.Level
	if level == "" {
		level = LevelBeginner
	}
	return Representation{ID: s.ID, Name: s.Name, Level: level}
}

func Representations(items []Skill) []Representation {
	reps := make([]Representation, len(items))
	for i := range items {
		reps[i] = items[i].Representation()
	}
	return reps
}

type Repository interface {
	ListByProfile(ctx context.Context, profileID int64) ([]Skill, error)
	SearchByName(ctx context.Context, profileID int64, query string) ([]Skill, error)
}
