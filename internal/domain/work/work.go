package work

import (
	"context"
	"time"
)

const DateLayout = "2006-01-02"

type WorkExperience struct {
	ID          int64
	ProfileID   int64
	Company     string
	Position    string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	IsCurrent   bool
}

type Representation struct {
	ID          int64   `json:"id"`
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Description string  `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	IsCurrent   bool    `json:"is_current"`
}

func (w *WorkExperience) Representation() Representation {
	return Representation{
		ID:          w.ID,
		Company:     w.Company,
		Position:    w.Position,
		Description: w.Description,
		StartDate:   formatDate(w.StartDate),
		EndDate:     formatDate(w.EndDate),
		IsCurrent:   w.IsCurrent,
	}
}

// formatDate renders an absent date as nil so it serializes to JSON null,
// never an empty string.
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func Representations(items []WorkExperience) []Representation {
	reps := make([]Representation, len(items))
	for i := range items {
		reps[i] = items[i].Representation()
	}
	return reps
}

type Repository interface {
	ListByProfile(ctx context.Context, profileID int64) ([]WorkExperience, error)
	Search(ctx context.Context, profileID int64, query string) ([]WorkExperience, error)
}
