package project

import (
	"context"
	"encoding/json"
	"time"
)

type Project struct {
	ID          int64
	ProfileID   int64
	Title       string
	Description string
	// Technologies holds the raw stored text, a JSON-encoded string array.
	Technologies string
	GithubURL    *string
	DemoURL      *string
	CreatedAt    time.Time
}

type Links struct {
	Github *string `json:"github"`
	Demo   *string `json:"demo"`
}

type Representation struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Links        Links     `json:"links"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *Project) Representation() Representation {
	return Representation{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: DecodeTechnologies(p.Technologies),
		Links:        Links{Github: p.GithubURL, Demo: p.DemoURL},
		CreatedAt:    p.CreatedAt,
	}
}

func Representations(items []Project) []Representation {
	reps := make([]Representation, len(items))
	for i := range items {
		reps[i] = items[i].Representation()
	}
	return reps
}

// DecodeTechnologies parses the stored technologies text. Malformed or absent
// text decodes to an empty slice, never an error.
func DecodeTechnologies(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var techs []string
	if err := json.Unmarshal([]byte(raw), &techs); err != nil || techs == nil {
		return []string{}
	}
	return techs
}

func EncodeTechnologies(techs []string) string {
	if techs == nil {
		techs = []string{}
	}
	// a string slice cannot fail to marshal
	b, _ := json.Marshal(techs)
	return string(b)
}

type Repository interface {
	// ListByProfile returns the profile's projects. A non-empty tag restricts
	// the result to projects whose technologies text contains the tag as a
	// quoted element.
	ListByProfile(ctx context.Context, profileID int64, tag string) ([]Project, error)
	Search(ctx context.Context, profileID int64, query string) ([]Project, error)
}
