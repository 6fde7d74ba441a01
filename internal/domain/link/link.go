package link

import "context"

const (
	TypeGithub    = "github"
	TypeLinkedin  = "linkedin"
	TypePortfolio = "portfolio"
)

type Link struct {
	ID        int64
	ProfileID int64
	Type      string
	URL       string
}

// CanonicalMap collapses a profile's links into the canonical projection:
// the three well-known types are always present (empty string when absent),
// any other observed type is kept as an extra entry. The first link of a
// given type wins.
func CanonicalMap(links []Link) map[string]string {
	m := map[string]string{
		TypeGithub:    "",
		TypeLinkedin:  "",
		TypePortfolio: "",
	}
	for _, l := range links {
		if existing, ok := m[l.Type]; ok && existing != "" {
			continue
		}
		m[l.Type] = l.URL
	}
	return m
}

type Repository interface {
	ListByProfile(ctx context.Context, profileID int64) ([]Link, error)
}
