package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalMap_NoLinks(t *testing.T) {
	m := CanonicalMap(nil)

	assert.Equal(t, map[string]string{
		"github":    "",
		"linkedin":  "",
		"portfolio": "",
	}, m)
}

func TestCanonicalMap_FirstOfTypeWins(t *testing.T) {
	m := CanonicalMap([]Link{
		{Type: TypeGithub, URL: "https://github.com/first"},
		{Type: TypeGithub, URL: "https://github.com/second"},
		{Type: TypeLinkedin, URL: "https://linkedin.com/in/me"},
	})

	assert.Equal(t, "https://github.com/first", m[TypeGithub])
	assert.Equal(t, "https://linkedin.com/in/me", m[TypeLinkedin])
	assert.Equal(t, "", m[TypePortfolio])
}

func TestCanonicalMap_UnknownTypesKept(t *testing.T) {
	m := CanonicalMap([]Link{
		{Type: "mastodon", URL: "https://hachyderm.io/@me"},
	})

	assert.Equal(t, "https://hachyderm.io/@me", m["mastodon"])
	// well-known keys stay present
	assert.Contains(t, m, TypeGithub)
	assert.Contains(t, m, TypeLinkedin)
	assert.Contains(t, m, TypePortfolio)
}
