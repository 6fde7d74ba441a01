package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTechnologies_RoundTrip(t *testing.T) {
	cases := [][]string{
		{},
		{"Go"},
		{"Python", "Flask", "MySQL"},
		{"C++", `with "quotes"`, "ümlaut"},
	}
	for _, techs := range cases {
		assert.Equal(t, techs, DecodeTechnologies(EncodeTechnologies(techs)))
	}
}

func TestDecodeTechnologies_MalformedOrAbsent(t *testing.T) {
	cases := []string{
		"",
		"not json",
		`{"a": 1}`,
		`["unterminated`,
		"null",
		`[1, 2, 3]`,
	}
	for _, raw := range cases {
		assert.Equal(t, []string{}, DecodeTechnologies(raw), "raw=%q", raw)
	}
}

func TestEncodeTechnologies_NilBecomesEmptyArray(t *testing.T) {
	assert.Equal(t, "[]", EncodeTechnologies(nil))
}

func TestRepresentation_MalformedTechnologiesDoesNotFail(t *testing.T) {
	github := "https://github.com/demo/x"
	p := Project{
		ID:           7,
		Title:        "X",
		Description:  "desc",
		Technologies: "{{{broken",
		GithubURL:    &github,
		CreatedAt:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	rep := p.Representation()

	assert.Equal(t, []string{}, rep.Technologies)
	assert.Equal(t, &github, rep.Links.Github)
	assert.Nil(t, rep.Links.Demo)
}

func TestRepresentations_EmptyInputYieldsEmptySlice(t *testing.T) {
	assert.NotNil(t, Representations(nil))
	assert.Len(t, Representations(nil), 0)
}
