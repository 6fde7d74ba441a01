package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepresentation_DefaultsLevelToBeginner(t *testing.T) {
	s := Skill{ID: 3, Name: "Go"}

	assert.Equal(t, Representation{ID: 3, Name: "Go", Level: LevelBeginner}, s.Representation())
}
