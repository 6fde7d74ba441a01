package work

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepresentation_AbsentDatesAreNull(t *testing.T) {
	w := WorkExperience{
		ID:        1,
		Company:   "Tech Solutions Inc.",
		Position:  "Software Developer",
		IsCurrent: true,
	}

	raw, err := json.Marshal(w.Representation())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.Contains(t, m, "start_date")
	assert.Nil(t, m["start_date"])
	assert.Nil(t, m["end_date"])
	assert.Equal(t, true, m["is_current"])
}

func TestRepresentation_DateFormat(t *testing.T) {
	start := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	w := WorkExperience{Company: "X", Position: "Y", StartDate: &start}

	rep := w.Representation()

	require.NotNil(t, rep.StartDate)
	assert.Equal(t, "2023-06-01", *rep.StartDate)
	assert.Nil(t, rep.EndDate)
}
