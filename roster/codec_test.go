package roster_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkorolko/castmatch/roster"
)

const rotationDoc = `{
  "roles": ["X", "Y", "Z"],
  "participants": {
    "P1": ["X", "Y", "Z"],
    "P2": ["Y", "Z", "X"],
    "P3": ["Z", "X", "Y"]
  }
}`

func TestDecodeJSON_BuildsRoster(t *testing.T) {
	r, err := roster.DecodeJSON(strings.NewReader(rotationDoc))
	require.NoError(t, err)
	require.Equal(t, 3, r.NumRoles())
	require.Equal(t, 3, r.NumParticipants())

	// Participants are inserted in sorted-name order, not map order.
	require.Equal(t, []string{"P1", "P2", "P3"}, r.Participants())

	rank, ok := r.Rank("P2", "Y")
	require.True(t, ok)
	require.Equal(t, 1, rank)
}

func TestDecodeJSON_MalformedJSON(t *testing.T) {
	_, err := roster.DecodeJSON(strings.NewReader(`{"roles": [`))
	require.ErrorIs(t, err, roster.ErrBadDocument)
}

func TestDecodeJSON_MissingRoles(t *testing.T) {
	_, err := roster.DecodeJSON(strings.NewReader(`{"participants": {"P1": ["X"]}}`))
	require.ErrorIs(t, err, roster.ErrBadDocument)
}

func TestDecodeJSON_MissingParticipants(t *testing.T) {
	_, err := roster.DecodeJSON(strings.NewReader(`{"roles": ["X"]}`))
	require.ErrorIs(t, err, roster.ErrBadDocument)
}

func TestDecodeJSON_ConstructionErrorsSurface(t *testing.T) {
	doc := `{
	  "roles": ["X", "Y"],
	  "participants": {"P1": ["X"]}
	}`
	_, err := roster.DecodeJSON(strings.NewReader(doc))
	require.ErrorIs(t, err, roster.ErrRankingSize)
}
