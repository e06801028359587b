package postgres

import (
	"strings"
	"testing"

	game_constants "Filmy/constants/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameInitialState(t *testing.T) {
	g := NewGame(
		[]string{"Rajesh", "Priya"},
		[]string{"Amit"},
		GameSettings{TimerSeconds: 60, TotalRounds: 5, Difficulty: game_constants.DifficultyAll},
	)

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, game_constants.TeamAName, g.TeamA.Name)
	assert.Equal(t, game_constants.TeamBName, g.TeamB.Name)
	assert.Equal(t, game_constants.TeamA, g.CurrentTurn)
	assert.Equal(t, 1, g.CurrentRound)
	assert.Equal(t, game_constants.StatusActive, g.Status)
	assert.Nil(t, g.Winner)
	assert.Empty(t, g.UsedMovieIDs)

	require.Len(t, g.TeamA.Players, 2)
	require.Len(t, g.TeamB.Players, 1)
	assert.Equal(t, "Rajesh", g.TeamA.Players[0].Name)
	assert.Equal(t, "Priya", g.TeamA.Players[1].Name)
	assert.Zero(t, g.TeamA.Score)
	assert.Zero(t, g.TeamB.Score)
	assert.Zero(t, g.TeamA.ActingIndex)

	// Every player gets a fresh, distinct id.
	seen := map[string]bool{}
	for _, p := range append(g.TeamA.Players, g.TeamB.Players...) {
		assert.NotEmpty(t, p.ID)
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestGenerateShareCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := generateShareCode(game_constants.ShareCodeLength)
		assert.Len(t, code, game_constants.ShareCodeLength)
		for _, r := range code {
			assert.Contains(t, game_constants.ShareCodeCharset, string(r))
		}
		assert.Equal(t, strings.ToUpper(code), code)
	}
}

func TestNormalizeShareCode(t *testing.T) {
	assert.Equal(t, "AB12CD", NormalizeShareCode("ab12cd"))
	assert.Equal(t, "AB12CD", NormalizeShareCode("  Ab12Cd "))
	assert.Equal(t, "AB12CD", NormalizeShareCode("AB12CD"))
}

func TestActingPlayer(t *testing.T) {
	team := Team{
		Name: game_constants.TeamAName,
		Players: []Player{
			{ID: "p1", Name: "Rajesh"},
			{ID: "p2", Name: "Priya"},
		},
	}

	require.NotNil(t, team.ActingPlayer())
	assert.Equal(t, "Rajesh", team.ActingPlayer().Name)

	team.ActingIndex = 1
	assert.Equal(t, "Priya", team.ActingPlayer().Name)

	empty := Team{Name: game_constants.TeamBName}
	assert.Nil(t, empty.ActingPlayer())
}

func TestActiveTeam(t *testing.T) {
	g := NewGame([]string{"a"}, []string{"b"}, GameSettings{TotalRounds: 1})

	assert.Equal(t, &g.TeamA, g.ActiveTeam())
	g.CurrentTurn = game_constants.TeamB
	assert.Equal(t, &g.TeamB, g.ActiveTeam())
}
