package game

import (
	"testing"

	game_constants "Filmy/constants/game"
	models "Filmy/models/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(totalRounds int) *models.Game {
	return models.NewGame(
		[]string{"Rajesh", "Priya"},
		[]string{"Amit", "Sunita"},
		models.GameSettings{
			TimerSeconds: 60,
			TotalRounds:  totalRounds,
			Difficulty:   game_constants.DifficultyAll,
		},
	)
}

func TestApplyTurnScoresAndAlternates(t *testing.T) {
	g := newTestGame(5)

	// Team A guesses correctly: only its score moves, round unchanged.
	require.NoError(t, ApplyTurn(g, true))
	assert.Equal(t, 1, g.TeamA.Score)
	assert.Equal(t, 0, g.TeamB.Score)
	assert.Equal(t, game_constants.TeamB, g.CurrentTurn)
	assert.Equal(t, 1, g.CurrentRound)

	// Team B misses: no score, turn back to A, round advances.
	require.NoError(t, ApplyTurn(g, false))
	assert.Equal(t, 1, g.TeamA.Score)
	assert.Equal(t, 0, g.TeamB.Score)
	assert.Equal(t, game_constants.TeamA, g.CurrentTurn)
	assert.Equal(t, 2, g.CurrentRound)
}

func TestApplyTurnActingRotation(t *testing.T) {
	g := newTestGame(10)

	// With two players per team the acting index alternates 0,1,0,1.
	require.NoError(t, ApplyTurn(g, false)) // team A acts
	assert.Equal(t, 1, g.TeamA.ActingIndex)
	require.NoError(t, ApplyTurn(g, false)) // team B acts
	assert.Equal(t, 1, g.TeamB.ActingIndex)
	require.NoError(t, ApplyTurn(g, false))
	assert.Equal(t, 0, g.TeamA.ActingIndex)
	require.NoError(t, ApplyTurn(g, false))
	assert.Equal(t, 0, g.TeamB.ActingIndex)
}

func TestApplyTurnRotationAdvancesOnMiss(t *testing.T) {
	g := newTestGame(10)

	require.NoError(t, ApplyTurn(g, false))
	// The actor rotates even when nobody guessed the movie.
	assert.Equal(t, 1, g.TeamA.ActingIndex)
	assert.Equal(t, 0, g.TeamA.Score)
}

func TestApplyTurnFullGameAlternation(t *testing.T) {
	totalRounds := 4
	g := newTestGame(totalRounds)

	expectedTurn := game_constants.TeamA
	for i := 0; i < totalRounds*2; i++ {
		assert.Equal(t, expectedTurn, g.CurrentTurn)
		assert.Equal(t, i/2+1, g.CurrentRound)
		require.NoError(t, ApplyTurn(g, i%2 == 0))
		if expectedTurn == game_constants.TeamA {
			expectedTurn = game_constants.TeamB
		} else {
			expectedTurn = game_constants.TeamA
		}
	}

	assert.Equal(t, game_constants.StatusCompleted, g.Status)
	assert.Equal(t, totalRounds+1, g.CurrentRound)
	require.NotNil(t, g.Winner)
}

func TestApplyTurnCompletionAndWinner(t *testing.T) {
	tests := []struct {
		name           string
		teamACorrect   bool
		teamBCorrect   bool
		expectedWinner string
	}{
		{"team A wins", true, false, game_constants.TeamAName},
		{"team B wins", false, true, game_constants.TeamBName},
		{"draw", true, true, game_constants.WinnerDraw},
		{"scoreless draw", false, false, game_constants.WinnerDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(1)

			require.NoError(t, ApplyTurn(g, tt.teamACorrect))
			assert.Equal(t, game_constants.StatusActive, g.Status)
			assert.Nil(t, g.Winner)

			require.NoError(t, ApplyTurn(g, tt.teamBCorrect))
			assert.Equal(t, game_constants.StatusCompleted, g.Status)
			require.NotNil(t, g.Winner)
			assert.Equal(t, tt.expectedWinner, *g.Winner)
		})
	}
}

func TestApplyTurnInvariants(t *testing.T) {
	g := newTestGame(3)

	for g.Status == game_constants.StatusActive {
		require.NoError(t, ApplyTurn(g, true))

		completed := g.CurrentRound > g.Settings.TotalRounds
		assert.Equal(t, completed, g.Status == game_constants.StatusCompleted)
		assert.Equal(t, completed, g.Winner != nil)
		assert.Less(t, g.TeamA.ActingIndex, len(g.TeamA.Players))
		assert.Less(t, g.TeamB.ActingIndex, len(g.TeamB.Players))
	}
}

func TestApplyTurnRejectsCompletedGame(t *testing.T) {
	g := newTestGame(1)
	require.NoError(t, ApplyTurn(g, true))
	require.NoError(t, ApplyTurn(g, false))
	require.Equal(t, game_constants.StatusCompleted, g.Status)

	scoreBefore := g.TeamA.Score
	err := ApplyTurn(g, true)
	assert.ErrorIs(t, err, ErrGameCompleted)
	assert.Equal(t, scoreBefore, g.TeamA.Score)
	assert.Equal(t, g.Settings.TotalRounds+1, g.CurrentRound)
}

func TestApplyTurnRejectsEmptyTeam(t *testing.T) {
	g := newTestGame(5)
	g.TeamA.Players = nil

	err := ApplyTurn(g, true)
	assert.ErrorIs(t, err, ErrEmptyTeam)
	assert.Equal(t, 0, g.TeamA.Score)
	assert.Equal(t, game_constants.TeamA, g.CurrentTurn)
	assert.Equal(t, 1, g.CurrentRound)
}
