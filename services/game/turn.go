package game

import (
	"errors"

	game_constants "Filmy/constants/game"
	models "Filmy/models/postgres"
)

var (
	// ErrGameCompleted is returned when a turn is submitted for a game
	// that already finished. Completed is terminal.
	ErrGameCompleted = errors.New("game is already completed")
	// ErrEmptyTeam is returned when the acting team has no players, so
	// there is nobody to rotate to.
	ErrEmptyTeam = errors.New("team has no players")
)

/*
 * ApplyTurn advances a game by one turn. It only mutates the game in
 * memory; persisting the result is the caller's job.
 *
 * One turn means: score the active team if the guess was correct,
 * rotate that team's acting player, then hand the turn to the other
 * team. A full round is one turn per team, so the round counter only
 * moves when team B hands back to team A. Once the round counter
 * passes the configured total the game completes and the winner is
 * fixed by strict score comparison, tie meaning a draw.
 */
func ApplyTurn(g *models.Game, correct bool) error {
	if g.Status != game_constants.StatusActive {
		return ErrGameCompleted
	}

	active := g.ActiveTeam()
	if len(active.Players) == 0 {
		return ErrEmptyTeam
	}

	if correct {
		active.Score++
	}

	// The acting player rotates whether or not the team scored.
	active.ActingIndex = (active.ActingIndex + 1) % len(active.Players)

	if g.CurrentTurn == game_constants.TeamA {
		g.CurrentTurn = game_constants.TeamB
	} else {
		g.CurrentTurn = game_constants.TeamA
		g.CurrentRound++
	}

	if g.CurrentRound > g.Settings.TotalRounds {
		g.Status = game_constants.StatusCompleted
		winner := game_constants.WinnerDraw
		if g.TeamA.Score > g.TeamB.Score {
			winner = game_constants.TeamAName
		} else if g.TeamB.Score > g.TeamA.Score {
			winner = game_constants.TeamBName
		}
		g.Winner = &winner
	}

	return nil
}
