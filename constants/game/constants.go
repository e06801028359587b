package game_constants

import "fmt"

// Difficulty classifies how hard a movie title is to act out.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	// DifficultyAll is only valid as a filter, never stored on a movie.
	DifficultyAll Difficulty = "all"
)

// ParseDifficulty validates a stored movie difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("invalid difficulty %q", s)
}

// ParseDifficultyFilter additionally accepts "all" and the empty
// string (both mean no filter).
func ParseDifficultyFilter(s string) (Difficulty, error) {
	if s == "" {
		return DifficultyAll, nil
	}
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyAll:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("invalid difficulty filter %q", s)
}

// TeamID selects one of the two fixed teams of a game.
type TeamID string

const (
	TeamA TeamID = "team_a"
	TeamB TeamID = "team_b"
)

func ParseTeamID(s string) (TeamID, error) {
	switch TeamID(s) {
	case TeamA, TeamB:
		return TeamID(s), nil
	}
	return "", fmt.Errorf("invalid team %q", s)
}

// Display names, also used as the winner value of a finished game.
const (
	TeamAName = "Team A"
	TeamBName = "Team B"
	// WinnerDraw is the winner value when both teams tie.
	WinnerDraw = "Draw"
)

// GameStatus is monotonic: active -> completed, never back.
type GameStatus string

const (
	StatusActive    GameStatus = "active"
	StatusCompleted GameStatus = "completed"
)

// Default game settings, matching the values a client gets when it
// creates a game without overriding anything.
const (
	DefaultTimerSeconds = 60
	DefaultTotalRounds  = 10
)

// Share code generation. Uppercase only so lookups can normalize
// case-insensitively.
const (
	ShareCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	ShareCodeLength  = 6
)

// MaxTurnWriteRetries bounds the optimistic-lock retry loop on game
// updates (turn submission, team join, used-movie append).
const MaxTurnWriteRetries = 3
