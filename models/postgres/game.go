package postgres

import (
	"math/rand"
	"strings"
	"time"

	game_constants "Filmy/constants/game"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Player is one participant on a team. Players only exist embedded in
// a Game's team roster, so they carry no table of their own.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

/*
 * 'Team' is one side of a game. The player order matters: it fixes the
 * acting rotation, and ActingIndex points at whose turn it is to act.
 * Teams live as JSONB columns on the game row, mirroring the
 * document shape the frontend consumes.
 */
type Team struct {
	Name        string   `json:"name"`
	Players     []Player `json:"players"`
	Score       int      `json:"score"`
	ActingIndex int      `json:"acting_index"`
}

// ActingPlayer returns the player whose turn it is to act, or nil for
// an empty roster.
func (t *Team) ActingPlayer() *Player {
	if len(t.Players) == 0 {
		return nil
	}
	return &t.Players[t.ActingIndex%len(t.Players)]
}

// GameSettings are fixed once the game is created.
type GameSettings struct {
	TimerSeconds int                       `gorm:"not null" json:"timer_seconds"`
	TotalRounds  int                       `gorm:"not null" json:"total_rounds"`
	Difficulty   game_constants.Difficulty `gorm:"size:10;not null" json:"difficulty"`
}

/*
 * 'Game' is one play session: two teams, settings, turn/round pointers
 * and the terminal outcome. Version backs the optimistic locking used
 * by turn submission, team joins and used-movie appends, so concurrent
 * writers to the same game cannot silently overwrite each other.
 */
type Game struct {
	ID           string                      `gorm:"primaryKey;size:36;not null" json:"id"`
	ShareCode    string                      `gorm:"uniqueIndex:idx_games_share_code;size:10;not null" json:"share_code"`
	TeamA        Team                        `gorm:"type:jsonb;serializer:json" json:"team_a"`
	TeamB        Team                        `gorm:"type:jsonb;serializer:json" json:"team_b"`
	Settings     GameSettings                `gorm:"embedded;embeddedPrefix:settings_" json:"settings"`
	CurrentTurn  game_constants.TeamID       `gorm:"size:10;not null" json:"current_turn"`
	CurrentRound int                         `gorm:"not null;default:1" json:"current_round"`
	UsedMovieIDs datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"used_movie_ids"`
	Status       game_constants.GameStatus   `gorm:"size:10;not null;index:idx_games_status" json:"status"`
	Winner       *string                     `gorm:"size:10" json:"winner"`
	Version      int                         `gorm:"not null;default:1" json:"-"`
	CreatedAt    time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// ActiveTeam returns the team whose turn it currently is.
func (g *Game) ActiveTeam() *Team {
	if g.CurrentTurn == game_constants.TeamA {
		return &g.TeamA
	}
	return &g.TeamB
}

// NewGame builds a fresh session: both teams at score zero, acting
// index zero, team A to act first, round one.
func NewGame(teamAPlayers, teamBPlayers []string, settings GameSettings) *Game {
	return &Game{
		ID:           uuid.NewString(),
		TeamA:        newTeam(game_constants.TeamAName, teamAPlayers),
		TeamB:        newTeam(game_constants.TeamBName, teamBPlayers),
		Settings:     settings,
		CurrentTurn:  game_constants.TeamA,
		CurrentRound: 1,
		UsedMovieIDs: datatypes.JSONSlice[string]{},
		Status:       game_constants.StatusActive,
	}
}

func newTeam(name string, playerNames []string) Team {
	players := make([]Player, 0, len(playerNames))
	for _, n := range playerNames {
		players = append(players, Player{ID: uuid.NewString(), Name: n})
	}
	return Team{Name: name, Players: players}
}

// NormalizeShareCode uppercases a client-supplied code so lookups stay
// case-insensitive. Codes are stored uppercase.
func NormalizeShareCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func generateShareCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = game_constants.ShareCodeCharset[rand.Intn(len(game_constants.ShareCodeCharset))]
	}
	return string(b)
}

// Ensure the generated share code is truly unique before insert.
func (g *Game) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ShareCode != "" {
		return nil
	}
	for {
		newCode := generateShareCode(game_constants.ShareCodeLength)
		var existing Game
		if err := tx.Where("share_code = ?", newCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				g.ShareCode = newCode
				return nil
			}
			return err
		}
		// Otherwise, loop again to generate a new unique code
	}
}
