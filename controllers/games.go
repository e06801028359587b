package controllers

import (
	"net/http"

	game_constants "Filmy/constants/game"
	models "Filmy/models/postgres"
	gameservice "Filmy/services/game"
	"Filmy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateGameRequest carries the rosters and settings of a new game.
// Zero timer/rounds fall back to the defaults, matching a client that
// omits them.
type CreateGameRequest struct {
	TeamAPlayers []string `json:"team_a_players"`
	TeamBPlayers []string `json:"team_b_players"`
	TimerSeconds int      `json:"timer_seconds"`
	TotalRounds  int      `json:"total_rounds"`
	Difficulty   string   `json:"difficulty"`
}

type JoinTeamRequest struct {
	Team       string `json:"team"`
	PlayerName string `json:"player_name"`
}

type TurnResultRequest struct {
	Correct *bool `json:"correct"`
}

// @Summary Creates a new game
// @Description Builds a game from two ordered rosters and settings; both teams start at score 0 with team A acting first
// @Tags games
// @Accept json
// @Produce json
// @Param request body controllers.CreateGameRequest true "Rosters and settings"
// @Success 200 {object} postgres.Game
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/games [post]
func CreateGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// A game with an empty roster has nobody to rotate to, so it
		// is rejected up front.
		if len(req.TeamAPlayers) == 0 || len(req.TeamBPlayers) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Both teams need at least one player"})
			return
		}

		if req.TimerSeconds == 0 {
			req.TimerSeconds = game_constants.DefaultTimerSeconds
		}
		if req.TotalRounds == 0 {
			req.TotalRounds = game_constants.DefaultTotalRounds
		}
		if req.TimerSeconds < 0 || req.TotalRounds < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Timer and rounds must be positive"})
			return
		}

		difficulty, err := game_constants.ParseDifficultyFilter(req.Difficulty)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		game := models.NewGame(req.TeamAPlayers, req.TeamBPlayers, models.GameSettings{
			TimerSeconds: req.TimerSeconds,
			TotalRounds:  req.TotalRounds,
			Difficulty:   difficulty,
		})

		if err := db.Create(game).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating game"})
			return
		}

		c.JSON(http.StatusOK, game)
	}
}

// @Summary Fetches a game by id
// @Tags games
// @Produce json
// @Param game_id path string true "Game id"
// @Success 200 {object} postgres.Game
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/games/{game_id} [get]
func GetGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		game, err := utils.CheckGameExists(db, c.Param("game_id"))
		if err != nil {
			if err == utils.ErrGameNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching game"})
			}
			return
		}

		c.JSON(http.StatusOK, game)
	}
}

// @Summary Fetches a game by share code
// @Description Share codes are case-insensitive; the lookup normalizes to uppercase
// @Tags games
// @Produce json
// @Param share_code path string true "Share code"
// @Success 200 {object} postgres.Game
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/games/code/{share_code} [get]
func GetGameByCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		game, err := utils.CheckGameExistsByCode(db, c.Param("share_code"))
		if err != nil {
			if err == utils.ErrGameNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching game"})
			}
			return
		}

		c.JSON(http.StatusOK, game)
	}
}

// @Summary Joins a player to a team
// @Description Appends a new player to the chosen team's roster; the acting rotation is unaffected
// @Tags games
// @Accept json
// @Produce json
// @Param game_id path string true "Game id"
// @Param request body controllers.JoinTeamRequest true "Team selector and player name"
// @Success 200 {object} postgres.Game
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/games/{game_id}/join [post]
func JoinTeam(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinTeamRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// The team selector is validated before touching the store, so
		// a bad selector never mutates either roster.
		teamID, err := game_constants.ParseTeamID(req.Team)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Player name is required"})
			return
		}

		game, ok := mutateGame(c, db, c.Param("game_id"), func(g *models.Game) error {
			player := models.Player{ID: uuid.NewString(), Name: req.PlayerName}
			if teamID == game_constants.TeamA {
				g.TeamA.Players = append(g.TeamA.Players, player)
			} else {
				g.TeamB.Players = append(g.TeamB.Players, player)
			}
			return nil
		})
		if !ok {
			return
		}

		c.JSON(http.StatusOK, game)
	}
}

// @Summary Submits a turn outcome
// @Description Applies one turn (score, acting rotation, turn swap, round advance, completion check) and returns the updated game
// @Tags games
// @Accept json
// @Produce json
// @Param game_id path string true "Game id"
// @Param request body controllers.TurnResultRequest true "Whether the movie was guessed correctly"
// @Success 200 {object} postgres.Game
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/games/{game_id}/turn [post]
func SubmitTurn(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TurnResultRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Correct == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		game, ok := mutateGame(c, db, c.Param("game_id"), func(g *models.Game) error {
			return gameservice.ApplyTurn(g, *req.Correct)
		})
		if !ok {
			return
		}

		c.JSON(http.StatusOK, game)
	}
}

// @Summary Records a movie as used for a game
// @Description Appends the movie id to the game's used list and marks it globally used. The global mark only happens if the game exists.
// @Tags games
// @Produce json
// @Param game_id path string true "Game id"
// @Param movie_id query string true "Movie id"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/games/{game_id}/add-used-movie [post]
func AddUsedMovie(db *gorm.DB, usedStore gameservice.UsedMovieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID := c.Query("movie_id")
		if movieID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "movie_id is required"})
			return
		}

		_, ok := mutateGame(c, db, c.Param("game_id"), func(g *models.Game) error {
			g.UsedMovieIDs = append(g.UsedMovieIDs, movieID)
			return nil
		})
		if !ok {
			return
		}

		if err := usedStore.MarkMovieUsed(movieID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error marking movie as used"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Movie added to used list"})
	}
}

// @Summary Deletes a game
// @Description Removes the game and its embedded teams and players. The catalogue and the global used set are untouched.
// @Tags games
// @Produce json
// @Param game_id path string true "Game id"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/games/{game_id} [delete]
func DeleteGame(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("game_id")).Delete(&models.Game{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting game"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
	}
}

/*
 * mutateGame runs a read-modify-write on one game under optimistic
 * locking: the write only lands if the row still carries the version
 * that was read, otherwise the whole cycle retries. This keeps turn
 * application linearizable per game id even with concurrent writers.
 *
 * On failure it writes the HTTP error response itself and returns
 * ok=false; callers only render the success case.
 */
func mutateGame(c *gin.Context, db *gorm.DB, gameID string, mutate func(*models.Game) error) (*models.Game, bool) {
	for attempt := 0; attempt < game_constants.MaxTurnWriteRetries; attempt++ {
		game, err := utils.CheckGameExists(db, gameID)
		if err != nil {
			if err == utils.ErrGameNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching game"})
			}
			return nil, false
		}

		if err := mutate(game); err != nil {
			switch err {
			case gameservice.ErrGameCompleted:
				c.JSON(http.StatusConflict, gin.H{"error": "Game is already completed"})
			case gameservice.ErrEmptyTeam:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Active team has no players"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return nil, false
		}

		applied, err := updateGameVersioned(db, game)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating game"})
			return nil, false
		}
		if applied {
			return game, true
		}
		// Lost the race against another writer, reload and retry.
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Game is being updated concurrently, try again"})
	return nil, false
}

// updateGameVersioned writes the mutated game back, guarded by the
// version read before mutation. Returns false when another writer got
// there first.
func updateGameVersioned(db *gorm.DB, g *models.Game) (bool, error) {
	prev := g.Version
	g.Version = prev + 1

	result := db.Model(&models.Game{}).
		Where("id = ? AND version = ?", g.ID, prev).
		Select("TeamA", "TeamB", "CurrentTurn", "CurrentRound", "UsedMovieIDs", "Status", "Winner", "Version").
		Updates(g)
	if result.Error != nil {
		g.Version = prev
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		g.Version = prev
		return false, nil
	}
	return true, nil
}
