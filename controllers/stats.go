package controllers

import (
	"net/http"

	game_constants "Filmy/constants/game"
	models "Filmy/models/postgres"
	gameservice "Filmy/services/game"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Returns aggregate statistics
// @Description Movie counts per difficulty tier, total games, and used/available movie counts
// @Tags stats
// @Produce json
// @Success 200 {object} object{total_movies=integer,easy_movies=integer,medium_movies=integer,hard_movies=integer,total_games=integer,used_movies=integer,available_movies=integer}
// @Failure 500 {object} object{error=string}
// @Router /api/stats [get]
func GetStats(db *gorm.DB, usedStore gameservice.UsedMovieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalMovies, easyMovies, mediumMovies, hardMovies, totalGames int64

		counts := []struct {
			dest       *int64
			difficulty game_constants.Difficulty
		}{
			{&easyMovies, game_constants.DifficultyEasy},
			{&mediumMovies, game_constants.DifficultyMedium},
			{&hardMovies, game_constants.DifficultyHard},
		}

		if err := db.Model(&models.Movie{}).Count(&totalMovies).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting movies"})
			return
		}
		for _, count := range counts {
			if err := db.Model(&models.Movie{}).Where("difficulty = ?", count.difficulty).Count(count.dest).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting movies"})
				return
			}
		}
		if err := db.Model(&models.Game{}).Count(&totalGames).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting games"})
			return
		}

		usedMovies, err := usedStore.CountUsedMovies()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting used movies"})
			return
		}

		available := totalMovies - usedMovies
		if available < 0 {
			available = 0
		}

		c.JSON(http.StatusOK, gin.H{
			"total_movies":     totalMovies,
			"easy_movies":      easyMovies,
			"medium_movies":    mediumMovies,
			"hard_movies":      hardMovies,
			"total_games":      totalGames,
			"used_movies":      usedMovies,
			"available_movies": available,
		})
	}
}
