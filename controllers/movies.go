package controllers

import (
	"net/http"
	"strings"

	pgconfig "Filmy/config/postgres"
	game_constants "Filmy/constants/game"
	models "Filmy/models/postgres"
	gameservice "Filmy/services/game"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Lists the movie catalogue
// @Description Returns all movies, optionally filtered by difficulty (easy, medium, hard, all)
// @Tags movies
// @Produce json
// @Param difficulty query string false "Difficulty filter"
// @Success 200 {array} postgres.Movie
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/movies [get]
func GetAllMovies(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		difficulty, err := game_constants.ParseDifficultyFilter(c.Query("difficulty"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var movies []models.Movie
		query := db.Model(&models.Movie{})
		if difficulty != game_constants.DifficultyAll {
			query = query.Where("difficulty = ?", difficulty)
		}
		if err := query.Find(&movies).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing movies"})
			return
		}

		c.JSON(http.StatusOK, movies)
	}
}

// @Summary Picks a random eligible movie
// @Description Returns a uniform-random movie matching the difficulty filter, skipping globally used ids and any ids in exclude_ids. Resets the global used pool once if it is exhausted.
// @Tags movies
// @Produce json
// @Param difficulty query string false "Difficulty filter"
// @Param exclude_ids query string false "Comma-separated movie ids to skip"
// @Success 200 {object} postgres.Movie
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/movies/random [get]
func GetRandomMovie(db *gorm.DB, usedStore gameservice.UsedMovieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		difficulty, err := game_constants.ParseDifficultyFilter(c.Query("difficulty"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var excludeIDs []string
		if raw := c.Query("exclude_ids"); raw != "" {
			excludeIDs = strings.Split(raw, ",")
		}

		movie, err := gameservice.SelectRandomMovie(db, usedStore, difficulty, excludeIDs)
		if err != nil {
			if err == gameservice.ErrNoMoviesAvailable {
				c.JSON(http.StatusNotFound, gin.H{"error": "No movies available"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error selecting movie"})
			}
			return
		}

		c.JSON(http.StatusOK, movie)
	}
}

// @Summary Marks a movie as globally used
// @Description Adds the movie id to the global used set, removing it from the random pool until the pool resets
// @Tags movies
// @Produce json
// @Param movie_id path string true "Movie id"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/movies/used/{movie_id} [post]
func MarkMovieUsed(db *gorm.DB, usedStore gameservice.UsedMovieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		movieID := c.Param("movie_id")

		var movie models.Movie
		if err := db.Where("id = ?", movieID).First(&movie).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error looking up movie"})
			}
			return
		}

		if err := usedStore.MarkMovieUsed(movieID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error marking movie as used"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Movie marked as used"})
	}
}

// @Summary Resets the global used-movies pool
// @Description Clears the global used set so every catalogue entry becomes eligible again
// @Tags movies
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 500 {object} object{error=string}
// @Router /api/movies/used [delete]
func ResetUsedMovies(usedStore gameservice.UsedMovieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := usedStore.ResetUsedMovies(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resetting used movies"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Used movies reset"})
	}
}

// @Summary Re-seeds the movie catalogue
// @Description Deletes every movie and reinserts the static catalogue, recomputing word counts
// @Tags movies
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 500 {object} object{error=string}
// @Router /api/seed-movies [post]
func SeedMovies(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := pgconfig.ReseedMovies(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error seeding movies"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Successfully seeded movies", "count": count})
	}
}
