package routes

import (
	"Filmy/controllers"
	gameservice "Filmy/services/game"
	"Filmy/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, usedStore gameservice.UsedMovieStore) {
	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/ping", controllers.Ping)

	// API routes group
	api := router.Group("/api")

	api.GET("/", controllers.Root)

	// Movie catalogue and the global used pool
	api.POST("/seed-movies", controllers.SeedMovies(db))
	api.GET("/movies", controllers.GetAllMovies(db))
	api.GET("/movies/random", controllers.GetRandomMovie(db, usedStore))
	api.POST("/movies/used/:movie_id", controllers.MarkMovieUsed(db, usedStore))
	api.DELETE("/movies/used", controllers.ResetUsedMovies(usedStore))

	// Game sessions
	api.POST("/games", controllers.CreateGame(db))
	api.GET("/games/code/:share_code", controllers.GetGameByCode(db))
	api.GET("/games/:game_id", controllers.GetGame(db))
	api.POST("/games/:game_id/join", controllers.JoinTeam(db))
	api.POST("/games/:game_id/turn", controllers.SubmitTurn(db))
	api.POST("/games/:game_id/add-used-movie", controllers.AddUsedMovie(db, usedStore))
	api.DELETE("/games/:game_id", controllers.DeleteGame(db))

	api.GET("/stats", controllers.GetStats(db, usedStore))
}
