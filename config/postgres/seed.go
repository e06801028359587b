package postgres

import (
	"fmt"
	"log"
	"strings"

	movie_constants "Filmy/constants/movies"
	models "Filmy/models/postgres"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedMoviesIfEmpty bulk-inserts the static catalogue on first start.
// It is a no-op once the table has rows, so restarts are idempotent.
func SeedMoviesIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Movie{}).Count(&count).Error; err != nil {
		return fmt.Errorf("error counting movies: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding movies database...")
	inserted, err := insertCatalogue(db)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d movies", inserted)
	return nil
}

// ReseedMovies wipes the catalogue and reinserts it from the static
// seed data. This is the only way movie rows are ever replaced.
func ReseedMovies(db *gorm.DB) (int, error) {
	if err := db.Where("1 = 1").Delete(&models.Movie{}).Error; err != nil {
		return 0, fmt.Errorf("error clearing movies: %w", err)
	}
	return insertCatalogue(db)
}

func insertCatalogue(db *gorm.DB) (int, error) {
	movies := make([]models.Movie, 0, len(movie_constants.Catalogue))
	for _, seed := range movie_constants.Catalogue {
		movie := models.Movie{
			ID:         uuid.NewString(),
			Title:      seed.Title,
			Year:       seed.Year,
			Hero:       seed.Hero,
			Heroine:    seed.Heroine,
			WordCount:  len(strings.Fields(seed.Title)),
			Difficulty: seed.Difficulty,
		}
		if seed.Genre != "" {
			genre := seed.Genre
			movie.Genre = &genre
		}
		movies = append(movies, movie)
	}

	if err := db.Create(&movies).Error; err != nil {
		return 0, fmt.Errorf("error inserting movies: %w", err)
	}
	return len(movies), nil
}
