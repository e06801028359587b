package game

import (
	"errors"
	"math/rand"

	game_constants "Filmy/constants/game"
	models "Filmy/models/postgres"

	"gorm.io/gorm"
)

// ErrNoMoviesAvailable is returned when no catalogue entry matches the
// filter even after the global used set has been cleared.
var ErrNoMoviesAvailable = errors.New("no movies available")

// UsedMovieStore tracks which movies have already been shown across
// all games. The production implementation is the Redis set in
// services/redis; tests substitute an in-memory fake.
type UsedMovieStore interface {
	MarkMovieUsed(movieID string) error
	ResetUsedMovies() error
	UsedMovieIDs() ([]string, error)
	CountUsedMovies() (int64, error)
}

/*
 * SelectRandomMovie picks one movie uniformly at random among the
 * entries matching the difficulty filter, skipping both the global
 * used set and the caller's own exclusion list.
 *
 * Exhaustion is expected, not exceptional: when every matching movie
 * has been used, the global set is cleared and the pick is retried so
 * long-running installations recycle the catalogue instead of running
 * dry. Only when the catalogue itself cannot satisfy the filter does
 * this fail with ErrNoMoviesAvailable.
 *
 * The returned movie is NOT marked as used; that is a separate,
 * explicit call once the movie has actually been shown.
 */
func SelectRandomMovie(db *gorm.DB, used UsedMovieStore, difficulty game_constants.Difficulty, excludeIDs []string) (*models.Movie, error) {
	movies, err := moviesByDifficulty(db, difficulty)
	if err != nil {
		return nil, err
	}

	globalUsed, err := used.UsedMovieIDs()
	if err != nil {
		return nil, err
	}

	eligible := filterEligible(movies, globalUsed, excludeIDs)
	if len(eligible) == 0 {
		// Pool exhausted: recycle the global set and retry against the
		// caller's exclusions only.
		if err := used.ResetUsedMovies(); err != nil {
			return nil, err
		}
		eligible = filterEligible(movies, nil, excludeIDs)
		if len(eligible) == 0 {
			return nil, ErrNoMoviesAvailable
		}
	}

	selected := eligible[rand.Intn(len(eligible))]
	return &selected, nil
}

func moviesByDifficulty(db *gorm.DB, difficulty game_constants.Difficulty) ([]models.Movie, error) {
	var movies []models.Movie
	query := db.Model(&models.Movie{})
	if difficulty != game_constants.DifficultyAll {
		query = query.Where("difficulty = ?", difficulty)
	}
	if err := query.Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// filterEligible drops every movie whose id appears in either
// exclusion list.
func filterEligible(movies []models.Movie, globalUsed, excludeIDs []string) []models.Movie {
	excluded := make(map[string]struct{}, len(globalUsed)+len(excludeIDs))
	for _, id := range globalUsed {
		excluded[id] = struct{}{}
	}
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	eligible := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if _, ok := excluded[m.ID]; !ok {
			eligible = append(eligible, m)
		}
	}
	return eligible
}
