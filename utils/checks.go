package utils

import (
	"fmt"

	models "Filmy/models/postgres"

	"gorm.io/gorm"
)

// ErrGameNotFound keeps a single not-found message for every lookup
// path, so controllers map it to 404 consistently.
var ErrGameNotFound = fmt.Errorf("game not found")

// CheckGameExists fetches a game by its primary id.
func CheckGameExists(db *gorm.DB, gameID string) (*models.Game, error) {
	var game models.Game
	result := db.Where("id = ?", gameID).First(&game)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrGameNotFound
		}
		return nil, result.Error
	}

	return &game, nil
}

// CheckGameExistsByCode fetches a game by its share code. Codes are
// stored uppercase, so the lookup normalizes first.
func CheckGameExistsByCode(db *gorm.DB, shareCode string) (*models.Game, error) {
	var game models.Game
	result := db.Where("share_code = ?", models.NormalizeShareCode(shareCode)).First(&game)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, ErrGameNotFound
		}
		return nil, result.Error
	}

	return &game, nil
}
