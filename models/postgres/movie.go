package postgres

import (
	game_constants "Filmy/constants/game"
)

/*
 * 'Movie' is one immutable catalogue entry. Rows are bulk-inserted at
 * seed time and never updated afterwards; a full re-seed deletes and
 * reinserts the whole table.
 */
type Movie struct {
	ID         string                    `gorm:"primaryKey;size:36;not null" json:"id"`
	Title      string                    `gorm:"not null" json:"title"`
	Year       int                       `gorm:"not null" json:"year"`
	Hero       string                    `gorm:"size:100" json:"hero"`
	Heroine    string                    `gorm:"size:100" json:"heroine"`
	WordCount  int                       `gorm:"not null" json:"word_count"`
	Difficulty game_constants.Difficulty `gorm:"size:10;not null;index:idx_movies_difficulty" json:"difficulty"`
	Genre      *string                   `gorm:"size:50" json:"genre,omitempty"`
}
