package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to repeat the same literal
 * everywhere, potentially confusing the key format.
 */

// FormatGlobalUsedMoviesKey returns the key of the singleton set
// holding every movie id already shown, across all games.
func FormatGlobalUsedMoviesKey() string {
	return "used_movies:global"
}
