package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUsedStore stands in for the Redis-backed global used set.
type fakeUsedStore struct {
	used       map[string]struct{}
	resetCalls int
}

func newFakeUsedStore(ids ...string) *fakeUsedStore {
	s := &fakeUsedStore{used: make(map[string]struct{})}
	for _, id := range ids {
		s.used[id] = struct{}{}
	}
	return s
}

func (s *fakeUsedStore) MarkMovieUsed(movieID string) error {
	s.used[movieID] = struct{}{}
	return nil
}

func (s *fakeUsedStore) ResetUsedMovies() error {
	s.resetCalls++
	s.used = make(map[string]struct{})
	return nil
}

func (s *fakeUsedStore) UsedMovieIDs() ([]string, error) {
	ids := make([]string, 0, len(s.used))
	for id := range s.used {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *fakeUsedStore) CountUsedMovies() (int64, error) {
	return int64(len(s.used)), nil
}

func movieColumns() []string {
	return []string{"id", "title", "year", "hero", "heroine", "word_count", "difficulty", "genre"}
}

func TestGetAllMoviesInvalidDifficulty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	router := gin.New()
	router.GET("/api/movies", GetAllMovies(db))

	req, _ := http.NewRequest("GET", "/api/movies?difficulty=impossible", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllMoviesFiltersByDifficulty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	router := gin.New()
	router.GET("/api/movies", GetAllMovies(db))

	rows := sqlmock.NewRows(movieColumns()).
		AddRow("m1", "Sholay", 1975, "Amitabh Bachchan", "Hema Malini", 1, "easy", "Action").
		AddRow("m2", "Dangal", 2016, "Aamir Khan", "Fatima Sana Shaikh", 1, "easy", "Sports")
	mock.ExpectQuery(`SELECT (.+) FROM "movies" WHERE difficulty = \$1`).
		WithArgs("easy").
		WillReturnRows(rows)

	req, _ := http.NewRequest("GET", "/api/movies?difficulty=easy", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var movies []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movies))
	require.Len(t, movies, 2)
	assert.Equal(t, "Sholay", movies[0]["title"])
	assert.Equal(t, "easy", movies[0]["difficulty"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRandomMovieNoneAvailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)

	router := gin.New()
	router.GET("/api/movies/random", GetRandomMovie(db, newFakeUsedStore()))

	mock.ExpectQuery(`SELECT (.+) FROM "movies"`).
		WillReturnRows(sqlmock.NewRows(movieColumns()))

	req, _ := http.NewRequest("GET", "/api/movies/random", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "No movies available", response["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkMovieUsedIdempotent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	store := newFakeUsedStore()

	router := gin.New()
	router.POST("/api/movies/used/:movie_id", MarkMovieUsed(db, store))

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`SELECT (.+) FROM "movies" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows(movieColumns()).
				AddRow("m1", "Sholay", 1975, "Amitabh Bachchan", "Hema Malini", 1, "easy", "Action"))

		req, _ := http.NewRequest("POST", "/api/movies/used/m1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Marking twice still leaves exactly one entry.
	count, _ := store.CountUsedMovies()
	assert.Equal(t, int64(1), count)
}

func TestMarkMovieUsedNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	store := newFakeUsedStore()

	router := gin.New()
	router.POST("/api/movies/used/:movie_id", MarkMovieUsed(db, store))

	mock.ExpectQuery(`SELECT (.+) FROM "movies" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(movieColumns()))

	req, _ := http.NewRequest("POST", "/api/movies/used/ghost", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	count, _ := store.CountUsedMovies()
	assert.Zero(t, count)
}

func TestResetUsedMovies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newFakeUsedStore("m1", "m2")

	router := gin.New()
	router.DELETE("/api/movies/used", ResetUsedMovies(store))

	// Resetting twice leaves the set empty both times.
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest("DELETE", "/api/movies/used", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		count, _ := store.CountUsedMovies()
		assert.Zero(t, count)
	}
	assert.Equal(t, 2, store.resetCalls)
}

func TestGetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := newMockDB(t)
	store := newFakeUsedStore("m1", "m2")

	router := gin.New()
	router.GET("/api/stats", GetStats(db, store))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "movies"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(112))
	for _, n := range []int64{35, 37, 40} {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "movies" WHERE difficulty = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(n))
	}
	mock.ExpectQuery(`SELECT count\(\*\) FROM "games"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	req, _ := http.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(112), response["total_movies"])
	assert.Equal(t, float64(35), response["easy_movies"])
	assert.Equal(t, float64(37), response["medium_movies"])
	assert.Equal(t, float64(40), response["hard_movies"])
	assert.Equal(t, float64(7), response["total_games"])
	assert.Equal(t, float64(2), response["used_movies"])
	assert.Equal(t, float64(110), response["available_movies"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
