package api

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLocationsRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Full scan", func(t *testing.T) {
		db, mock := newMockDB(t)
		router := NewLocationsRouter(db)

		mock.ExpectQuery("SELECT \\* FROM `locations`").
			WillReturnRows(sqlmock.NewRows([]string{"id", "occupied", "team"}).
				AddRow(1, true, 3).
				AddRow(2, false, nil))

		w := serve(router, http.MethodGet, "/locations", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"id": 1, "occupied": true, "team": 3},
			{"id": 2, "occupied": false, "team": null}
		]`, w.Body.String())
	})

	t.Run("Empty table scans to an empty list", func(t *testing.T) {
		db, mock := newMockDB(t)
		router := NewLocationsRouter(db)

		mock.ExpectQuery("SELECT \\* FROM `locations`").
			WillReturnRows(sqlmock.NewRows([]string{"id", "occupied", "team"}))

		w := serve(router, http.MethodGet, "/locations", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("Scan failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		router := NewLocationsRouter(db)

		mock.ExpectQuery("SELECT \\* FROM `locations`").
			WillReturnError(assert.AnError)

		w := serve(router, http.MethodGet, "/locations", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	t.Run("Test endpoint", func(t *testing.T) {
		db, _ := newMockDB(t)
		router := NewLocationsRouter(db)

		w := serve(router, http.MethodGet, "/test", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message": "OK"}`, w.Body.String())
	})

	t.Run("CORS preflight", func(t *testing.T) {
		db, _ := newMockDB(t)
		router := NewLocationsRouter(db)

		w := serve(router, http.MethodOptions, "/locations", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET,POST,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("Unknown route", func(t *testing.T) {
		db, _ := newMockDB(t)
		router := NewLocationsRouter(db)

		w := serve(router, http.MethodGet, "/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Not Found"}`, w.Body.String())
	})
}
