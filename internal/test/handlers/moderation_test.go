package handlers_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-market-backend/internal/handlers"
	"car-market-backend/internal/models"
)

func newModerationRouter(fs *fakeStore, pub *fakePublisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewModerationHandler(fs, pub, zerolog.Nop())
	router := gin.New()
	router.POST("/api/submissions/:id/approve", h.Approve)
	router.POST("/api/submissions/:id/reject", h.Reject)
	return router
}

func seedSubmission(t *testing.T, fs *fakeStore) int64 {
	t.Helper()
	id, err := fs.Create(&models.Submission{
		UserID:      42,
		UserName:    sql.NullString{String: "@seller", Valid: true},
		Server:      "EU1",
		Car:         "Sedan",
		Price:       5000,
		PhotoFileID: "abc123",
	})
	require.NoError(t, err)
	return id
}

func doPost(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestApprove(t *testing.T) {
	fs := newFakeStore()
	pub := &fakePublisher{}
	router := newModerationRouter(fs, pub)
	id := seedSubmission(t, fs)

	w := doPost(router, "/api/submissions/1/approve")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ModerationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	// Published exactly once with the row's fields, and gone from the list
	require.Equal(t, 1, pub.count())
	assert.Equal(t, "Sedan", pub.published[0].Car)
	assert.Equal(t, int64(5000), pub.published[0].Price)
	_, ok := fs.rows[id]
	assert.False(t, ok)
}

func TestApprove_NotFound(t *testing.T) {
	fs := newFakeStore()
	pub := &fakePublisher{}
	router := newModerationRouter(fs, pub)

	w := doPost(router, "/api/submissions/99/approve")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, pub.count())
}

func TestApprove_InvalidID(t *testing.T) {
	router := newModerationRouter(newFakeStore(), &fakePublisher{})

	w := doPost(router, "/api/submissions/abc/approve")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApprove_PublishFails(t *testing.T) {
	fs := newFakeStore()
	pub := &fakePublisher{err: assert.AnError}
	router := newModerationRouter(fs, pub)
	id := seedSubmission(t, fs)

	w := doPost(router, "/api/submissions/1/approve")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// Row survives a failed publish so the reviewer can retry
	_, ok := fs.rows[id]
	assert.True(t, ok)
}

func TestApprove_DeleteFailsAfterPublish(t *testing.T) {
	fs := newFakeStore()
	pub := &fakePublisher{}
	router := newModerationRouter(fs, pub)
	seedSubmission(t, fs)
	fs.deleteErr = assert.AnError

	w := doPost(router, "/api/submissions/1/approve")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, pub.count())
}

func TestReject(t *testing.T) {
	fs := newFakeStore()
	pub := &fakePublisher{}
	router := newModerationRouter(fs, pub)
	id := seedSubmission(t, fs)

	w := doPost(router, "/api/submissions/1/reject")
	require.Equal(t, http.StatusOK, w.Code)

	_, ok := fs.rows[id]
	assert.False(t, ok)
	assert.Equal(t, 0, pub.count())
}

func TestReject_NotFound(t *testing.T) {
	router := newModerationRouter(newFakeStore(), &fakePublisher{})

	w := doPost(router, "/api/submissions/99/reject")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ModerationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestConcurrentApproveAndReject(t *testing.T) {
	for i := 0; i < 20; i++ {
		fs := newFakeStore()
		pub := &fakePublisher{}
		router := newModerationRouter(fs, pub)
		seedSubmission(t, fs)

		var wg sync.WaitGroup
		results := make([]*httptest.ResponseRecorder, 2)
		paths := []string{"/api/submissions/1/approve", "/api/submissions/1/reject"}
		for j, path := range paths {
			wg.Add(1)
			go func(j int, path string) {
				defer wg.Done()
				results[j] = doPost(router, path)
			}(j, path)
		}
		wg.Wait()

		// Exactly one delete wins. Reject reports not-found as success, so
		// the real discriminator is the row being gone and the publisher
		// having been called at most once.
		assert.Empty(t, fs.rows)
		assert.LessOrEqual(t, pub.count(), 1)
		if results[0].Code == http.StatusOK {
			assert.Equal(t, 1, pub.count())
		} else {
			assert.Equal(t, http.StatusNotFound, results[0].Code)
		}
	}
}
