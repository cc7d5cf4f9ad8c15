package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func serveHealth(t *testing.T, h *HealthHandler) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthcheck", h.HealthCheck)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	return rec
}

func TestHealthCheck_PingsDatabase(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	h := NewHealthHandler(db)

	if rec := serveHealth(t, h); rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthy: status=%d body=%q", rec.Code, rec.Body.String())
	}

	_ = sqlDB.Close()
	if rec := serveHealth(t, h); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("closed db: status=%d body=%q", rec.Code, rec.Body.String())
	}
}

func TestHealthCheck_WithoutDatabase(t *testing.T) {
	if rec := serveHealth(t, NewHealthHandler(nil)); rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
}
