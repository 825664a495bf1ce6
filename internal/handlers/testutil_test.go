package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio-dev/linkfolio/db"
	"github.com/linkfolio-dev/linkfolio/internal/auth"
	"github.com/linkfolio-dev/linkfolio/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB points the package-global DB at a unique in-memory database to
// avoid cross-test collisions.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	err = testDB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.SocialLink{},
		&models.FeaturedContent{},
		&models.Technology{},
		&models.Issue{},
		&models.Contact{},
		&models.Session{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db.DB = testDB

	os.Setenv("JWT_SECRET", "handlers-test-secret")
	if err := auth.InitJWTSecret(); err != nil {
		t.Fatalf("init jwt secret: %v", err)
	}
}

// createTestUser creates a user with a profile and a live session, returning
// the bearer token for authenticated requests.
func createTestUser(t *testing.T, username string) (models.User, models.Profile, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	user := models.User{Username: username, PasswordHash: string(hash)}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	profile := models.Profile{UserID: user.ID, Name: username}
	if err := db.DB.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}

	token, err := auth.GenerateJWT(user.ID, user.Username)
	if err != nil {
		t.Fatalf("generate jwt: %v", err)
	}

	session := models.Session{UserID: user.ID, Token: token, ExpiresAt: time.Now().Add(time.Hour)}
	if err := db.DB.Create(&session).Error; err != nil {
		t.Fatalf("create session: %v", err)
	}

	return user, profile, token
}

func performRequest(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, w.Body.String())
	}
}
