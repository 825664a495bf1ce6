package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio-dev/linkfolio/db"
	"github.com/linkfolio-dev/linkfolio/internal/middleware"
	"github.com/linkfolio-dev/linkfolio/internal/models"
)

func uploadRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/upload/image", middleware.AuthMiddleware(), UploadImage)
	r.POST("/api/profile/:profileId/upload-image", middleware.AuthMiddleware(), UploadProfileImage)
	return r
}

func multipartImage(t *testing.T, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="photo.png"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	return body, writer.FormDataContentType()
}

func performUpload(t *testing.T, r *gin.Engine, path, token, contentType string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, formContentType := multipartImage(t, contentType, payload)

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", formContentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadImage(t *testing.T) {
	setupTestDB(t)
	_, _, token := createTestUser(t, "alice")

	prevDir := UploadDir
	UploadDir = t.TempDir()
	defer func() { UploadDir = prevDir }()

	r := uploadRouter()
	w := performUpload(t, r, "/api/upload/image", token, "image/png", []byte("fake png bytes"))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		URL string `json:"url"`
	}
	decodeBody(t, w, &resp)

	if !strings.HasPrefix(resp.URL, "/uploads/") || !strings.HasSuffix(resp.URL, ".png") {
		t.Fatalf("unexpected url %q", resp.URL)
	}
}

func TestUploadImageRejectsUnsupportedType(t *testing.T) {
	setupTestDB(t)
	_, _, token := createTestUser(t, "alice")

	prevDir := UploadDir
	UploadDir = t.TempDir()
	defer func() { UploadDir = prevDir }()

	r := uploadRouter()
	w := performUpload(t, r, "/api/upload/image", token, "application/pdf", []byte("%PDF-1.4"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadProfileImageUpdatesProfile(t *testing.T) {
	setupTestDB(t)
	_, profile, token := createTestUser(t, "alice")

	prevDir := UploadDir
	UploadDir = t.TempDir()
	defer func() { UploadDir = prevDir }()

	r := uploadRouter()
	w := performUpload(t, r, fmt.Sprintf("/api/profile/%d/upload-image", profile.ID), token, "image/jpeg", []byte("fake jpeg"))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		URL string `json:"url"`
	}
	decodeBody(t, w, &resp)

	var reloaded models.Profile
	if err := db.DB.First(&reloaded, profile.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.ImageURL != resp.URL {
		t.Fatalf("expected profile image url %q, got %q", resp.URL, reloaded.ImageURL)
	}
}

func TestUploadProfileImageRejectsNonOwner(t *testing.T) {
	setupTestDB(t)
	_, profile, _ := createTestUser(t, "owner")
	_, _, intruderToken := createTestUser(t, "intruder")

	prevDir := UploadDir
	UploadDir = t.TempDir()
	defer func() { UploadDir = prevDir }()

	r := uploadRouter()
	w := performUpload(t, r, fmt.Sprintf("/api/profile/%d/upload-image", profile.ID), intruderToken, "image/png", []byte("fake"))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", w.Code)
	}
}
