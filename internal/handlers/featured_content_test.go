package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio-dev/linkfolio/internal/middleware"
	"github.com/linkfolio-dev/linkfolio/internal/models"
)

func featuredContentRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/featured-contents", middleware.AuthMiddleware(), CreateFeaturedContent)
	r.PATCH("/api/featured-contents/:id", middleware.AuthMiddleware(), UpdateFeaturedContent)
	r.DELETE("/api/featured-contents/:id", middleware.AuthMiddleware(), DeleteFeaturedContent)
	r.GET("/api/profile/:profileId/featured-contents", ListFeaturedContents)
	return r
}

func TestFeaturedContentLifecycle(t *testing.T) {
	setupTestDB(t)
	_, profile, token := createTestUser(t, "alice")

	r := featuredContentRouter()
	w := performRequest(t, r, http.MethodPost, "/api/featured-contents", token,
		map[string]interface{}{"title": "My talk", "link_url": "https://youtube.com/watch?v=x", "order": 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var created models.FeaturedContent
	decodeBody(t, w, &created)
	if !created.IsVisible {
		t.Fatal("expected featured content visible by default")
	}

	w = performRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/featured-contents/%d", created.ID), token,
		map[string]interface{}{"title": "My conference talk"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var updated models.FeaturedContent
	decodeBody(t, w, &updated)
	if updated.Title != "My conference talk" {
		t.Fatalf("expected title updated, got %q", updated.Title)
	}
	if updated.LinkURL != created.LinkURL {
		t.Fatalf("expected link url untouched, got %q", updated.LinkURL)
	}

	w = performRequest(t, r, http.MethodGet, fmt.Sprintf("/api/profile/%d/featured-contents", profile.ID), "", nil)
	var listed []models.FeaturedContent
	decodeBody(t, w, &listed)
	if len(listed) != 1 {
		t.Fatalf("expected 1 featured content, got %d", len(listed))
	}

	w = performRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/featured-contents/%d", created.ID), token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", w.Code)
	}
}

func TestCreateFeaturedContentRejectsBadURL(t *testing.T) {
	setupTestDB(t)
	_, _, token := createTestUser(t, "alice")

	r := featuredContentRouter()
	w := performRequest(t, r, http.MethodPost, "/api/featured-contents", token,
		map[string]interface{}{"title": "My talk", "link_url": "not a url"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}
