package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio-dev/linkfolio/internal/middleware"
	"github.com/linkfolio-dev/linkfolio/internal/models"
)

func contactRouter() *gin.Engine {
	r := gin.New()
	authed := r.Group("/api/contacts", middleware.AuthMiddleware())
	authed.POST("", CreateContact)
	authed.GET("", ListContacts)
	authed.PATCH("/:id", UpdateContact)
	authed.DELETE("/:id", DeleteContact)
	authed.POST("/:id/viewed", TouchContact)
	return r
}

func TestCreateAndListContacts(t *testing.T) {
	setupTestDB(t)
	_, _, token := createTestUser(t, "alice")
	_, bobProfile, _ := createTestUser(t, "bob")

	r := contactRouter()
	w := performRequest(t, r, http.MethodPost, "/api/contacts", token,
		map[string]interface{}{"contact_profile_id": bobProfile.ID, "category": "conference", "notes": "met at GopherCon"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var created models.Contact
	decodeBody(t, w, &created)
	if created.ContactProfileID != bobProfile.ID {
		t.Fatalf("expected contact profile %d, got %d", bobProfile.ID, created.ContactProfileID)
	}
	if created.AddedAt.IsZero() {
		t.Fatal("expected addedAt to be set")
	}

	w = performRequest(t, r, http.MethodGet, "/api/contacts", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var listed []models.Contact
	decodeBody(t, w, &listed)
	if len(listed) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(listed))
	}
	if listed[0].ContactProfile.ID != bobProfile.ID {
		t.Fatalf("expected the contact's profile to be preloaded, got %+v", listed[0].ContactProfile)
	}
}

func TestCreateContactUnknownProfile(t *testing.T) {
	setupTestDB(t)
	_, _, token := createTestUser(t, "alice")

	r := contactRouter()
	w := performRequest(t, r, http.MethodPost, "/api/contacts", token,
		map[string]interface{}{"contact_profile_id": 9999})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestContactsAreOwnerScoped(t *testing.T) {
	setupTestDB(t)
	_, _, aliceToken := createTestUser(t, "alice")
	_, _, bobToken := createTestUser(t, "bob")
	_, carolProfile, _ := createTestUser(t, "carol")

	r := contactRouter()
	w := performRequest(t, r, http.MethodPost, "/api/contacts", aliceToken,
		map[string]interface{}{"contact_profile_id": carolProfile.ID})

	var created models.Contact
	decodeBody(t, w, &created)

	// Bob sees an empty contact book and cannot touch Alice's entry.
	w = performRequest(t, r, http.MethodGet, "/api/contacts", bobToken, nil)
	var listed []models.Contact
	decodeBody(t, w, &listed)
	if len(listed) != 0 {
		t.Fatalf("expected empty contact book, got %+v", listed)
	}

	w = performRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/contacts/%d", created.ID), bobToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", w.Code)
	}
}

func TestTouchContactSetsLastViewed(t *testing.T) {
	setupTestDB(t)
	_, _, token := createTestUser(t, "alice")
	_, bobProfile, _ := createTestUser(t, "bob")

	r := contactRouter()
	w := performRequest(t, r, http.MethodPost, "/api/contacts", token,
		map[string]interface{}{"contact_profile_id": bobProfile.ID})

	var created models.Contact
	decodeBody(t, w, &created)
	if created.LastViewedAt != nil {
		t.Fatal("expected lastViewedAt unset on creation")
	}

	w = performRequest(t, r, http.MethodPost, fmt.Sprintf("/api/contacts/%d/viewed", created.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var touched models.Contact
	decodeBody(t, w, &touched)
	if touched.LastViewedAt == nil {
		t.Fatal("expected lastViewedAt to be set")
	}
}

func TestUpdateContactNotes(t *testing.T) {
	setupTestDB(t)
	_, _, token := createTestUser(t, "alice")
	_, bobProfile, _ := createTestUser(t, "bob")

	r := contactRouter()
	w := performRequest(t, r, http.MethodPost, "/api/contacts", token,
		map[string]interface{}{"contact_profile_id": bobProfile.ID, "notes": "old"})

	var created models.Contact
	decodeBody(t, w, &created)

	w = performRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/contacts/%d", created.ID), token,
		map[string]interface{}{"notes": "new"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Contact
	decodeBody(t, w, &updated)
	if updated.Notes != "new" {
		t.Fatalf("expected notes updated, got %q", updated.Notes)
	}
	if updated.Category != created.Category {
		t.Fatalf("expected category untouched, got %q", updated.Category)
	}
}
