package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linkfolio-dev/linkfolio/internal/middleware"
	"github.com/linkfolio-dev/linkfolio/internal/models"
	"github.com/linkfolio-dev/linkfolio/internal/types"
)

func issueRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/issues", middleware.AuthMiddleware(), CreateIssue)
	r.GET("/api/profile/:profileId/issues", ListIssues)
	r.PATCH("/api/issues/:id", middleware.AuthMiddleware(), UpdateIssue)
	r.DELETE("/api/issues/:id", middleware.AuthMiddleware(), DeleteIssue)
	r.POST("/api/issues/:id/resolve", middleware.AuthMiddleware(), ResolveIssue)
	r.POST("/api/issues/:id/reopen", middleware.AuthMiddleware(), ReopenIssue)
	return r
}

func createIssueVia(t *testing.T, r *gin.Engine, token, title string) models.Issue {
	t.Helper()
	w := performRequest(t, r, http.MethodPost, "/api/issues", token,
		map[string]interface{}{"title": title, "description": "broken"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}
	var issue models.Issue
	decodeBody(t, w, &issue)
	return issue
}

func TestCreateIssueDefaults(t *testing.T) {
	setupTestDB(t)
	_, _, token := createTestUser(t, "alice")

	r := issueRouter()
	issue := createIssueVia(t, r, token, "Broken avatar upload")

	if issue.Severity != types.SeverityLow {
		t.Fatalf("expected severity low, got %q", issue.Severity)
	}
	if issue.Status != types.IssueStatusOpen {
		t.Fatalf("expected status open, got %q", issue.Status)
	}
	if issue.IsResolved || issue.ResolvedAt != nil {
		t.Fatal("new issue must not be resolved")
	}
}

func TestResolveIssueIsIdempotent(t *testing.T) {
	setupTestDB(t)
	_, _, token := createTestUser(t, "alice")

	r := issueRouter()
	issue := createIssueVia(t, r, token, "Broken avatar upload")

	w := performRequest(t, r, http.MethodPost, fmt.Sprintf("/api/issues/%d/resolve", issue.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var resolved models.Issue
	decodeBody(t, w, &resolved)
	if resolved.Status != types.IssueStatusResolved || !resolved.IsResolved {
		t.Fatalf("expected resolved issue, got %+v", resolved)
	}
	if resolved.ResolvedAt == nil {
		t.Fatal("expected resolvedAt to be set")
	}

	// Resolving again keeps the original timestamp.
	w = performRequest(t, r, http.MethodPost, fmt.Sprintf("/api/issues/%d/resolve", issue.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var again models.Issue
	decodeBody(t, w, &again)
	if again.ResolvedAt == nil || !again.ResolvedAt.Equal(*resolved.ResolvedAt) {
		t.Fatalf("expected resolvedAt unchanged, got %v then %v", resolved.ResolvedAt, again.ResolvedAt)
	}
}

func TestReopenIssueClearsResolution(t *testing.T) {
	setupTestDB(t)
	_, _, token := createTestUser(t, "alice")

	r := issueRouter()
	issue := createIssueVia(t, r, token, "Broken avatar upload")

	performRequest(t, r, http.MethodPost, fmt.Sprintf("/api/issues/%d/resolve", issue.ID), token, nil)
	w := performRequest(t, r, http.MethodPost, fmt.Sprintf("/api/issues/%d/reopen", issue.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var reopened models.Issue
	decodeBody(t, w, &reopened)
	if reopened.Status != types.IssueStatusOpen {
		t.Fatalf("expected status open, got %q", reopened.Status)
	}
	if reopened.IsResolved || reopened.ResolvedAt != nil {
		t.Fatalf("expected resolution cleared, got %+v", reopened)
	}
}

func TestUpdateIssueStatusSyncsResolution(t *testing.T) {
	setupTestDB(t)
	_, _, token := createTestUser(t, "alice")

	r := issueRouter()
	issue := createIssueVia(t, r, token, "Broken avatar upload")

	w := performRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/issues/%d", issue.ID), token,
		map[string]interface{}{"status": "resolved"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Issue
	decodeBody(t, w, &updated)
	if !updated.IsResolved || updated.ResolvedAt == nil {
		t.Fatalf("expected resolution fields synced, got %+v", updated)
	}

	w = performRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/issues/%d", issue.ID), token,
		map[string]interface{}{"status": "in_progress"})
	decodeBody(t, w, &updated)
	if updated.IsResolved || updated.ResolvedAt != nil {
		t.Fatalf("expected resolution cleared on non-resolved status, got %+v", updated)
	}
}

func TestUpdateIssueRejectsBadSeverity(t *testing.T) {
	setupTestDB(t)
	_, _, token := createTestUser(t, "alice")

	r := issueRouter()
	issue := createIssueVia(t, r, token, "Broken avatar upload")

	w := performRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/issues/%d", issue.ID), token,
		map[string]interface{}{"severity": "catastrophic"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestIssueOwnershipEnforced(t *testing.T) {
	setupTestDB(t)
	_, _, ownerToken := createTestUser(t, "owner")
	_, _, intruderToken := createTestUser(t, "intruder")

	r := issueRouter()
	issue := createIssueVia(t, r, ownerToken, "Broken avatar upload")

	w := performRequest(t, r, http.MethodPost, fmt.Sprintf("/api/issues/%d/resolve", issue.ID), intruderToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", w.Code)
	}

	w = performRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/issues/%d", issue.ID), intruderToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", w.Code)
	}
}
