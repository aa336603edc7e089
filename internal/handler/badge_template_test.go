package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Prabhugems/AMASI-management-sub016/internal/model"
)

func TestLockedResponseBody(t *testing.T) {
	lockedAt := time.Date(2026, 9, 12, 10, 30, 0, 0, time.UTC)
	tpl := model.BadgeTemplate{
		ID:              5,
		IsLocked:        true,
		LockedAt:        &lockedAt,
		BadgesGenerated: 42,
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/v1/badge-templates/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := lockedResponse(c, tpl); err != nil {
		t.Fatalf("lockedResponse() error = %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got, want := body["locked_at"], "2026-09-12T10:30:00Z"; got != want {
		t.Errorf("locked_at = %v, want %v", got, want)
	}
	if got, ok := body["badges_generated"].(float64); !ok || got != 42 {
		t.Errorf("badges_generated = %v, want 42", body["badges_generated"])
	}
	if body["is_locked"] != true {
		t.Errorf("is_locked = %v, want true", body["is_locked"])
	}
}

func TestLockedResponseWithoutTimestamp(t *testing.T) {
	tpl := model.BadgeTemplate{ID: 6, IsLocked: true, BadgesGenerated: 1}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/badge-templates/6", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := lockedResponse(c, tpl); err != nil {
		t.Fatalf("lockedResponse() error = %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if v, present := body["locked_at"]; !present || v != nil {
		t.Errorf("locked_at = %v (present=%v), want explicit null", v, present)
	}
}
