package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recordstack/records-api/internal/core/ports"
)

type recordingDispatcher struct {
	entries []ports.AuditEntry
}

func (d *recordingDispatcher) Enqueue(entry ports.AuditEntry) {
	d.entries = append(d.entries, entry)
}

func TestTaskHandler_Action_QueryParam(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	handler := NewTaskHandler(dispatcher)

	rec, c := newTestContext(t, http.MethodPost, "/tasks/action/?user=testuser", "")
	if err := handler.Action(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Message != "action scheduled" {
		t.Fatalf("unexpected acknowledgement: %+v", resp)
	}
	if len(dispatcher.entries) != 1 || dispatcher.entries[0].User != "testuser" {
		t.Fatalf("entry not enqueued: %+v", dispatcher.entries)
	}
}

func TestTaskHandler_Action_BodyFallback(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	handler := NewTaskHandler(dispatcher)

	_, c := newTestContext(t, http.MethodPost, "/tasks/action/", `{"user":"bodyuser"}`)
	if err := handler.Action(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(dispatcher.entries) != 1 || dispatcher.entries[0].User != "bodyuser" {
		t.Fatalf("entry not enqueued from body: %+v", dispatcher.entries)
	}
}

func TestTaskHandler_Action_MissingUser(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	handler := NewTaskHandler(dispatcher)

	_, c := newTestContext(t, http.MethodPost, "/tasks/action/", "")
	err := handler.Action(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
	if len(dispatcher.entries) != 0 {
		t.Fatalf("nothing must be enqueued without a caller id")
	}
}
