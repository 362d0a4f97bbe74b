package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recordstack/records-api/internal/api/metrics"
	"github.com/recordstack/records-api/internal/core/ports"
)

// AuditDispatcher is the interface the handler uses to defer audit writes.
type AuditDispatcher interface {
	Enqueue(entry ports.AuditEntry)
}

// TaskHandler handles the background action endpoint.
type TaskHandler struct {
	dispatcher AuditDispatcher
}

func NewTaskHandler(dispatcher AuditDispatcher) *TaskHandler {
	return &TaskHandler{dispatcher: dispatcher}
}

// Action handles POST /tasks/action/. The caller identifier comes from the
// "user" query parameter, with a JSON body fallback. The audit write is
// queued and the acknowledgement returns without waiting for it.
//
// @Summary      Schedule a background audit write
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        user  query     string         false  "Caller identifier"
// @Param        body  body      actionRequest  false  "Caller identifier (body alternative)"
// @Success      200   {object}  messageResponse
// @Failure      422   {object}  errorResponse
// @Router       /tasks/action/ [post]
func (h *TaskHandler) Action(c echo.Context) error {
	user := c.QueryParam("user")
	if user == "" {
		var req actionRequest
		if err := c.Bind(&req); err == nil {
			user = req.User
		}
	}
	if user == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "user is required")
	}

	h.dispatcher.Enqueue(ports.AuditEntry{User: user, Action: "an action"})
	metrics.AuditScheduledTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "action scheduled"})
}
