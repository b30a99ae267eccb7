// internal/interfaces/http/handlers/analytics.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hfashion/storefront/internal/interfaces/http/middleware"
	"github.com/hfashion/storefront/internal/pkg/tracking"
)

// AnalyticsHandler exposes recently emitted tracking events
type AnalyticsHandler struct {
	recorder *tracking.Recorder
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(recorder *tracking.Recorder) *AnalyticsHandler {
	return &AnalyticsHandler{recorder: recorder}
}

// GetEvents handles GET /tracking/events. Only the caller's session events
// are returned unless all=true; an optional name narrows to one event type.
func (h *AnalyticsHandler) GetEvents(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	all := c.Query("all") == "true"
	name := c.Query("name")

	events := []tracking.Event{}
	for _, e := range h.recorder.Events() {
		if !all && e.SessionID != sessionID {
			continue
		}
		if name != "" && e.Name != name {
			continue
		}
		events = append(events, e)
	}

	c.JSON(http.StatusOK, events)
}
