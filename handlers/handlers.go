// Package handlers implements the HTTP surface of the AidConnect API.
package handlers

import (
	"log"
	"net/http"

	"github.com/aidconnect/backend/auth"
	"github.com/aidconnect/backend/services"
	"github.com/aidconnect/backend/store"
	"github.com/gin-gonic/gin"
)

// Handler holds the dependencies shared by all route handlers.
type Handler struct {
	store *store.Store
	auth  *auth.Service
	hub   *services.EventHub
}

// New creates the handler set. hub may be nil when live events are disabled.
func New(s *store.Store, a *auth.Service, hub *services.EventHub) *Handler {
	return &Handler{store: s, auth: a, hub: hub}
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// respondStorageError logs the underlying failure and returns a generic 500;
// internal detail never reaches the client.
func respondStorageError(c *gin.Context, message string, err error) {
	log.Printf("❌ %s: %v", message, err)
	respondError(c, http.StatusInternalServerError, message)
}

// publish sends a best-effort event to the live feed; a failure never fails
// the originating API call.
func (h *Handler) publish(eventType string, payload interface{}) {
	if h.hub == nil {
		return
	}
	if err := h.hub.Publish(eventType, payload); err != nil {
		log.Printf("⚠️ Failed to publish %s event: %v", eventType, err)
	}
}
