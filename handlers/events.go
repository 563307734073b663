package handlers

import (
	"log"
	"net/http"

	"github.com/aidconnect/backend/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now
	},
}

// HandleEventsWebSocket handles WebSocket connections for the live event feed
func (h *Handler) HandleEventsWebSocket(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Event hub not initialized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("⚠️ WebSocket upgrade failed: %v", err)
		return
	}

	client := services.NewEventClient(h.hub, conn, c.ClientIP())
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}

// GetEventHubStats returns event hub statistics
func (h *Handler) GetEventHubStats(c *gin.Context) {
	if h.hub == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}

	stats := h.hub.Stats()
	c.JSON(http.StatusOK, gin.H{
		"enabled":   true,
		"clients":   stats.Clients,
		"published": stats.Published,
		"dropped":   stats.Dropped,
	})
}
