package handlers

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linkfolio-dev/linkfolio/internal/logger"
	"github.com/linkfolio-dev/linkfolio/internal/types"
	"go.uber.org/zap"
)

// Viewers of a public profile keep a websocket open; admin edits broadcast a
// refresh so open tabs re-fetch without polling.
var (
	profileClients   = make(map[string]map[*websocket.Conn]bool)
	profileClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

func BroadcastProfileRefresh(profileID uint) {
	key := strconv.FormatUint(uint64(profileID), 10)

	profileClientsMu.RLock()
	clients, exists := profileClients[key]
	if !exists || len(clients) == 0 {
		profileClientsMu.RUnlock()
		return
	}

	// Copy so the lock is not held while writing to sockets.
	clientsCopy := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		clientsCopy = append(clientsCopy, conn)
	}
	profileClientsMu.RUnlock()

	for _, conn := range clientsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			logger.Log.Warn("Failed to set write deadline for broadcast", zap.Error(err))
			continue
		}

		err := conn.WriteJSON(map[string]string{
			"type":       "refresh",
			"message":    "Profile data updated",
			"profile_id": key,
		})

		if err != nil {
			logger.Log.Warn("Failed to broadcast refresh to client", zap.Error(err))
			profileClientsMu.Lock()
			if clients, exists := profileClients[key]; exists {
				delete(clients, conn)
				if len(clients) == 0 {
					delete(profileClients, key)
				}
			}
			profileClientsMu.Unlock()
			conn.Close()
		}
	}
}

func ProfileWebSocket(c *gin.Context) {
	profileID := c.Param("profileId")

	if profileID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile ID is required"})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.Warn("Failed to set initial read deadline", zap.Error(err))
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	profileClientsMu.Lock()
	if profileClients[profileID] == nil {
		profileClients[profileID] = make(map[*websocket.Conn]bool)
	}
	profileClients[profileID][conn] = true
	profileClientsMu.Unlock()

	defer func() {
		profileClientsMu.Lock()

		if clients, exists := profileClients[profileID]; exists {
			delete(clients, conn)

			if len(clients) == 0 {
				delete(profileClients, profileID)
			}
		}

		profileClientsMu.Unlock()
		conn.Close()

		logger.Log.Debug("WebSocket connection closed", zap.String("profile_id", profileID))
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return
	}

	err = conn.WriteJSON(map[string]string{
		"type":       "connected",
		"message":    "WebSocket connection established",
		"profile_id": profileID,
	})

	if err != nil {
		logger.Log.Warn("Failed to send welcome message", zap.Error(err))
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			break
		}

		// Viewers only listen; incoming messages are drained and dropped.
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Debug("WebSocket read error", zap.String("profile_id", profileID), zap.Error(err))
			}
			break
		}
	}
}
