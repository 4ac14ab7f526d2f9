package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ohcard-dev/ohcard/internal/services"
	"github.com/ohcard-dev/ohcard/internal/types"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
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

// ActivityFeed streams the caller's new activity entries over a websocket.
func ActivityFeed(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	userID := actor.User.ID
	log := logrus.WithField("user_id", userID)

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	conn := services.NewConn(ws)

	ws.SetReadLimit(maxMessageSize)
	if err := ws.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.WithError(err).Warn("Failed to set initial read deadline")
		ws.Close()
		return
	}
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	services.Subscribe(userID, conn)

	defer func() {
		services.Unsubscribe(userID, conn)
		conn.Close()
		log.Debug("Activity feed closed")
	}()

	err = conn.Push(map[string]interface{}{
		"type":    "connected",
		"message": "Activity feed established",
	}, time.Now().Add(writeWait))

	if err != nil {
		log.WithError(err).Warn("Failed to send welcome message")
		return
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					log.WithError(err).Debug("Ping failed")
					return
				}
			}
		}
	}()

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithError(err).Warn("WebSocket error")
			}
			return
		}
	}
}
