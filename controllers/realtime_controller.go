package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/JohnSmith545/Fuel-and-Flow/logger"
	"github.com/JohnSmith545/Fuel-and-Flow/middlewares"
	"github.com/JohnSmith545/Fuel-and-Flow/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// EngineSocket upgrades to a websocket that receives engine ticks
// (check-in eligibility plus suggestions) while the session is open.
func EngineSocket(hub *services.RealtimeHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", "error", err)
			return
		}

		client := services.NewWSClient(middlewares.UserID(c), conn)
		hub.Register(client)
		logger.Debug("engine socket opened", "user", client.UserID, "client", client.ID)

		// Drain reads so we notice the close; the hub owns all writes.
		go func() {
			defer hub.Unregister(client)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
