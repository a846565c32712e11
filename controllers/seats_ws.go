package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/CPU-commits/Intranet_BRegistration/models"
	"github.com/CPU-commits/Intranet_BRegistration/res"
	"github.com/CPU-commits/Intranet_BRegistration/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	// pongWait must exceed twice pingPeriod so one missed beat does
	// not drop the connection
	pongWait   = 75 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var seatsHub = services.NewSeatsHub()

// SeatsWS upgrades the connection and streams seat counts: a full
// snapshot first, then every delta published on the hub until the
// peer closes or stops answering pings.
func (registration *RegistrationController) SeatsWS(c *gin.Context) {
	if _, ok := services.NewClaimsFromContext(c); !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, res.Response{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	id, deltas := seatsHub.Subscribe()

	go readPump(conn, id)
	go writePump(conn, deltas)
}

func readPump(conn *websocket.Conn, id uuid.UUID) {
	defer func() {
		seatsHub.Unsubscribe(id)
		conn.Close()
	}()
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		// Clients only pong and close; anything else is dropped
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writePump(conn *websocket.Conn, deltas chan []models.SeatCount) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()
	// Snapshot before any delta; it is the only resync mechanism
	snapshot, errRes := seatsService.RemainingFor(nil)
	if errRes != nil {
		log.Printf("Error reading seat snapshot: %v", errRes.Err)
		return
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(snapshot); err != nil {
		return
	}
	for {
		select {
		case seatCounts, ok := <-deltas:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(seatCounts); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
