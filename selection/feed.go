package selection

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/CPU-commits/Intranet_BRegistration/models"
	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
)

// Feed owns the long-lived seat-count connection. Dropped
// connections reconnect with exponential backoff; resynchronization
// is the full snapshot the server sends on every connect, not
// message replay, so missed broadcasts need no recovery of their
// own.
type Feed struct {
	url   string
	token string
	view  *SeatView
}

func NewFeed(url, token string, view *SeatView) *Feed {
	return &Feed{
		url:   url,
		token: token,
		view:  view,
	}
}

func (feed *Feed) dial(ctx context.Context) (*websocket.Conn, error) {
	retryBackoff := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	var conn *websocket.Conn
	err := backoff.Retry(func() error {
		header := http.Header{}
		header.Set("Authorization", "Bearer "+feed.token)
		dialed, _, err := websocket.DefaultDialer.DialContext(ctx, feed.url, header)
		if err != nil {
			return err
		}
		conn = dialed
		return nil
	}, retryBackoff)
	return conn, err
}

// Run blocks until ctx is cancelled, keeping the view fed.
func (feed *Feed) Run(ctx context.Context) error {
	for {
		conn, err := feed.dial(ctx)
		if err != nil {
			// Only a cancelled ctx stops the backoff loop
			return err
		}
		feed.readLoop(ctx, conn)
		conn.Close()

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

func (feed *Feed) readLoop(ctx context.Context, conn *websocket.Conn) {
	// The watcher lives exactly as long as this connection
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("Seat feed dropped, reconnecting: %v", err)
			}
			return
		}
		var seatCounts []models.SeatCount
		if err := json.Unmarshal(message, &seatCounts); err != nil {
			log.Printf("Error decoding seat counts: %v", err)
			continue
		}
		feed.view.Apply(seatCounts)
	}
}
