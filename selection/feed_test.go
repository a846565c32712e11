package selection

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/CPU-commits/Intranet_BRegistration/models"
	"github.com/gorilla/websocket"
)

var testUpgrader = websocket.Upgrader{}

// The server drops the first connection right after its snapshot and
// holds the second one open, so the feed must reconnect once.
func seatFeedServer(
	t *testing.T,
	snapshots [][]models.SeatCount,
	hold chan struct{},
) (*httptest.Server, *int32) {
	var dials int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			t.Error("feed must dial with a bearer token")
		}
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		dial := atomic.AddInt32(&dials, 1)
		snapshot := snapshots[len(snapshots)-1]
		if int(dial) <= len(snapshots) {
			snapshot = snapshots[dial-1]
		}
		if err := conn.WriteJSON(snapshot); err != nil {
			return
		}
		if dial == 1 {
			return
		}
		<-hold
	}))
	return server, &dials
}

func TestFeedResyncAfterDrop(t *testing.T) {
	snapshots := [][]models.SeatCount{
		{{Subject: 1, RemSeats: 10}, {Subject: 2, RemSeats: 3}},
		{{Subject: 1, RemSeats: 4}, {Subject: 2, RemSeats: 0}},
	}
	hold := make(chan struct{})
	server, dials := seatFeedServer(t, snapshots, hold)
	defer server.Close()
	defer close(hold)

	view := NewSeatView(NewStore(testCatalog(), nil))
	feed := NewFeed("ws"+strings.TrimPrefix(server.URL, "http"), "token", view)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.Run(ctx)

	deadline := time.Now().Add(5 * time.Second)
	for view.Remaining(1) != 4 || view.Remaining(2) != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("view never caught up after reconnect: rem(1)=%d rem(2)=%d",
				view.Remaining(1), view.Remaining(2))
		}
		time.Sleep(5 * time.Millisecond)
	}
	if atomic.LoadInt32(dials) < 2 {
		t.Fatal("the dropped connection was never redialed")
	}

	// Equal to a client that only ever saw the final snapshot
	uninterrupted := NewSeatView(NewStore(testCatalog(), nil))
	uninterrupted.Apply(snapshots[len(snapshots)-1])
	for _, subject := range []models.SubjectID{1, 2} {
		if view.Remaining(subject) != uninterrupted.Remaining(subject) {
			t.Fatalf("subject %d: resynced view shows %d, uninterrupted shows %d",
				subject, view.Remaining(subject), uninterrupted.Remaining(subject))
		}
	}
}

func TestFeedRunStopsOnCancel(t *testing.T) {
	snapshots := [][]models.SeatCount{
		{{Subject: 1, RemSeats: 10}},
	}
	hold := make(chan struct{})
	server, _ := seatFeedServer(t, snapshots, hold)
	defer server.Close()
	defer close(hold)

	view := NewSeatView(NewStore(testCatalog(), nil))
	feed := NewFeed("ws"+strings.TrimPrefix(server.URL, "http"), "token", view)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() {
		stopped <- feed.Run(ctx)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for view.Remaining(1) != 10 {
		if time.Now().After(deadline) {
			t.Fatal("snapshot never applied")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
