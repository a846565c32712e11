package services

import (
	"log"
	"sync"

	"github.com/CPU-commits/Intranet_BRegistration/models"
	"github.com/google/uuid"
	natsPackage "github.com/nats-io/nats.go"
)

const subscriberBufSize = 64

var seatsHub *SeatsHub

// SeatsHub fans seat-count deltas out to every subscribed
// registration connection. Delivery is at-most-once: a subscriber
// with a full buffer skips the message and relies on the snapshot it
// gets on its next connect. Deltas arrive either from a local commit
// or over NATS from another instance.
type SeatsHub struct {
	lock        sync.RWMutex
	subscribers map[uuid.UUID]chan []models.SeatCount
}

func (hub *SeatsHub) Subscribe() (uuid.UUID, chan []models.SeatCount) {
	id := uuid.New()
	channel := make(chan []models.SeatCount, subscriberBufSize)

	hub.lock.Lock()
	defer hub.lock.Unlock()
	hub.subscribers[id] = channel
	return id, channel
}

func (hub *SeatsHub) Unsubscribe(id uuid.UUID) {
	hub.lock.Lock()
	defer hub.lock.Unlock()
	if channel, ok := hub.subscribers[id]; ok {
		delete(hub.subscribers, id)
		close(channel)
	}
}

func (hub *SeatsHub) Publish(seatCounts []models.SeatCount) {
	if len(seatCounts) == 0 {
		return
	}
	hub.lock.RLock()
	defer hub.lock.RUnlock()
	for _, channel := range hub.subscribers {
		select {
		case channel <- seatCounts:
		default:
			// Slow subscriber, skip
		}
	}
}

func (hub *SeatsHub) Subscribers() int {
	hub.lock.RLock()
	defer hub.lock.RUnlock()
	return len(hub.subscribers)
}

func NewSeatsHub() *SeatsHub {
	if seatsHub == nil {
		seatsHub = &SeatsHub{
			subscribers: make(map[uuid.UUID]chan []models.SeatCount),
		}
		// Deltas committed by any instance reach every hub
		_, err := nats.Subscribe(REM_SEATS_SUBJECT, func(m *natsPackage.Msg) {
			var seatCounts []models.SeatCount
			if err := nats.ExtractPayload(m.Data, &seatCounts); err != nil {
				log.Printf("Error decoding seat counts: %v", err)
				return
			}
			seatsHub.Publish(seatCounts)
		})
		if err != nil {
			log.Fatalf("Error subscribing to %s: %s", REM_SEATS_SUBJECT, err)
		}
	}
	return seatsHub
}
