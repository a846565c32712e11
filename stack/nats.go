package stack

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/CPU-commits/Intranet_BRegistration/settings"
	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
)

var settingsData = settings.GetSettings()

var singleNatsInstance *NatsClient

type NatsClient struct {
	conn *nats.Conn
}

func newConnection() *nats.Conn {
	retryBackoff := backoff.NewExponentialBackOff()

	conn, err := nats.Connect(
		fmt.Sprintf("nats://%s:4222", settingsData.NATS_HOST),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.CustomReconnectDelay(func(attempts int) time.Duration {
			if attempts == 1 {
				retryBackoff.Reset()
			}
			return retryBackoff.NextBackOff()
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			log.Printf("NATS reconnected to %s", conn.ConnectedUrl())
		}),
	)
	if err != nil {
		log.Fatalf("Error connecting to NATS: %s", err)
	}
	return conn
}

// PublishEncode marshals data to JSON before publishing
func (n *NatsClient) PublishEncode(subject string, data interface{}) error {
	jsonMarshal, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return n.conn.Publish(subject, jsonMarshal)
}

func (n *NatsClient) Subscribe(
	subject string,
	handler func(m *nats.Msg),
) (*nats.Subscription, error) {
	return n.conn.Subscribe(subject, handler)
}

// ExtractPayload unmarshals a JSON message payload into dest
func (n *NatsClient) ExtractPayload(data []byte, dest interface{}) error {
	return json.Unmarshal(data, dest)
}

func NewNats() *NatsClient {
	if singleNatsInstance == nil {
		singleNatsInstance = &NatsClient{
			conn: newConnection(),
		}
	}
	return singleNatsInstance
}
