// Package messaging contains the message queue consumers used to receive
// events produced by a Sandwich daemon.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMQClient = errors.New("no mq client with this name")

// MQClients lists all current mqclients we have available.
var MQClients = []string{}

// MQClient consumes produced payloads from a message queue.
type MQClient interface {
	String() string
	Channel() string

	Connect(ctx context.Context, clientName string, args map[string]any) error
	// Subscribe returns a channel that receives messages in the order they
	// arrive. The channel is closed once the context is done or the
	// subscription ends.
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}

func NewMQClient(mqType string) (MQClient, error) {
	switch strings.ToLower(mqType) {
	case "nats":
		return &NATSMQClient{}, nil
	case "jetstream":
		return &JetStreamMQClient{}, nil
	case "kafka":
		return &KafkaMQClient{}, nil
	case "redis":
		return &RedisMQClient{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMQClient, mqType)
	}
}

// GetEntry returns first match from a map and handles keys as non case sensitive.
func GetEntry(m map[string]any, key string) any {
	key = strings.ToLower(key)
	for i, k := range m {
		if strings.ToLower(i) == key {
			return k
		}
	}

	return nil
}

// GetString returns the entry as a string. Scalar values decoded from
// configuration files are formatted.
func GetString(m map[string]any, key string) (string, bool) {
	switch value := GetEntry(m, key).(type) {
	case string:
		return value, true
	case nil:
		return "", false
	case fmt.Stringer:
		return value.String(), true
	case int, int32, int64, uint, uint32, uint64, float64, bool:
		return fmt.Sprint(value), true
	default:
		return "", false
	}
}
