package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
)

func init() {
	MQClients = append(MQClients, "nats")
}

const natsBufferSize = 64

// NATSMQClient consumes a core nats subject.
type NATSMQClient struct {
	NatsClient *nats.Conn `json:"-"`

	channel string
}

func (natsMQ *NATSMQClient) String() string {
	return "nats"
}

func (natsMQ *NATSMQClient) Channel() string {
	return natsMQ.channel
}

func (natsMQ *NATSMQClient) Connect(ctx context.Context, clientName string, args map[string]any) error {
	address, ok := GetString(args, "Address")
	if !ok {
		return errors.New("natsMQ connect: string type assertion failed for Address")
	}

	natsMQ.channel, _ = GetString(args, "Channel")

	var err error

	natsMQ.NatsClient, err = nats.Connect(address, nats.Name(clientName))
	if err != nil {
		return fmt.Errorf("natsMQ connect: %w", err)
	}

	return nil
}

func (natsMQ *NATSMQClient) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	if natsMQ.NatsClient == nil {
		return nil, errors.New("natsMQ subscribe: client is not connected")
	}

	subject := channel
	if natsMQ.channel != "" {
		subject = natsMQ.channel + "." + channel
	}

	messages := make(chan *nats.Msg, natsBufferSize)

	subscription, err := natsMQ.NatsClient.ChanSubscribe(subject, messages)
	if err != nil {
		return nil, fmt.Errorf("natsMQ subscribe: %w", err)
	}

	out := make(chan []byte)

	go func() {
		defer close(out)
		defer subscription.Unsubscribe() //nolint:errcheck

		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-messages:
				select {
				case out <- msg.Data:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (natsMQ *NATSMQClient) Close() error {
	if natsMQ.NatsClient != nil {
		natsMQ.NatsClient.Close()
	}

	return nil
}
