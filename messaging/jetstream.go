package messaging

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

func init() {
	MQClients = append(MQClients, "jetstream")
}

// JetStreamMQClient consumes the stream a daemon publishes to. Messages are
// acknowledged once they have been handed to the subscriber.
type JetStreamMQClient struct {
	NatsClient      *nats.Conn          `json:"-"`
	JetStreamClient jetstream.JetStream `json:"-"`
	JetStreamStream jetstream.Stream    `json:"-"`

	clientName string
	channel    string
}

func (jetstreamMQ *JetStreamMQClient) String() string {
	return "jetstream"
}

func (jetstreamMQ *JetStreamMQClient) Channel() string {
	return jetstreamMQ.channel
}

func (jetstreamMQ *JetStreamMQClient) Connect(ctx context.Context, clientName string, args map[string]any) error {
	var ok bool

	var address string

	if address, ok = GetString(args, "Address"); !ok {
		return errors.New("jetstreamMQ connect: string type assertion failed for Address")
	}

	var channel string

	if channel, ok = GetString(args, "Channel"); !ok {
		return errors.New("jetstreamMQ connect: string type assertion failed for Channel")
	}

	jetstreamMQ.channel = channel
	jetstreamMQ.clientName = clientName

	nc, err := nats.Connect(address, nats.Name(clientName))
	if err != nil {
		return fmt.Errorf("jetstreamMQ connect nats: %w", err)
	}

	jetstreamMQ.NatsClient = nc

	jetstreamMQ.JetStreamClient, err = jetstream.New(nc)
	if err != nil {
		return fmt.Errorf("jetstreamMQ new: %w", err)
	}

	retention := jetstream.WorkQueuePolicy

	if v := mustParseBool(os.Getenv("JETSTREAM_USE_INTEREST_POLICY")); v {
		retention = jetstream.InterestPolicy
	}

	jetstreamMQ.JetStreamStream, err = jetstreamMQ.JetStreamClient.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:              jetstreamMQ.channel,
		Subjects:          []string{jetstreamMQ.channel + ".*"},
		Retention:         retention,
		Discard:           jetstream.DiscardOld,
		MaxAge:            5 * time.Minute,
		Storage:           jetstream.MemoryStorage,
		MaxMsgsPerSubject: 1_000_000,
		MaxMsgSize:        math.MaxInt32,
		NoAck:             false,
	})
	if err != nil {
		return fmt.Errorf("jetstreamMQ create stream: %w", err)
	}

	return nil
}

func mustParseBool(str string) bool {
	boolean, _ := strconv.ParseBool(str)

	return boolean
}

func (jetstreamMQ *JetStreamMQClient) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	if jetstreamMQ.JetStreamStream == nil {
		return nil, errors.New("jetstreamMQ subscribe: client is not connected")
	}

	consumer, err := jetstreamMQ.JetStreamStream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       jetstreamMQ.clientName,
		FilterSubject: jetstreamMQ.channel + "." + channel,
		AckPolicy:     jetstream.AckExplicitPolicy,
		DeliverPolicy: jetstream.DeliverNewPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("jetstreamMQ create consumer: %w", err)
	}

	out := make(chan []byte)

	var (
		closedMu sync.RWMutex
		closed   bool
	)

	consumeContext, err := consumer.Consume(func(msg jetstream.Msg) {
		closedMu.RLock()
		defer closedMu.RUnlock()

		if closed {
			_ = msg.Nak()

			return
		}

		select {
		case out <- msg.Data():
			_ = msg.Ack()
		case <-ctx.Done():
			_ = msg.Nak()
		}
	})
	if err != nil {
		return nil, fmt.Errorf("jetstreamMQ consume: %w", err)
	}

	go func() {
		<-ctx.Done()
		consumeContext.Stop()

		closedMu.Lock()
		closed = true
		close(out)
		closedMu.Unlock()
	}()

	return out, nil
}

func (jetstreamMQ *JetStreamMQClient) Close() error {
	if jetstreamMQ.NatsClient != nil {
		jetstreamMQ.NatsClient.Close()
	}

	return nil
}
