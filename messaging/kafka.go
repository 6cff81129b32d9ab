package messaging

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"
	"golang.org/x/xerrors"
)

func init() {
	MQClients = append(MQClients, "kafka")
}

// KafkaMQClient consumes a kafka topic as part of a consumer group named
// after the client.
type KafkaMQClient struct {
	KafkaClient *kafka.Reader

	address  string
	balancer kafka.GroupBalancer

	clientName string
	channel    string
}

func parseKafkaBalancer(balancer string) kafka.GroupBalancer {
	switch balancer {
	case "range":
		return &kafka.RangeGroupBalancer{}
	case "roundrobin":
		return &kafka.RoundRobinGroupBalancer{}
	default:
		return nil
	}
}

func (kafkaMQ *KafkaMQClient) String() string {
	return "kafka"
}

func (kafkaMQ *KafkaMQClient) Channel() string {
	return kafkaMQ.channel
}

func (kafkaMQ *KafkaMQClient) Connect(ctx context.Context, clientName string, args map[string]any) (err error) {
	var ok bool

	if kafkaMQ.address, ok = GetString(args, "Address"); !ok {
		return xerrors.New("kafkaMQ connect: string type assertion failed for Address")
	}

	if balancerStr, ok := GetString(args, "Balancer"); ok {
		kafkaMQ.balancer = parseKafkaBalancer(balancerStr)
	}

	kafkaMQ.clientName = clientName
	kafkaMQ.channel, _ = GetString(args, "Channel")

	return nil
}

func (kafkaMQ *KafkaMQClient) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	if kafkaMQ.address == "" {
		return nil, xerrors.New("kafkaMQ subscribe: client is not connected")
	}

	config := kafka.ReaderConfig{
		Brokers: []string{kafkaMQ.address},
		GroupID: kafkaMQ.clientName,
		Topic:   channel,
	}

	if kafkaMQ.balancer != nil {
		config.GroupBalancers = []kafka.GroupBalancer{kafkaMQ.balancer}
	}

	kafkaMQ.KafkaClient = kafka.NewReader(config)

	out := make(chan []byte)

	go func() {
		defer close(out)

		for {
			msg, err := kafkaMQ.KafkaClient.ReadMessage(ctx)
			if err != nil {
				return
			}

			select {
			case out <- msg.Value:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (kafkaMQ *KafkaMQClient) Close() error {
	if kafkaMQ.KafkaClient == nil {
		return nil
	}

	if err := kafkaMQ.KafkaClient.Close(); err != nil && !errors.Is(err, context.Canceled) {
		return xerrors.Errorf("kafkaMQ close: %w", err)
	}

	return nil
}
