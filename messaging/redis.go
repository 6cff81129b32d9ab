package messaging

import (
	"context"
	"strconv"

	"github.com/go-redis/redis/v8"
	"golang.org/x/xerrors"
)

func init() { //nolint
	MQClients = append(MQClients, "redis")
}

// RedisMQClient consumes a redis pub/sub channel.
type RedisMQClient struct {
	redisClient *redis.Client

	channel string
}

func (redisMQ *RedisMQClient) String() string {
	return "redis"
}

func (redisMQ *RedisMQClient) Channel() string {
	return redisMQ.channel
}

func (redisMQ *RedisMQClient) Connect(ctx context.Context, clientName string, args map[string]any) (err error) {
	var ok bool

	var address string

	if address, ok = GetString(args, "Address"); !ok {
		return xerrors.New("redisMQ connect: string type assertion failed for Address")
	}

	password, _ := GetString(args, "Password")

	var db int

	if dbStr, ok := GetString(args, "DB"); ok {
		db, err = strconv.Atoi(dbStr)
		if err != nil {
			return xerrors.Errorf("redisMQ connect db atoi: %w", err)
		}
	}

	redisMQ.channel, _ = GetString(args, "Channel")

	redisMQ.redisClient = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	err = redisMQ.redisClient.Ping(ctx).Err()
	if err != nil {
		return xerrors.Errorf("redisMQ connect ping: %w", err)
	}

	return nil
}

func (redisMQ *RedisMQClient) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	if redisMQ.redisClient == nil {
		return nil, xerrors.New("redisMQ subscribe: client is not connected")
	}

	pubsub := redisMQ.redisClient.Subscribe(ctx, channel)

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, xerrors.Errorf("redisMQ subscribe: %w", err)
	}

	messages := pubsub.Channel()
	out := make(chan []byte)

	go func() {
		defer close(out)
		defer pubsub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (redisMQ *RedisMQClient) Close() error {
	if redisMQ.redisClient == nil {
		return nil
	}

	return redisMQ.redisClient.Close()
}
