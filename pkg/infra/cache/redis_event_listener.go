package cache

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"
	"time"

	"github.com/NeuralTrust/TrustPost/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustPost/pkg/infra/cache/event"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	minReconnectDelay = 500 * time.Millisecond
	maxReconnectDelay = 30 * time.Second
)

type redisEventListener struct {
	logger   *logrus.Logger
	redis    *redis.Client
	registry map[string]reflect.Type

	mu          sync.RWMutex
	subscribers map[reflect.Type][]interface{}
}

func NewRedisEventListener(
	logger *logrus.Logger,
	redisClient *redis.Client,
	registry map[string]reflect.Type,
) EventListener {
	return &redisEventListener{
		logger:      logger,
		redis:       redisClient,
		subscribers: make(map[reflect.Type][]interface{}),
		registry:    registry,
	}
}

func RegisterEventSubscriber[T event.Event](listener EventListener, subscriber EventSubscriber[T]) {
	var evt T
	listener.Register(reflect.TypeOf(evt), subscriber)
}

// Register adds a subscriber for one concrete event type. Several
// subscribers may share a type; they are called in registration order.
func (r *redisEventListener) Register(eventType reflect.Type, subscriber interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers[eventType] = append(r.subscribers[eventType], subscriber)
}

// Listen blocks until ctx is done. A dropped subscription is retried with
// exponential backoff.
func (r *redisEventListener) Listen(ctx context.Context, channels ...channel.Channel) {
	channelNames := make([]string, 0, len(channels))
	for _, ch := range channels {
		channelNames = append(channelNames, string(ch))
	}

	delay := minReconnectDelay
	for {
		received := r.subscribe(ctx, channelNames)
		if ctx.Err() != nil {
			r.logger.Info("redis pubsub listener shutting down")
			return
		}
		if received {
			delay = minReconnectDelay
		}

		r.logger.WithField("retry_in", delay.String()).Warn("redis pubsub disconnected, reconnecting")
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay *= 2
		if delay > maxReconnectDelay {
			delay = maxReconnectDelay
		}
	}
}

// subscribe consumes messages until the subscription drops and reports
// whether at least one message arrived.
func (r *redisEventListener) subscribe(ctx context.Context, channelNames []string) bool {
	pubSub := r.redis.Subscribe(ctx, channelNames...)
	defer func() { _ = pubSub.Close() }()

	if _, err := pubSub.Receive(ctx); err != nil {
		r.logger.WithError(err).Error("redis pubsub subscribe failed")
		return false
	}
	r.logger.WithField("channels", channelNames).Debug("redis pubsub connected")

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = pubSub.Close()
		case <-stop:
		}
	}()

	received := false
	for msg := range pubSub.Channel() {
		received = true
		r.handleMessage(ctx, msg.Payload)
	}
	return received
}

func (r *redisEventListener) handleMessage(ctx context.Context, payload string) {
	var envelope RedisMessage
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		r.logger.WithError(err).Error("error decoding redis message")
		return
	}

	concreteType, ok := r.registry[envelope.Type]
	if !ok {
		r.logger.WithField("type", envelope.Type).Error("unknown event type")
		return
	}

	eventPtr := reflect.New(concreteType)
	if err := json.Unmarshal(envelope.Event, eventPtr.Interface()); err != nil {
		r.logger.WithError(err).WithField("type", envelope.Type).Error("error decoding event payload")
		return
	}
	r.dispatch(ctx, eventPtr.Elem())
}

func (r *redisEventListener) dispatch(ctx context.Context, ev reflect.Value) {
	r.mu.RLock()
	subs := r.subscribers[ev.Type()]
	r.mu.RUnlock()

	args := []reflect.Value{reflect.ValueOf(ctx), ev}
	for _, sub := range subs {
		method := reflect.ValueOf(sub).MethodByName("OnEvent")
		if !method.IsValid() {
			continue
		}
		results := method.Call(args)
		if len(results) == 0 || results[0].IsNil() {
			continue
		}
		if err, ok := results[0].Interface().(error); ok {
			r.logger.WithError(err).WithField("type", ev.Type().Name()).Error("event subscriber failed")
		}
	}
}
