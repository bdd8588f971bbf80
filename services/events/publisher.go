package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/rabbitmq/amqp091-go"

	"github.com/customeros/notestack/dto"
	"github.com/customeros/notestack/internal/logger"
	"github.com/customeros/notestack/internal/tracing"
	"github.com/customeros/notestack/internal/utils"
)

const (
	ExchangeNotestack  = "notestack"
	ExchangeDeadLetter = "dead-letter"

	QueueNotesCreated = "notes-created"
	DLQNotesCreated   = QueueNotesCreated + "-dlq"

	RoutingKeyDeadLetter  = "dead-letter"
	RoutingKeyNoteCreated = "notestack-note-created"

	EntityTypeNote       = "NOTE"
	EventTypeNoteCreated = "note.created"

	DefaultMessageTTL          = 240 * time.Hour // after TTL message moves to DLQ
	DefaultMaxRetries          = 3
	DefaultPublishTimeout      = 5 * time.Second
	DefaultReconnectBackoff    = time.Second
	DefaultMaxReconnectBackoff = 30 * time.Second
	DefaultDialTimeout         = 5 * time.Second
	DefaultHeartbeat           = 10 * time.Second
)

type PublisherConfig struct {
	MessageTTL          time.Duration
	MaxRetries          int
	PublishTimeout      time.Duration
	ReconnectBackoff    time.Duration
	MaxReconnectBackoff time.Duration
	DialTimeout         time.Duration
}

func DefaultPublisherConfig() *PublisherConfig {
	return &PublisherConfig{
		MessageTTL:          DefaultMessageTTL,
		MaxRetries:          DefaultMaxRetries,
		PublishTimeout:      DefaultPublishTimeout,
		ReconnectBackoff:    DefaultReconnectBackoff,
		MaxReconnectBackoff: DefaultMaxReconnectBackoff,
		DialTimeout:         DefaultDialTimeout,
	}
}

type RabbitMQPublisher struct {
	connection      *amqp091.Connection
	connectionMutex sync.Mutex
	publishChannel  *amqp091.Channel
	publishMutex    sync.Mutex
	url             string
	logger          logger.Logger
	confirms        chan amqp091.Confirmation
	config          PublisherConfig
	closed          chan struct{}
	closeOnce       sync.Once
}

func NewRabbitMQPublisher(rabbitmqURL string, logger logger.Logger, config *PublisherConfig) (*RabbitMQPublisher, error) {
	if config == nil {
		config = DefaultPublisherConfig()
	}
	if config.DialTimeout <= 0 {
		config.DialTimeout = DefaultDialTimeout
	}

	publisher := &RabbitMQPublisher{
		url:    rabbitmqURL,
		logger: logger,
		config: *config,
		closed: make(chan struct{}),
	}

	if err := publisher.connect(); err != nil {
		return nil, err
	}
	go publisher.handleReconnection()

	return publisher, nil
}

func (r *RabbitMQPublisher) PublishNoteCreated(ctx context.Context, event dto.NoteCreated) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "RabbitMQPublisher.PublishNoteCreated")
	defer span.Finish()
	tracing.SetDefaultPublisherSpanTags(ctx, span)
	tracing.TagEntity(span, event.NoteId)

	message := buildEvent(ctx, span, event.NoteId, EventTypeNoteCreated, event)
	if err := r.publishMessageOnExchange(ctx, message, ExchangeNotestack, RoutingKeyNoteCreated); err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

func buildEvent(ctx context.Context, span opentracing.Span, entityId, eventType string, data interface{}) dto.Event {
	tracingData := tracing.ExtractTextMapCarrier(span.Context())

	return dto.Event{
		Event: dto.EventDetails{
			Id:         utils.GenerateNanoIDWithPrefix("event", 21),
			EntityId:   entityId,
			EntityType: EntityTypeNote,
			EventType:  eventType,
			Data:       data,
		},
		Metadata: dto.EventMetadata{
			UberTraceId: tracingData["uber-trace-id"],
			AppSource:   utils.GetAppSourceFromContext(ctx),
			UserId:      utils.GetUserIdFromContext(ctx),
			UserEmail:   utils.GetUserEmailFromContext(ctx),
			Timestamp:   utils.Now().Format(time.RFC3339),
		},
	}
}

func (r *RabbitMQPublisher) setupPublishChannel(connection *amqp091.Connection) error {
	channel, err := connection.Channel()
	if err != nil {
		return errors.Wrap(err, "Failed to open publish channel")
	}

	err = channel.Confirm(false)
	if err != nil {
		channel.Close()
		return errors.Wrap(err, "Failed to enable publisher confirms")
	}

	r.confirms = channel.NotifyPublish(make(chan amqp091.Confirmation, 1))
	r.publishChannel = channel
	return nil
}

func (r *RabbitMQPublisher) handleReconnection() {
	backoff := r.config.ReconnectBackoff

	for {
		r.connectionMutex.Lock()
		connection := r.connection
		r.connectionMutex.Unlock()

		notifyClose := connection.NotifyClose(make(chan *amqp091.Error, 1))
		select {
		case <-r.closed:
			return
		case err := <-notifyClose:
			r.logger.Warnf("RabbitMQ connection closed: %v, attempting to reconnect", err)
		}

		for {
			select {
			case <-r.closed:
				return
			default:
			}

			err := r.reconnect()
			if err == nil {
				r.logger.Info("Successfully reconnected to RabbitMQ")
				break
			}

			r.logger.Errorf("Failed to reconnect: %v, retrying in %v", err, backoff)
			select {
			case <-r.closed:
				return
			case <-time.After(backoff):
			}

			backoff *= 2
			if backoff > r.config.MaxReconnectBackoff {
				backoff = r.config.MaxReconnectBackoff
			}
		}

		backoff = r.config.ReconnectBackoff
	}
}

func (r *RabbitMQPublisher) setupExchangesAndQueues(connection *amqp091.Connection) error {
	channel, err := connection.Channel()
	if err != nil {
		return errors.Wrap(err, "Failed to open channel for exchange/queue setup")
	}
	defer channel.Close()

	err = channel.ExchangeDeclare(ExchangeDeadLetter, "direct", true, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "Failed to declare dead letter exchange")
	}

	err = channel.ExchangeDeclare(ExchangeNotestack, "direct", true, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "Failed to declare notestack exchange")
	}

	if err := r.declareQueueWithDLQ(channel, QueueNotesCreated, DLQNotesCreated); err != nil {
		return err
	}
	err = channel.QueueBind(QueueNotesCreated, RoutingKeyNoteCreated, ExchangeNotestack, false, nil)
	if err != nil {
		return errors.Wrapf(err, "Failed to bind queue %s to exchange %s", QueueNotesCreated, ExchangeNotestack)
	}

	return nil
}

func (r *RabbitMQPublisher) declareQueueWithDLQ(channel *amqp091.Channel, queueName string, dlqName string) error {
	_, err := channel.QueueDeclare(dlqName, true, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "Failed to declare DLQ %s", dlqName)
	}

	err = channel.QueueBind(dlqName, RoutingKeyDeadLetter, ExchangeDeadLetter, false, nil)
	if err != nil {
		return errors.Wrapf(err, "Failed to bind DLQ %s to exchange", dlqName)
	}

	args := amqp091.Table{
		"x-dead-letter-exchange":    ExchangeDeadLetter,
		"x-dead-letter-routing-key": RoutingKeyDeadLetter,
		"x-message-ttl":             r.config.MessageTTL.Milliseconds(),
	}

	_, err = channel.QueueDeclare(queueName, true, false, false, false, args)
	if err != nil {
		return errors.Wrapf(err, "Failed to declare queue %s", queueName)
	}

	return nil
}

func (r *RabbitMQPublisher) connect() error {
	r.connectionMutex.Lock()
	defer r.connectionMutex.Unlock()

	return r.connectLocked()
}

// reconnect dials only when no one else has restored the connection meanwhile.
func (r *RabbitMQPublisher) reconnect() error {
	r.connectionMutex.Lock()
	defer r.connectionMutex.Unlock()

	if r.connection != nil && !r.connection.IsClosed() {
		return nil
	}
	return r.connectLocked()
}

// connectLocked requires connectionMutex. The current connection is only replaced on success.
func (r *RabbitMQPublisher) connectLocked() error {
	connection, err := amqp091.DialConfig(r.url, amqp091.Config{
		Heartbeat: DefaultHeartbeat,
		Locale:    "en_US",
		Dial:      amqp091.DefaultDial(r.config.DialTimeout),
	})
	if err != nil {
		return errors.Wrap(err, "Failed to connect to RabbitMQ")
	}

	err = r.setupExchangesAndQueues(connection)
	if err != nil {
		connection.Close()
		return errors.Wrap(err, "Failed to setup exchanges and queues")
	}

	err = r.setupPublishChannel(connection)
	if err != nil {
		connection.Close()
		return errors.Wrap(err, "Failed to setup publish channel")
	}

	r.connection = connection
	return nil
}

// ensureConnectionAndChannel returns the current publish channel and its confirmation stream.
func (r *RabbitMQPublisher) ensureConnectionAndChannel() (*amqp091.Channel, chan amqp091.Confirmation, error) {
	r.connectionMutex.Lock()
	defer r.connectionMutex.Unlock()

	if r.connection == nil || r.connection.IsClosed() {
		if err := r.connectLocked(); err != nil {
			return nil, nil, errors.Wrap(err, "Failed to establish connection")
		}
	}

	if r.publishChannel == nil || r.publishChannel.IsClosed() {
		if err := r.setupPublishChannel(r.connection); err != nil {
			return nil, nil, errors.Wrap(err, "Failed to establish channel")
		}
	}

	return r.publishChannel, r.confirms, nil
}

func (r *RabbitMQPublisher) publishMessageOnExchange(ctx context.Context, message interface{}, exchange, routingKey string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "RabbitMQPublisher.PublishMessageOnExchange")
	defer span.Finish()
	tracing.SetDefaultPublisherSpanTags(ctx, span)

	tracing.LogObjectAsJson(span, "message", message)

	var lastErr error
	for attempt := 0; attempt < r.config.MaxRetries; attempt++ {
		lastErr = r.publishWithConfirm(ctx, message, exchange, routingKey)
		if lastErr == nil {
			return nil
		}

		r.logger.Warnf("Publish attempt %d failed: %v", attempt+1, lastErr)
		if attempt < r.config.MaxRetries-1 {
			select {
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "Publish abandoned")
			case <-time.After(time.Millisecond * 100 * time.Duration(attempt+1)):
			}
		}
	}

	return errors.Wrap(lastErr, "Failed to publish message after all retries")
}

func (r *RabbitMQPublisher) publishWithConfirm(ctx context.Context, message interface{}, exchange, routingKey string) error {
	r.publishMutex.Lock()
	defer r.publishMutex.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	channel, confirms, err := r.ensureConnectionAndChannel()
	if err != nil {
		return err
	}

	jsonBody, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "Failed to marshal message")
	}

	err = channel.PublishWithContext(
		ctx,
		exchange,
		routingKey,
		true,  // mandatory
		false, // immediate
		amqp091.Publishing{
			DeliveryMode: amqp091.Persistent,
			ContentType:  "application/json",
			Body:         jsonBody,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return errors.Wrap(err, "Failed to publish message")
	}

	select {
	case confirm := <-confirms:
		if !confirm.Ack {
			return errors.New("Message was not confirmed by server")
		}
	case <-time.After(r.config.PublishTimeout):
		return errors.New("Publish confirmation timeout")
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// Close gracefully shuts down the publisher
func (r *RabbitMQPublisher) Close() error {
	r.closeOnce.Do(func() { close(r.closed) })

	r.connectionMutex.Lock()
	defer r.connectionMutex.Unlock()

	var err error
	if r.publishChannel != nil {
		err = r.publishChannel.Close()
		if err != nil {
			r.logger.Errorf("Error closing publish channel: %v", err)
		}
	}

	if r.connection != nil {
		if closeErr := r.connection.Close(); closeErr != nil {
			r.logger.Errorf("Error closing connection: %v", closeErr)
			if err == nil {
				err = closeErr
			}
		}
	}

	return err
}
