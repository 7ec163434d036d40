package services

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Event types published for the external settlement process.
const (
	EventSubmissionApproved     = "submission.approved"
	EventSubmissionRejected     = "submission.rejected"
	EventCampaignBudgetIncrease = "campaign.budget_increased"
	EventBalanceDeposited       = "balance.deposited"
)

const settlementQueue = "settlement_events"

// EventsService publishes lifecycle events to RabbitMQ. The settlement worker
// that moves pending funds to withdrawn consumes this queue; publishing is
// best effort and never fails the originating request.
type EventsService struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewEventsService() (*EventsService, error) {
	// Get RabbitMQ connection details from environment
	host := getEnv("RABBITMQ_HOST", "localhost")
	port := getEnv("RABBITMQ_PORT", "5672")
	user := getEnv("RABBITMQ_USER", "guest")
	pass := getEnv("RABBITMQ_PASS", "guest")

	url := fmt.Sprintf("amqp://%s:%s@%s:%s/", user, pass, host, port)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		settlementQueue, // name
		true,            // durable
		false,           // delete when unused
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	logrus.Info("RabbitMQ events service initialized")
	return &EventsService{conn: conn, channel: channel}, nil
}

// Publish publishes a typed event to the settlement queue. Safe to call on a
// nil service (when RabbitMQ is unavailable the server runs without events).
func (s *EventsService) Publish(eventType string, payload map[string]interface{}) {
	if s == nil || s.channel == nil {
		return
	}

	message := map[string]interface{}{
		"event":       eventType,
		"occurred_at": time.Now().UTC().Format(time.RFC3339),
		"payload":     payload,
	}

	body, err := json.Marshal(message)
	if err != nil {
		logrus.Warnf("Failed to marshal %s event: %v", eventType, err)
		return
	}

	err = s.channel.Publish(
		"",              // exchange
		settlementQueue, // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		logrus.Warnf("Failed to publish %s event: %v", eventType, err)
		return
	}

	logrus.Debugf("Published %s event", eventType)
}

// Close closes the RabbitMQ connection
func (s *EventsService) Close() error {
	if s == nil {
		return nil
	}
	if s.channel != nil {
		if err := s.channel.Close(); err != nil {
			logrus.Warnf("Error closing RabbitMQ channel: %v", err)
		}
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
