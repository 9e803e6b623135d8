package config

import (
	"fmt"
	"time"
)

// Notification backends.
const (
	NotifyBackendLog  = "log"
	NotifyBackendNATS = "nats"
)

// NotifyConfig holds notification dispatch configuration.
type NotifyConfig struct {
	// Backend selects the publisher: "log" or "nats".
	Backend string
	// NATSURL is the NATS server URL, used by the nats backend.
	NATSURL string
	// Subject is the NATS subject outgoing e-mails are published on.
	Subject string
	// StreamName is the JetStream stream that captures Subject.
	StreamName string
	// QueueSize is the capacity of the in-process dispatch queue.
	QueueSize int
	// Workers is the number of goroutines draining the queue.
	Workers int
	// MaxAttempts is how many times a single e-mail publish is tried.
	MaxAttempts int
	// RetryDelay is the initial backoff between publish attempts.
	RetryDelay time.Duration
	// FromAddress is the sender address of outgoing e-mails.
	FromAddress string
}

// LoadNotifyConfigFromEnv loads notification configuration from environment variables.
func LoadNotifyConfigFromEnv() NotifyConfig {
	return NotifyConfig{
		Backend:     GetEnv("NOTIFY_BACKEND", NotifyBackendLog),
		NATSURL:     GetEnv("NATS_URL", "nats://127.0.0.1:4222"),
		Subject:     GetEnv("NOTIFY_SUBJECT", "notifications.email"),
		StreamName:  GetEnv("NOTIFY_STREAM", "NOTIFICATIONS"),
		QueueSize:   GetEnvInt("NOTIFY_QUEUE_SIZE", 256),
		Workers:     GetEnvInt("NOTIFY_WORKERS", 2),
		MaxAttempts: GetEnvInt("NOTIFY_MAX_ATTEMPTS", 3),
		RetryDelay:  GetEnvDuration("NOTIFY_RETRY_DELAY", 500*time.Millisecond),
		FromAddress: GetEnv("NOTIFY_FROM", "no-reply@fantasy-league.local"),
	}
}

// Validate validates notification configuration.
func (c NotifyConfig) Validate() error {
	switch c.Backend {
	case NotifyBackendLog:
	case NotifyBackendNATS:
		if c.NATSURL == "" {
			return fmt.Errorf("NATS_URL is required for the nats backend")
		}
	default:
		return fmt.Errorf("invalid NOTIFY_BACKEND: %s (must be: log, nats)", c.Backend)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("QueueSize must be greater than 0")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("Workers must be greater than 0")
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("MaxAttempts must be greater than 0")
	}
	return nil
}
