// Package notify delivers e-mail notifications outside the request path.
//
// Callers build an Email, usually through Mailer, and hand it to a
// Dispatcher. The Dispatcher queues it in memory and a pool of workers
// publishes it through a Publisher: the log publisher for development or
// JetStream for a mail relay that consumes the stream.
package notify

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrQueueFull is returned when an e-mail cannot be queued without blocking.
var ErrQueueFull = errors.New("notification queue is full")

// Email is a rendered message ready for delivery.
type Email struct {
	ID        uuid.UUID `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Text      string    `json:"text"`
	HTML      string    `json:"html"`
	CreatedAt time.Time `json:"created_at"`
}
