package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/fantasy_league/pkg/retry"
)

// DispatcherConfig configures the in-process delivery queue.
type DispatcherConfig struct {
	QueueSize   int
	Workers     int
	MaxAttempts int
	RetryDelay  time.Duration
	// PublishTimeout bounds a single publish attempt.
	PublishTimeout time.Duration
}

// Dispatcher queues e-mails and publishes them from background workers.
// Enqueue never blocks: when the queue is full the e-mail is dropped and
// the caller is told so.
type Dispatcher struct {
	publisher Publisher
	cfg       DispatcherConfig
	logger    *zap.SugaredLogger

	queue chan Email

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher. Call Start before enqueueing.
func NewDispatcher(publisher Publisher, cfg DispatcherConfig, logger *zap.SugaredLogger) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 10 * time.Second
	}

	return &Dispatcher{
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		queue:     make(chan Email, cfg.QueueSize),
	}
}

// Start launches the workers.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return errors.New("dispatcher is already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.running = true

	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go d.work(ctx, i)
	}

	d.logger.Infow("notification dispatcher started",
		"workers", d.cfg.Workers,
		"queue_size", d.cfg.QueueSize)
	return nil
}

// Stop stops accepting e-mails, delivers what is already queued and waits
// for the workers to exit. It returns ctx.Err() if ctx expires first.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return nil
	}
	d.running = false
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		d.logger.Info("notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}

// Running reports whether the dispatcher accepts e-mails.
func (d *Dispatcher) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Enqueue queues an e-mail for delivery. It returns ErrQueueFull when the
// queue has no room and an error when the dispatcher is not running.
func (d *Dispatcher) Enqueue(email Email) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return errors.New("dispatcher is not running")
	}

	select {
	case d.queue <- email:
		return nil
	default:
		d.logger.Warnw("notification queue full, dropping email",
			"email_id", email.ID.String(),
			"to", email.To)
		return ErrQueueFull
	}
}

func (d *Dispatcher) work(ctx context.Context, id int) {
	defer d.wg.Done()

	for email := range d.queue {
		d.deliver(ctx, email, id)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, email Email, worker int) {
	cfg := retry.NATSConfig(d.cfg.MaxAttempts, d.cfg.RetryDelay)
	cfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		d.logger.Warnw("email delivery failed, retrying",
			"worker", worker,
			"email_id", email.ID.String(),
			"attempt", attempt,
			"delay", delay,
			"error", err)
	}

	err := retry.Do(ctx, cfg, func() error {
		pubCtx, cancel := context.WithTimeout(ctx, d.cfg.PublishTimeout)
		defer cancel()
		return d.publisher.Publish(pubCtx, email)
	})
	if err != nil {
		d.logger.Errorw("failed to deliver email",
			"worker", worker,
			"email_id", email.ID.String(),
			"to", email.To,
			"error", err)
		return
	}

	d.logger.Debugw("email delivered",
		"worker", worker,
		"email_id", email.ID.String())
}
