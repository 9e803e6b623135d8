package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

// NATSConfig configures the JetStream publisher.
type NATSConfig struct {
	URL           string
	Subject       string
	StreamName    string
	MaxReconnects int
	ReconnectWait time.Duration
	// MaxAge is how long undelivered e-mails are retained in the stream.
	MaxAge time.Duration
	// DuplicateWindow deduplicates republished e-mails by id.
	DuplicateWindow time.Duration
}

// DefaultNATSConfig returns defaults for everything but the connection target.
func DefaultNATSConfig(url, subject, stream string) NATSConfig {
	return NATSConfig{
		URL:             url,
		Subject:         subject,
		StreamName:      stream,
		MaxReconnects:   -1,
		ReconnectWait:   2 * time.Second,
		MaxAge:          72 * time.Hour,
		DuplicateWindow: 10 * time.Minute,
	}
}

// NATSPublisher publishes e-mails to a JetStream stream.
type NATSPublisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	cfg    NATSConfig
	logger *zap.SugaredLogger
}

// NewNATSPublisher connects to NATS and makes sure the stream exists.
func NewNATSPublisher(ctx context.Context, cfg NATSConfig, logger *zap.SugaredLogger) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("fantasy-league-notify"),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warnw("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Infow("NATS reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			logger.Errorw("NATS error", "error", err)
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	p := &NATSPublisher{nc: nc, js: js, cfg: cfg, logger: logger}
	if err := p.ensureStream(ctx); err != nil {
		nc.Close()
		return nil, fmt.Errorf("ensure stream: %w", err)
	}
	return p, nil
}

func (p *NATSPublisher) streamConfig() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:        p.cfg.StreamName,
		Description: "Outgoing e-mail notifications",
		Subjects:    []string{p.cfg.Subject},
		Retention:   jetstream.WorkQueuePolicy,
		MaxAge:      p.cfg.MaxAge,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Duplicates:  p.cfg.DuplicateWindow,
	}
}

func (p *NATSPublisher) ensureStream(ctx context.Context) error {
	sc := p.streamConfig()
	if _, err := p.js.CreateOrUpdateStream(ctx, sc); err != nil {
		return err
	}
	p.logger.Infow("JetStream stream ready", "stream", sc.Name, "subject", p.cfg.Subject)
	return nil
}

// Publish sends the e-mail and waits for the stream acknowledgement.
func (p *NATSPublisher) Publish(ctx context.Context, email Email) error {
	msg, err := newMsg(p.cfg.Subject, email)
	if err != nil {
		return err
	}

	ack, err := p.js.PublishMsg(ctx, msg,
		jetstream.WithMsgID(email.ID.String()),
		jetstream.WithExpectStream(p.cfg.StreamName),
	)
	if err != nil {
		return fmt.Errorf("publish to JetStream: %w", err)
	}

	p.logger.Debugw("email published",
		"email_id", email.ID.String(),
		"stream", ack.Stream,
		"sequence", ack.Sequence,
		"duplicate", ack.Duplicate)
	return nil
}

// Close drains the connection.
func (p *NATSPublisher) Close() error {
	if p.nc == nil {
		return nil
	}
	return p.nc.Drain()
}

func newMsg(subject string, email Email) (*nats.Msg, error) {
	data, err := json.Marshal(email)
	if err != nil {
		return nil, fmt.Errorf("marshal email: %w", err)
	}

	msg := nats.NewMsg(subject)
	msg.Data = data
	msg.Header.Set("Email-ID", email.ID.String())
	msg.Header.Set("Email-To", email.To)
	msg.Header.Set("Content-Type", "application/json")
	return msg, nil
}
