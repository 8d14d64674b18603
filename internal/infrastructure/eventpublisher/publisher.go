package eventpublisher

import (
	"context"
	"log/slog"
	"time"

	"github.com/kindredhq/ledgerd/internal/domain"
	"github.com/kindredhq/ledgerd/internal/infrastructure/metrics"
	"github.com/kindredhq/ledgerd/internal/usecase"
)

// Dispatcher polls the event log and delivers balance change events to a
// subscriber in sequence order. The subscriber's cursor lives in a
// usecase.CheckpointStore, so delivery resumes after the last acknowledged
// event on restart. Delivery is at-least-once: a crash between Handle and the
// checkpoint write redelivers that event.
type Dispatcher struct {
	log        usecase.EventLog
	checkpoint usecase.CheckpointStore
	subscriber Subscriber
	logger     *slog.Logger
	metrics    *metrics.Metrics
	batchSize  int
	interval   time.Duration
}

// Subscriber consumes balance change events. Handle is called once per event
// in sequence order; returning an error halts the batch and the event is
// redelivered on the next poll.
type Subscriber interface {
	Name() string
	Handle(ctx context.Context, event *domain.BalanceChangeEvent) error
}

// Config for Dispatcher.
type Config struct {
	Log        usecase.EventLog
	Checkpoint usecase.CheckpointStore
	Subscriber Subscriber
	Logger     *slog.Logger
	Metrics    *metrics.Metrics // optional
	BatchSize  int              // Number of events to fetch per batch
	Interval   time.Duration    // Polling interval
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(cfg Config) *Dispatcher {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.Interval == 0 {
		cfg.Interval = 1 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Dispatcher{
		log:        cfg.Log,
		checkpoint: cfg.Checkpoint,
		subscriber: cfg.Subscriber,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		batchSize:  cfg.BatchSize,
		interval:   cfg.Interval,
	}
}

// Start begins the delivery worker. It runs continuously until the context
// is cancelled.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.logger.Info("event dispatcher started",
		slog.String("subscriber", d.subscriber.Name()),
		slog.Int("batch_size", d.batchSize),
		slog.Duration("interval", d.interval))

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	// Deliver immediately on start
	if err := d.deliverBatch(ctx); err != nil {
		d.logger.Error("error delivering events on start", slog.String("error", err.Error()))
	}

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("event dispatcher shutting down",
				slog.String("subscriber", d.subscriber.Name()))
			return ctx.Err()
		case <-ticker.C:
			if err := d.deliverBatch(ctx); err != nil {
				d.logger.Error("error delivering events", slog.String("error", err.Error()))
			}
		}
	}
}

// deliverBatch reads the next batch after the subscriber's cursor and hands
// each event over in order. The cursor only advances past events whose Handle
// returned nil, so a failure stops the batch without skipping anything.
func (d *Dispatcher) deliverBatch(ctx context.Context) error {
	name := d.subscriber.Name()

	cursor, err := d.checkpoint.Get(ctx, name)
	if err != nil {
		return err
	}

	events, _, err := d.log.ReadFrom(ctx, cursor, d.batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		d.observeLag(ctx, cursor)
		return nil
	}

	for _, event := range events {
		if err := d.subscriber.Handle(ctx, event); err != nil {
			d.logger.Error("failed to deliver event",
				slog.String("subscriber", name),
				slog.String("event_id", event.ID),
				slog.Int64("sequence", event.Sequence),
				slog.String("error", err.Error()))
			break
		}

		cursor = event.Sequence

		if d.metrics != nil {
			d.metrics.EventsPublished.WithLabelValues(name).Inc()
		}
	}

	if err := d.checkpoint.Set(ctx, name, cursor); err != nil {
		return err
	}

	d.observeLag(ctx, cursor)

	return nil
}

// observeLag records how far the subscriber's cursor trails the log head.
func (d *Dispatcher) observeLag(ctx context.Context, cursor int64) {
	if d.metrics == nil {
		return
	}

	latest, err := d.log.LatestSequence(ctx)
	if err != nil {
		return
	}

	lag := latest - cursor
	if lag < 0 {
		lag = 0
	}

	d.metrics.PublishLag.Set(float64(lag))
}

// LogSubscriber logs each delivered event. It stands in for an external
// consumer in development and tests.
type LogSubscriber struct {
	name   string
	logger *slog.Logger
}

// NewLogSubscriber creates a new LogSubscriber.
func NewLogSubscriber(name string, logger *slog.Logger) *LogSubscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSubscriber{name: name, logger: logger}
}

// Name returns the subscriber name used for checkpointing.
func (s *LogSubscriber) Name() string {
	return s.name
}

// Handle logs the event.
func (s *LogSubscriber) Handle(ctx context.Context, event *domain.BalanceChangeEvent) error {
	s.logger.Info("balance changed",
		slog.Int64("sequence", event.Sequence),
		slog.String("event_id", event.ID),
		slog.String("transaction_id", event.TransactionID),
		slog.String("account_id", event.AccountID),
		slog.String("old_balance", event.OldBalance.String()),
		slog.String("new_balance", event.NewBalance.String()))

	return nil
}
