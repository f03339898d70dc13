package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GielinorRush_Go/internal/logger"
)

// Publisher is what services depend on to emit events.
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with a background retry queue. Events that
// still fail after maxRetries, or that overflow the queue, go to the
// dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("opening dead-letter file: %w", err)
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// PublishWithRetry publishes synchronously once. A failure is queued for
// background retries so the caller never blocks on a broken subscriber.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)

	select {
	case p.retryQueue <- retryEntry{event: event, attempts: 0, lastErr: err}:
	default:
		log.Error(LogMsgRetryQueueFull, "event_type", event.Type)
		p.writeDeadLetter(event, 1, err)
	}
}

// Publish satisfies Bus. It never returns an error.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.retry(entry)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

// retry keeps attempting one entry with exponential backoff.
func (p *ResilientPublisher) retry(entry retryEntry) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for entry.attempts < p.maxRetries {
		entry.attempts++

		select {
		case <-time.After(CalculateRetryDelay(p.retryDelay, entry.attempts)):
		case <-p.shutdown:
			// one last immediate try, then give up
			if err := p.bus.Publish(ctx, entry.event); err != nil {
				p.writeDeadLetter(entry.event, entry.attempts, err)
			}
			return
		}

		err := p.bus.Publish(ctx, entry.event)
		if err == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempts)
			return
		}
		entry.lastErr = err
		log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempts, "error", err)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts)
	p.writeDeadLetter(entry.event, entry.attempts, entry.lastErr)
}

func (p *ResilientPublisher) drain() {
	ctx := context.Background()
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			drained++
			if err := p.bus.Publish(ctx, entry.event); err != nil {
				p.writeDeadLetter(entry.event, entry.attempts+1, err)
			}
		default:
			if drained > 0 {
				logger.FromContext(ctx).Info(LogMsgQueueDrainedShutdown, "events", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, err error) {
	if p.deadLetter == nil {
		logger.FromContext(context.Background()).Error(LogMsgEventDroppedShutdown, "event_type", event.Type)
		return
	}
	if werr := p.deadLetter.Write(event, attempts, err); werr != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed, "error", werr)
	}
}

// Shutdown stops the worker after draining the queue. It returns an error if
// ctx expires first.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.shutdownOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.FromContext(ctx).Warn(LogMsgShutdownTimeout)
		return errors.Join(ctx.Err(), p.closeDeadLetter())
	}
	return p.closeDeadLetter()
}

func (p *ResilientPublisher) closeDeadLetter() error {
	if p.deadLetter == nil {
		return nil
	}
	return p.deadLetter.Close()
}
