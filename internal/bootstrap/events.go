package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GielinorRush_Go/internal/config"
	"github.com/osse101/GielinorRush_Go/internal/discord"
	"github.com/osse101/GielinorRush_Go/internal/event"
	"github.com/osse101/GielinorRush_Go/internal/metrics"
)

// InitializeEventSystem creates the event bus and the resilient publisher
// the treasure service publishes through. Failed deliveries are retried with
// exponential backoff and finally written to the dead-letter file.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(bus, cfg.EventMaxRetries, cfg.EventRetryDelay, cfg.EventDeadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)

	return bus, publisher, nil
}

// RegisterEventHandlers subscribes the metrics collector and, when a webhook
// is configured, the Discord announcer. The returned notifier is nil when
// announcements are disabled.
func RegisterEventHandlers(bus event.Bus, cfg *config.Config) (*discord.Notifier, error) {
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if cfg.DiscordWebhookURL == "" {
		slog.Info(LogMsgDiscordNotifierDisabled)
		return nil, nil
	}

	// Webhook calls need no bot token
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscord, err)
	}
	notifier, err := discord.NewNotifier(session, cfg.DiscordWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDiscord, err)
	}
	notifier.Register(bus)
	slog.Info(LogMsgDiscordNotifierRegistered)

	return notifier, nil
}
