package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GielinorRush_Go/internal/domain"
	"github.com/osse101/GielinorRush_Go/internal/event"
)

// queueSize bounds announcements waiting for the webhook
const queueSize = 64

// WebhookExecutor is the part of *discordgo.Session the notifier needs
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts treasure hunt progress to a Discord channel webhook.
// Bus handlers only format and enqueue; a single worker does the HTTP calls
// so publishers never wait on Discord.
type Notifier struct {
	client    WebhookExecutor
	webhookID string
	token     string
	now       func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan *discordgo.MessageEmbed
	wg     sync.WaitGroup
}

// ParseWebhookURL splits https://discord.com/api/webhooks/{id}/{token}
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", ErrMsgInvalidWebhookURL, err)
	}
	rest, ok := strings.CutPrefix(u.Path, webhookPathPrefix)
	if !ok {
		return "", "", errors.New(ErrMsgInvalidWebhookURL)
	}
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.New(ErrMsgInvalidWebhookURL)
	}
	return parts[0], parts[1], nil
}

// NewNotifier creates a notifier for webhookURL and starts its worker
func NewNotifier(client WebhookExecutor, webhookURL string) (*Notifier, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	n := &Notifier{
		client:    client,
		webhookID: id,
		token:     token,
		now:       time.Now,
		queue:     make(chan *discordgo.MessageEmbed, queueSize),
	}
	n.wg.Add(1)
	go n.worker()
	return n, nil
}

// Register subscribes the notifier to every announced event type
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.MapGenerated, n.handleMapGenerated)
	bus.Subscribe(event.NodeCompleted, n.handleNodeCompleted)
	bus.Subscribe(event.NodeUncompleted, n.handleNodeUncompleted)
	bus.Subscribe(event.BuffApplied, n.handleBuffApplied)
	bus.Subscribe(event.InnPurchase, n.handleInnPurchase)
	bus.Subscribe(event.TeamAdjusted, n.handleTeamAdjusted)
	bus.Subscribe(event.EventClosed, n.handleEventClosed)
}

// Shutdown stops accepting announcements and waits for the queue to drain
func (n *Notifier) Shutdown(ctx context.Context) error {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Notifier) worker() {
	defer n.wg.Done()
	for embed := range n.queue {
		_, err := n.client.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
			Embeds: []*discordgo.MessageEmbed{embed},
		})
		if err != nil {
			slog.Error(LogMsgAnnouncementFailed, "title", embed.Title, "error", err)
			continue
		}
		slog.Debug(LogMsgAnnouncementSent, "title", embed.Title)
	}
}

// enqueue drops the announcement when the queue is full or shut down
func (n *Notifier) enqueue(embed *discordgo.MessageEmbed) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return false
	}

	embed.Timestamp = n.now().UTC().Format(time.RFC3339)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: FooterText}

	select {
	case n.queue <- embed:
		return true
	default:
		slog.Warn(LogMsgAnnouncementFailed, "title", embed.Title, "error", "queue full")
		return false
	}
}

// decode reads a typed payload, logging and skipping unreadable ones
func decode[T any](evt event.Event) (T, bool) {
	p, err := event.DecodePayload[T](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgPayloadUnreadable, "event_type", evt.Type, "error", err)
		return p, false
	}
	return p, true
}

func field(name, value string, inline bool) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline}
}

func (n *Notifier) handleMapGenerated(_ context.Context, evt event.Event) error {
	p, ok := decode[domain.MapGeneratedPayload](evt)
	if !ok {
		return nil
	}
	n.enqueue(&discordgo.MessageEmbed{
		Title:       TitleMapGenerated,
		Description: fmt.Sprintf("**%s** map v%d is live. Good luck, adventurers!", p.EventName, p.MapVersion),
		Color:       ColorBlurple,
		Fields: []*discordgo.MessageEmbedField{
			field("Nodes", fmt.Sprintf("%d", p.TotalNodes), true),
			field("Inns", fmt.Sprintf("%d", p.NumInns), true),
			field("Teams reset", fmt.Sprintf("%d", p.TeamsReset), true),
		},
	})
	return nil
}

func (n *Notifier) handleNodeCompleted(_ context.Context, evt event.Event) error {
	p, ok := decode[domain.NodeProgressPayload](evt)
	if !ok {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf(TitleNodeCompleted, p.TeamName, p.MapLocation),
		Color: ColorGreen,
		Fields: []*discordgo.MessageEmbedField{
			field("GP", formatGP(p.GP), true),
			field("Pot", formatGP(p.CurrentPot), true),
		},
	}
	if p.NodeType == domain.NodeTypeTreasure {
		embed.Title = fmt.Sprintf(TitleTreasureFound, p.TeamName)
		embed.Color = ColorGold
	}
	if len(p.Keys) > 0 {
		embed.Fields = append(embed.Fields, field("Keys", formatKeys(p.Keys), true))
	}
	if len(p.BuffsGained) > 0 {
		embed.Fields = append(embed.Fields, field("Buffs", formatBuffs(p.BuffsGained), false))
	}
	if len(p.Unlocked) > 0 {
		embed.Fields = append(embed.Fields, field("Paths opened", fmt.Sprintf("%d", len(p.Unlocked)), true))
	}
	n.enqueue(embed)
	return nil
}

func (n *Notifier) handleNodeUncompleted(_ context.Context, evt event.Event) error {
	p, ok := decode[domain.NodeProgressPayload](evt)
	if !ok {
		return nil
	}
	n.enqueue(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf(TitleNodeReverted, p.TeamName),
		Description: fmt.Sprintf("%s was marked incomplete.", p.MapLocation),
		Color:       ColorRed,
		Fields: []*discordgo.MessageEmbedField{
			field("Pot", formatGP(p.CurrentPot), true),
		},
	})
	return nil
}

func (n *Notifier) handleBuffApplied(_ context.Context, evt event.Event) error {
	p, ok := decode[domain.BuffAppliedPayload](evt)
	if !ok {
		return nil
	}
	n.enqueue(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf(TitleBuffApplied, p.TeamName, formatBuffType(p.BuffType)),
		Description: fmt.Sprintf("Objective reduced from **%d** to **%d**.", p.OriginalQuantity, p.ReducedQuantity),
		Color:       ColorBlurple,
	})
	return nil
}

func (n *Notifier) handleInnPurchase(_ context.Context, evt event.Event) error {
	p, ok := decode[domain.InnPurchasePayload](evt)
	if !ok {
		return nil
	}
	n.enqueue(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf(TitleInnPurchase, p.TeamName),
		Description: fmt.Sprintf("Bought **%s**.", p.RewardName),
		Color:       ColorGold,
		Fields: []*discordgo.MessageEmbedField{
			field("Keys spent", formatKeys(p.KeysSpent), true),
			field("Payout", formatGP(p.Payout), true),
			field("Pot", formatGP(p.CurrentPot), true),
		},
	})
	return nil
}

func (n *Notifier) handleTeamAdjusted(_ context.Context, evt event.Event) error {
	p, ok := decode[domain.TeamAdjustedPayload](evt)
	if !ok {
		return nil
	}
	n.enqueue(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf(TitleTeamAdjusted, p.TeamID),
		Description: fmt.Sprintf("%s: %s", p.Action, p.Detail),
		Color:       ColorGrey,
	})
	return nil
}

func (n *Notifier) handleEventClosed(_ context.Context, evt event.Event) error {
	p, ok := decode[domain.EventClosedPayload](evt)
	if !ok {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf(TitleEventClosed, p.EventName),
		Description: "No teams took part.",
		Color:       ColorGold,
	}
	if len(p.Standings) > 0 {
		embed.Description = fmt.Sprintf("**%s** takes the crown with %s.", p.Standings[0].Name, formatGP(p.Standings[0].CurrentPot))
		embed.Fields = append(embed.Fields, field("Standings", formatStandings(p.Standings, PodiumSize), false))
	}
	n.enqueue(embed)
	return nil
}
