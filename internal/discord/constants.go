package discord

// Embed colors
const (
	ColorGold    = 0xFFD700
	ColorGreen   = 0x57F287
	ColorRed     = 0xED4245
	ColorBlurple = 0x5865F2
	ColorGrey    = 0x95A5A6
)

// Embed text
const (
	FooterText = "Gielinor Rush"

	TitleMapGenerated  = "The map has been drawn!"
	TitleNodeCompleted = "%s cleared %s"
	TitleTreasureFound = "%s found the treasure!"
	TitleNodeReverted  = "%s: completion reverted"
	TitleInnPurchase   = "%s visited the inn"
	TitleBuffApplied   = "%s used %s"
	TitleTeamAdjusted  = "Admin adjustment for team %s"
	TitleEventClosed   = "%s has ended"

	// PodiumSize is how many standings an event closed embed lists
	PodiumSize = 3
)

// Log messages
const (
	LogMsgAnnouncementSent   = "Discord announcement sent"
	LogMsgAnnouncementFailed = "Discord announcement failed"
	LogMsgPayloadUnreadable  = "Discord announcer could not read payload"
)

// Error messages
const (
	ErrMsgInvalidWebhookURL = "invalid discord webhook url"
)

// webhookPathPrefix precedes "{id}/{token}" in a webhook URL path
const webhookPathPrefix = "/api/webhooks/"
