package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message represents a chat message delivered by the gateway
type Message struct {
	ID          string    `json:"id"`
	ChannelID   string    `json:"channel_id"`
	GuildID     string    `json:"guild_id,omitempty"` // Empty for direct messages
	AuthorID    string    `json:"author_id"`
	AuthorIsBot bool      `json:"author_is_bot"`
	Content     string    `json:"content"`
	ReceivedAt  time.Time `json:"received_at"`
}

// Verdict is the outcome of checking one candidate link against the watchlist
//
// Host is empty when the link could not be parsed or its host is not a domain
// name. Lookalike is empty when no watchlist entry qualified.
type Verdict struct {
	Link      string `json:"link"`
	Host      string `json:"host,omitempty"`
	Lookalike string `json:"lookalike,omitempty"`
	Distance  int    `json:"distance"`
}

// Matched reports whether the link resembles a watchlisted domain
func (v Verdict) Matched() bool {
	return v.Lookalike != ""
}

// Warning represents a lookalike link reported back to a channel
//
// Warnings are kept for audit only. They are never consulted to suppress or
// deduplicate later warnings.
type Warning struct {
	ID            uuid.UUID `json:"id"`
	MessageID     string    `json:"message_id"`
	ChannelID     string    `json:"channel_id"`
	GuildID       string    `json:"guild_id,omitempty"`
	AuthorID      string    `json:"author_id"`
	Link          string    `json:"link"`
	Host          string    `json:"host"`
	Lookalike     string    `json:"lookalike"`
	Distance      int       `json:"distance"`
	Delivered     bool      `json:"delivered"`
	DeliveryError string    `json:"delivery_error,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Text renders the human-readable warning sent to the channel
func (w Warning) Text() string {
	return WarningText(w.Link, w.Lookalike)
}

// WarningText renders the channel message for a link resembling lookalike
func WarningText(link, lookalike string) string {
	return fmt.Sprintf("Warning, %s is not %s", link, lookalike)
}
