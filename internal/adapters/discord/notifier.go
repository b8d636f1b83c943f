package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// Notifier implements ports.Notifier by posting channel messages
type Notifier struct {
	session *discordgo.Session
}

// NewNotifier creates a notifier sending through session
func NewNotifier(session *discordgo.Session) *Notifier {
	return &Notifier{session: session}
}

// Notify posts text to channelID
func (n *Notifier) Notify(ctx context.Context, channelID, text string) error {
	if _, err := n.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}
	return nil
}

// IsClientError reports whether err is a REST rejection specific to the
// request, such as missing permissions or an unknown channel
//
// Rate limiting (429) is not a client error here: it reflects the API's state,
// not the channel's.
func IsClientError(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Response == nil {
		return false
	}
	code := restErr.Response.StatusCode
	return code >= 400 && code < 500 && code != http.StatusTooManyRequests
}
