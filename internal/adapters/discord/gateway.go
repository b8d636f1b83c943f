package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"github.com/stoik/link-guard/internal/domain"
)

// Intents needed to read message content in guilds and DMs
const Intents = discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

// MessageHandler consumes chat messages received by the gateway
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg domain.Message) []domain.Warning
}

// Gateway holds one Discord session per shard
type Gateway struct {
	sessions []*discordgo.Session
	log      *logrus.Logger
}

// NewGateway prepares shardCount sessions for token without connecting
func NewGateway(token string, shardCount int, log *logrus.Logger) (*Gateway, error) {
	if token == "" {
		return nil, errors.New("discord: empty token")
	}
	if shardCount < 1 {
		return nil, fmt.Errorf("discord: invalid shard count %d", shardCount)
	}

	sessions := make([]*discordgo.Session, 0, shardCount)
	for id := 0; id < shardCount; id++ {
		s, err := discordgo.New("Bot " + token)
		if err != nil {
			return nil, fmt.Errorf("discord: failed to create session for shard %d: %w", id, err)
		}
		s.ShardID = id
		s.ShardCount = shardCount
		s.Identify.Intents = Intents
		sessions = append(sessions, s)
	}

	return &Gateway{sessions: sessions, log: log}, nil
}

// Notifier returns a notifier sending through the first shard's session
//
// Channel messages go over REST, so any shard can deliver to any channel.
func (g *Gateway) Notifier() *Notifier {
	return NewNotifier(g.sessions[0])
}

// Run connects every shard, dispatches MessageCreate events to handler and
// blocks until ctx is canceled
func (g *Gateway) Run(ctx context.Context, handler MessageHandler) error {
	for _, s := range g.sessions {
		s.AddHandler(g.onReady)
		s.AddHandler(g.onMessageCreate(ctx, handler))
	}

	opened := make([]*discordgo.Session, 0, len(g.sessions))
	defer func() {
		for _, s := range opened {
			if err := s.Close(); err != nil {
				g.log.WithError(err).WithField("shard", s.ShardID).Warn("discord: failed to close session")
			}
		}
	}()

	for _, s := range g.sessions {
		if err := s.Open(); err != nil {
			return fmt.Errorf("discord: failed to open shard %d: %w", s.ShardID, err)
		}
		opened = append(opened, s)
	}

	g.log.WithField("shards", len(g.sessions)).Info("discord gateway started")
	<-ctx.Done()
	g.log.Info("discord gateway stopping")
	return nil
}

func (g *Gateway) onReady(s *discordgo.Session, r *discordgo.Ready) {
	g.log.WithField("shard", s.ShardID).Infof("%s is connected!", r.User.Username)
}

// onMessageCreate returns the MessageCreate handler passing events to handler
func (g *Gateway) onMessageCreate(ctx context.Context, handler MessageHandler) func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		handler.HandleMessage(ctx, toMessage(m))
	}
}

// toMessage converts a gateway event into the platform-neutral message
func toMessage(m *discordgo.MessageCreate) domain.Message {
	msg := domain.Message{
		ID:         m.ID,
		ChannelID:  m.ChannelID,
		GuildID:    m.GuildID,
		Content:    m.Content,
		ReceivedAt: m.Timestamp,
	}
	if m.Author != nil {
		msg.AuthorID = m.Author.ID
		msg.AuthorIsBot = m.Author.Bot
	}
	return msg
}
