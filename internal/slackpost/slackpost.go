// Package slackpost posts converted messages to a Slack channel.
package slackpost

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/slack-go/slack"

	mrkdwnify "github.com/riverfjs/mrkdwnify-go"
)

var (
	ErrNoChannel    = errors.New("slackpost: channel not configured")
	ErrNoToken      = errors.New("slackpost: bot token not configured")
	ErrEmptyMessage = errors.New("slackpost: message is empty")
)

// Client is the part of *slack.Client the poster needs.
type Client interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Config controls where and how messages are posted.
type Config struct {
	Channel         string // channel name ("#general") or ID
	ConvertMarkdown bool   // run content through mrkdwnify before posting
	Render          *mrkdwnify.RenderConfig
}

// Result mirrors the fields Slack returns for chat.postMessage.
type Result struct {
	OK      bool   `json:"ok"`
	Channel string `json:"channel"`
	TS      string `json:"ts"`
}

type Poster struct {
	client Client
	cfg    Config
	log    zerolog.Logger
}

// New creates a Poster on top of an existing client.
func New(client Client, cfg Config, log zerolog.Logger) (*Poster, error) {
	if client == nil {
		return nil, fmt.Errorf("slackpost: client is nil")
	}
	if strings.TrimSpace(cfg.Channel) == "" {
		return nil, ErrNoChannel
	}
	return &Poster{
		client: client,
		cfg:    cfg,
		log:    log.With().Str("component", "slackpost").Str("channel", cfg.Channel).Logger(),
	}, nil
}

// NewWithToken creates a Poster backed by a slack-go client for token.
func NewWithToken(token string, cfg Config, log zerolog.Logger) (*Poster, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	return New(slack.New(token), cfg, log)
}

// Body returns the text that Post would send for content.
func (p *Poster) Body(content string) string {
	if !p.cfg.ConvertMarkdown {
		return content
	}
	return mrkdwnify.ConvertWithConfig(content, p.cfg.Render)
}

// Post sends content to the configured channel. A non-empty threadTS posts
// the message as a thread reply.
func (p *Poster) Post(ctx context.Context, content string, threadTS string) (*Result, error) {
	body := p.Body(content)
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyMessage
	}

	channel, ts, err := p.client.PostMessageContext(ctx, p.cfg.Channel, MsgOptions(body, threadTS)...)
	if err != nil {
		p.log.Error().Err(err).Msg("Failed to post message")
		return nil, fmt.Errorf("slackpost: post to %s: %w", p.cfg.Channel, err)
	}

	p.log.Debug().
		Str("ts", ts).
		Str("thread_ts", threadTS).
		Int("bytes", len(body)).
		Msg("Message posted")
	return &Result{OK: true, Channel: channel, TS: ts}, nil
}

// MsgOptions builds the chat.postMessage options for an already converted
// body. Text is sent unescaped so mrkdwn links and emphasis survive.
func MsgOptions(body string, threadTS string) []slack.MsgOption {
	opts := []slack.MsgOption{
		slack.MsgOptionText(body, false),
	}
	if threadTS != "" {
		opts = append(opts, slack.MsgOptionTS(threadTS))
	}
	return opts
}
