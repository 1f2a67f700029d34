package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverfjs/mrkdwnify-go/internal/slackpost"
)

type postOptions struct {
	channel string
	thread  string
	raw     bool
}

// NewPostCommand creates the post command.
func NewPostCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &postOptions{}

	cmd := &cobra.Command{
		Use:   "post [file]",
		Short: "Convert Markdown and post it to a Slack channel",
		Long: `Convert Markdown from a file (or stdin) and post it with chat.postMessage.

The bot token is read from slack.bot_token in the config file or from the
SLACK_BOT_TOKEN environment variable.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config
			if cfg.Slack.BotToken == "" {
				return slackpost.ErrNoToken
			}

			channel := cfg.Slack.Channel
			if opts.channel != "" {
				channel = opts.channel
			}

			poster, err := slackpost.New(rootOpts.NewClient(cfg.Slack.BotToken), slackpost.Config{
				Channel:         channel,
				ConvertMarkdown: cfg.Slack.ConvertMarkdown && !opts.raw,
				Render:          cfg.RenderOptions(),
			}, rootOpts.Log)
			if err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			result, err := poster.Post(cmd.Context(), input, opts.thread)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "posted to %s at %s\n", result.Channel, result.TS)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.channel, "channel", "", "channel name or ID (default from config)")
	cmd.Flags().StringVar(&opts.thread, "thread", "", "thread timestamp to reply in")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "post the input without converting it")

	return cmd
}
