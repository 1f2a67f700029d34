package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	mrkdwnify "github.com/riverfjs/mrkdwnify-go"
	"github.com/riverfjs/mrkdwnify-go/internal/config"
	"github.com/riverfjs/mrkdwnify-go/internal/slackpost"
)

// RootOptions holds global flags and state shared by all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	// Populated by PersistentPreRunE.
	Config *config.Config
	Log    zerolog.Logger

	// NewClient builds the Slack client for post; tests replace it.
	NewClient func(token string) slackpost.Client
}

// NewRootCommand creates the root command for the mrkdwnify CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{
		NewClient: func(token string) slackpost.Client { return slack.New(token) },
	})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mrkdwnify",
		Short: "Convert Markdown to Slack mrkdwn",
		Long: `Convert Markdown (and the simple HTML language models often emit) to
Slack mrkdwn, inspect Markdown structure, or post the converted text to a channel.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.Config = cfg

			level := cfg.LogLevel()
			if opts.Verbose {
				level = zerolog.DebugLevel
			}
			opts.Log = newLogger(cmd.ErrOrStderr(), level)
			mrkdwnify.SetLogger(opts.Log)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to TOML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewPostCommand(opts))

	return cmd
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Str("component", "mrkdwnify").
		Logger()
}

// readInput reads the single optional file argument, or stdin when it is
// absent or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
