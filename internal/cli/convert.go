package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	mrkdwnify "github.com/riverfjs/mrkdwnify-go"
)

type convertOptions struct {
	bullet     string
	noBoundary bool
	nfc        bool
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert Markdown to mrkdwn",
		Long: `Convert Markdown from a file (or stdin) to Slack mrkdwn and print it.

Code blocks and inline code are kept verbatim, tables become code blocks,
headings become bold and list markers become bullets.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			render := rootOpts.Config.RenderOptions()
			if cmd.Flags().Changed("bullet") {
				render.Bullet = opts.bullet
			}
			if opts.noBoundary {
				render.WordBoundary = false
			}
			if opts.nfc {
				render.NormalizeUnicode = true
			}

			out := mrkdwnify.Convert(input, mrkdwnify.WithConfig(render))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.bullet, "bullet", "", "list bullet symbol (default from config)")
	cmd.Flags().BoolVar(&opts.noBoundary, "no-boundary", false, "do not insert zero-width spaces around emphasis")
	cmd.Flags().BoolVar(&opts.nfc, "nfc", false, "NFC-normalize input before converting")

	return cmd
}
