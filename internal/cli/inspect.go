package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mrkdwnify "github.com/riverfjs/mrkdwnify-go"
)

// ValidFormats defines the allowed inspect output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Count the Markdown constructs in a document",
		Long: `Parse Markdown (GitHub flavored) and report how many headings, emphasis
spans, links, code blocks, tables and HTML fragments it contains.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			report := mrkdwnify.Inspect(input)
			rootOpts.Log.Debug().Int("bytes", len(input)).Msg("inspected")
			return writeReport(cmd.OutOrStdout(), format, report)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json|yaml)")

	return cmd
}

func writeReport(w io.Writer, format string, report mrkdwnify.Report) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		rows := []struct {
			name  string
			count int
		}{
			{"headings", report.Headings},
			{"bold", report.Bold},
			{"italic", report.Italic},
			{"strikethrough", report.Strikethrough},
			{"links", report.Links},
			{"images", report.Images},
			{"code spans", report.CodeSpans},
			{"code blocks", report.CodeBlocks},
			{"tables", report.Tables},
			{"list items", report.ListItems},
			{"blockquotes", report.Blockquotes},
			{"raw html", report.RawHTML},
		}
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, "%-14s %d\n", r.name, r.count); err != nil {
				return err
			}
		}
		if len(report.Languages) > 0 {
			_, err := fmt.Fprintf(w, "%-14s %s\n", "languages", strings.Join(report.Languages, ", "))
			return err
		}
		return nil
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
