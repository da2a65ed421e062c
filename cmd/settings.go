package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ai_content_generator/settings"
)

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect or reset the stored settings",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the stored settings with the API key masked",
			RunE: func(cmd *cobra.Command, _ []string) error {
				backend, err := openBackend(opts.cfg)
				if err != nil {
					return err
				}
				defer backend.Close()
				printSettings(cmd.OutOrStdout(), settings.NewStore(backend).Load(cmd.Context()))
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Delete the stored settings so defaults apply",
			RunE: func(cmd *cobra.Command, _ []string) error {
				backend, err := openBackend(opts.cfg)
				if err != nil {
					return err
				}
				defer backend.Close()
				if err := settings.NewStore(backend).Reset(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), color.New(color.FgGreen).Sprint("Settings reset to defaults."))
				return nil
			},
		},
	)
	return cmd
}

func printSettings(w io.Writer, rec settings.Record) {
	label := color.New(color.FgCyan).SprintFunc()

	key := color.New(color.FgRed).Sprint("(not set)")
	if rec.HasCredential() {
		key = rec.Redacted().Credential
	}
	rows := []struct{ name, value string }{
		{"API key", key},
		{"Language", string(rec.Language)},
		{"Tone", string(rec.Tone)},
		{"Word count", strconv.Itoa(rec.WordCount)},
		{"H1 title prompt", rec.H1TitlePrompt},
		{"H2 count", strconv.Itoa(rec.H2Count)},
		{"H3 count", strconv.Itoa(rec.H3Count)},
		{"Include FAQ", strconv.FormatBool(rec.IncludeFAQ)},
		{"Custom prompt", rec.CustomPrompt},
		{"Meta description prompt", rec.MetaDescriptionPrompt},
		{"Slug prompt", rec.SlugPrompt},
		{"Focus keyword prompt", rec.FocusKeywordPrompt},
		{"Internal links", strconv.Itoa(rec.InternalLinkCount)},
		{"External links", strconv.Itoa(rec.ExternalLinkCount)},
		{"Image alt text prompt", rec.ImageAltTextPrompt},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s: %s\n", label(r.name), r.value)
	}
}
