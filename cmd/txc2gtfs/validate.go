package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/transitkit/txc-gtfs/gtfsfeed"
	"github.com/transitkit/txc-gtfs/validation"
)

func newValidateCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate <gtfs-path>",
		Short: "Validate a GTFS feed directory or ZIP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportFormat, err := parseReportFormat(format)
			if err != nil {
				return err
			}
			return runValidate(cmd, args[0], reportFormat)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Report format: text, json, markdown")

	return cmd
}

func parseReportFormat(s string) (validation.ReportFormat, error) {
	switch s {
	case "text":
		return validation.FormatText, nil
	case "json":
		return validation.FormatJSON, nil
	case "markdown":
		return validation.FormatMarkdown, nil
	default:
		return 0, fmt.Errorf("unknown --format %q: want text, json, or markdown", s)
	}
}

func runValidate(cmd *cobra.Command, gtfsPath string, format validation.ReportFormat) error {
	feed, err := gtfsfeed.OpenLazy(gtfsPath)
	if err != nil {
		return errors.Wrapf(err, "opening %s", gtfsPath)
	}
	defer feed.Close()

	report, err := validation.CheckFeed(feed)

	reporter := validation.NewReporter()
	if repErr := reporter.GenerateReport(report, format, cmd.OutOrStdout()); repErr != nil {
		return repErr
	}

	if err != nil {
		return err
	}
	return nil
}
