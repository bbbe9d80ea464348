package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/transitkit/txc-gtfs/converter"
	"github.com/transitkit/txc-gtfs/gtfsfeed"
	"github.com/transitkit/txc-gtfs/txcparser"
)

func newConvertCmd() *cobra.Command {
	var (
		region        string
		includeShapes bool
		calendarStart string
		calendarEnd   string
		agencyTZ      string
	)

	cmd := &cobra.Command{
		Use:   "convert <txc-path> <out-dir-or-zip>",
		Short: "Convert a TransXChange document to a GTFS feed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := converter.ConversionOptions{
				Region:                region,
				IncludeShapes:         includeShapes,
				DefaultAgencyTimezone: agencyTZ,
			}
			if calendarStart != "" {
				t, err := time.Parse("2006-01-02", calendarStart)
				if err != nil {
					return fmt.Errorf("parsing --calendar-start: %w", err)
				}
				opts.CalendarStart = &t
			}
			if calendarEnd != "" {
				t, err := time.Parse("2006-01-02", calendarEnd)
				if err != nil {
					return fmt.Errorf("parsing --calendar-end: %w", err)
				}
				opts.CalendarEnd = &t
			}
			return runConvert(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "Bank holiday region for OperatingProfile expansion (england, scotland, wales, northern_ireland)")
	cmd.Flags().BoolVar(&includeShapes, "shapes", false, "Generate shapes.txt from stop coordinates and RunTime/distance")
	cmd.Flags().StringVar(&calendarStart, "calendar-start", "", "Clamp every generated calendar window's start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&calendarEnd, "calendar-end", "", "Clamp every generated calendar window's end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&agencyTZ, "agency-timezone", "", "agency_timezone for every agency (default Europe/London)")

	return cmd
}

func runConvert(cmd *cobra.Command, txcPath, outPath string, opts converter.ConversionOptions) error {
	logger := runLogger("convert")

	f, err := os.Open(txcPath)
	if err != nil {
		return errors.Wrapf(err, "opening %s", txcPath)
	}
	defer f.Close()

	doc, warnings, err := txcparser.New(logger).Parse(f)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", txcPath)
	}

	result, err := converter.Convert(doc, opts, logger)
	if err != nil {
		return err
	}

	if strings.HasSuffix(outPath, ".zip") {
		err = gtfsfeed.WriteZip(result.Feed, outPath)
	} else {
		err = gtfsfeed.WriteDir(result.Feed, outPath)
	}
	if err != nil {
		return errors.Wrapf(err, "writing %s", outPath)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "converted %s -> %s\n", txcPath, outPath)
	fmt.Fprintf(out, "  agencies=%d stops=%d routes=%d trips=%d stop_times=%d calendars=%d shapes=%d\n",
		result.Stats.Agencies, result.Stats.Stops, result.Stats.Routes,
		result.Stats.Trips, result.Stats.StopTimes, result.Stats.Calendars, result.Stats.Shapes)
	if result.Stats.SkippedJourneys > 0 {
		fmt.Fprintf(out, "  skipped %d vehicle journey(s) with unresolved pattern/service\n", result.Stats.SkippedJourneys)
	}
	fmt.Fprintf(out, "  %d parse warning(s), %d conversion warning(s)\n", len(warnings), len(result.Warnings))

	return nil
}
