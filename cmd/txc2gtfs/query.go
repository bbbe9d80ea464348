package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/transitkit/txc-gtfs/filter"
	"github.com/transitkit/txc-gtfs/gtfsfeed"
	"github.com/transitkit/txc-gtfs/model"
)

func newQueryCmd() *cobra.Command {
	var route, trip, stop, date string

	cmd := &cobra.Command{
		Use:   "query <gtfs-path>",
		Short: "Run an index-backed lookup over a GTFS feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args[0], queryOptions{Route: route, Trip: trip, Stop: stop, Date: date})
		},
	}

	cmd.Flags().StringVar(&route, "route", "", "List trips and stops served by this route_id")
	cmd.Flags().StringVar(&trip, "trip", "", "List stop_times for this trip_id, in stop_sequence order")
	cmd.Flags().StringVar(&stop, "stop", "", "List routes and trips calling at this stop_id")
	cmd.Flags().StringVar(&date, "date", "", "List trips active on this date (YYYY-MM-DD)")

	return cmd
}

type queryOptions struct {
	Route, Trip, Stop, Date string
}

func runQuery(cmd *cobra.Command, gtfsPath string, opts queryOptions) error {
	if opts.Route == "" && opts.Trip == "" && opts.Stop == "" && opts.Date == "" {
		return fmt.Errorf("at least one of --route, --trip, --stop, --date is required")
	}

	feed, err := gtfsfeed.OpenLazy(gtfsPath)
	if err != nil {
		return errors.Wrapf(err, "opening %s", gtfsPath)
	}
	defer feed.Close()

	f := filter.New(feed)
	out := cmd.OutOrStdout()

	if opts.Trip != "" {
		writeStopTimes(out, f.StopTimesForTrip(opts.Trip))
	}
	if opts.Route != "" {
		writeTrips(out, f.TripsForRoute(opts.Route))
	}
	if opts.Stop != "" {
		writeRoutes(out, f.RoutesServingStop(opts.Stop))
	}
	if opts.Date != "" {
		trips, err := f.TripsOnDate(opts.Date)
		if err != nil {
			return err
		}
		writeTrips(out, trips)
	}

	return nil
}

func writeTrips(out interface{ Write([]byte) (int, error) }, trips []*model.Trip) {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "trip_id\troute_id\tservice_id\ttrip_headsign")
	for _, t := range trips {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.TripID, t.RouteID, t.ServiceID, t.TripHeadsign)
	}
	w.Flush()
}

func writeStopTimes(out interface{ Write([]byte) (int, error) }, rows []*model.StopTime) {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "trip_id\tstop_sequence\tstop_id\tarrival\tdeparture")
	for _, st := range rows {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			st.TripID, st.StopSequence, st.StopID,
			gtfsfeed.FormatTimeOfDay(st.ArrivalTime), gtfsfeed.FormatTimeOfDay(st.DepartureTime))
	}
	w.Flush()
}

func writeRoutes(out interface{ Write([]byte) (int, error) }, routes []*model.GtfsRoute) {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "route_id\tshort_name\tlong_name\troute_type")
	for _, r := range routes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", r.RouteID, r.RouteShortName, r.RouteLongName, r.RouteType)
	}
	w.Flush()
}
