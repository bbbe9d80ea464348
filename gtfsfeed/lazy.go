package gtfsfeed

import (
	"sync"

	"github.com/transitkit/txc-gtfs/ioutil"

	txcerrors "github.com/transitkit/txc-gtfs/errors"
	"github.com/transitkit/txc-gtfs/model"
)

// lazyCell guards the one-time fill of a single table, tracking whether
// the fill already ran so a *_count query can tell whether it would have
// to pay for a full parse or can answer from the fast line count instead.
type lazyCell struct {
	once sync.Once
	done bool
}

func (c *lazyCell) fill(fn func()) {
	c.once.Do(func() {
		fn()
		c.done = true
	})
}

// LazyFeed stats recognized files on Open and defers parsing each table
// until first access. Row counts for unparsed tables come from a fast
// line count rather than a full decode. Close releases the underlying ZIP
// archive, if any; it is a no-op for a directory-backed feed.
type LazyFeed struct {
	src     source
	present map[string]bool

	agenciesCell, stopsCell, routesCell, tripsCell, stopTimesCell lazyCell
	calendarsCell, calendarDatesCell, shapesCell                  lazyCell
	frequenciesCell, feedInfoCell                                 lazyCell

	agencies      []*model.Agency
	stops         []*model.Stop
	routes        []*model.GtfsRoute
	trips         []*model.Trip
	stopTimes     []*model.StopTime
	calendars     []*model.Calendar
	calendarDates []*model.CalendarDate
	shapes        []*model.AggregatedShape
	frequencies   []*model.Frequency
	feedInfo      *model.FeedInfo

	loadErr error

	countCacheMu sync.Mutex
	countCache   map[string]int
}

// OpenLazy opens path (a directory or ZIP archive), statting recognized
// files without parsing them.
func OpenLazy(path string) (*LazyFeed, error) {
	src, err := openSource(path)
	if err != nil {
		return nil, &txcerrors.GtfsFileNotFoundError{Path: path, MissingFiles: requiredFiles}
	}

	present := make(map[string]bool, len(allFiles))
	for _, name := range allFiles {
		rc, ok, err := src.open(name)
		if rc != nil {
			rc.Close()
		}
		present[name] = ok && err == nil
	}

	var missing []string
	for _, name := range requiredFiles {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		if zs, ok := src.(*zipSource); ok {
			zs.close()
		}
		return nil, &txcerrors.GtfsFileNotFoundError{Path: path, MissingFiles: missing}
	}

	return &LazyFeed{src: src, present: present, countCache: make(map[string]int)}, nil
}

// Close releases the underlying ZIP archive, if the feed was opened from
// one.
func (f *LazyFeed) Close() error {
	if zs, ok := f.src.(*zipSource); ok {
		return zs.close()
	}
	return nil
}

func (f *LazyFeed) recordErr(err error) {
	if f.loadErr == nil {
		f.loadErr = err
	}
}

func (f *LazyFeed) fastCount(fileName string) int {
	f.countCacheMu.Lock()
	defer f.countCacheMu.Unlock()
	if n, ok := f.countCache[fileName]; ok {
		return n
	}
	if !f.present[fileName] {
		f.countCache[fileName] = 0
		return 0
	}
	rc, ok, err := f.src.open(fileName)
	if err != nil || !ok {
		f.countCache[fileName] = 0
		return 0
	}
	defer rc.Close()
	n, err := ioutil.CountDataRows(rc)
	if err != nil {
		f.countCache[fileName] = 0
		return 0
	}
	f.countCache[fileName] = n
	return n
}

func (f *LazyFeed) Agencies() []*model.Agency {
	f.agenciesCell.fill(func() {
		if err := loadTable(f.src, "agency.txt", func(rows []csvAgency) {
			for _, r := range rows {
				f.agencies = append(f.agencies, r.toModel())
			}
		}); err != nil {
			f.recordErr(err)
		}
	})
	return f.agencies
}

func (f *LazyFeed) Stops() []*model.Stop {
	f.stopsCell.fill(func() {
		if err := loadTable(f.src, "stops.txt", func(rows []csvStop) {
			for _, r := range rows {
				f.stops = append(f.stops, r.toModel())
			}
		}); err != nil {
			f.recordErr(err)
		}
	})
	return f.stops
}

func (f *LazyFeed) Routes() []*model.GtfsRoute {
	f.routesCell.fill(func() {
		if err := loadTable(f.src, "routes.txt", func(rows []csvRoute) {
			for _, r := range rows {
				f.routes = append(f.routes, r.toModel())
			}
		}); err != nil {
			f.recordErr(err)
		}
	})
	return f.routes
}

func (f *LazyFeed) Trips() []*model.Trip {
	f.tripsCell.fill(func() {
		if err := loadTable(f.src, "trips.txt", func(rows []csvTrip) {
			for _, r := range rows {
				f.trips = append(f.trips, r.toModel())
			}
		}); err != nil {
			f.recordErr(err)
		}
	})
	return f.trips
}

func (f *LazyFeed) StopTimes() []*model.StopTime {
	f.stopTimesCell.fill(func() {
		stopTimes, err := loadStopTimes(f.src)
		if err != nil {
			f.recordErr(err)
			return
		}
		f.stopTimes = stopTimes
	})
	return f.stopTimes
}

func (f *LazyFeed) Calendars() []*model.Calendar {
	f.calendarsCell.fill(func() {
		if err := loadTable(f.src, "calendar.txt", func(rows []csvCalendar) {
			for _, r := range rows {
				f.calendars = append(f.calendars, r.toModel())
			}
		}); err != nil {
			f.recordErr(err)
		}
	})
	return f.calendars
}

func (f *LazyFeed) CalendarDates() []*model.CalendarDate {
	f.calendarDatesCell.fill(func() {
		if err := loadTable(f.src, "calendar_dates.txt", func(rows []csvCalendarDate) {
			for _, r := range rows {
				f.calendarDates = append(f.calendarDates, r.toModel())
			}
		}); err != nil {
			f.recordErr(err)
		}
	})
	return f.calendarDates
}

func (f *LazyFeed) Shapes() []*model.AggregatedShape {
	f.shapesCell.fill(func() {
		var flat []*model.Shape
		if err := loadTable(f.src, "shapes.txt", func(rows []csvShape) {
			for _, r := range rows {
				flat = append(flat, r.toModel())
			}
		}); err != nil {
			f.recordErr(err)
			return
		}
		f.shapes = aggregateShapes(flat)
	})
	return f.shapes
}

func (f *LazyFeed) Frequencies() []*model.Frequency {
	f.frequenciesCell.fill(func() {
		if err := loadTable(f.src, "frequencies.txt", func(rows []csvFrequency) {
			for _, r := range rows {
				f.frequencies = append(f.frequencies, r.toModel())
			}
		}); err != nil {
			f.recordErr(err)
		}
	})
	return f.frequencies
}

func (f *LazyFeed) FeedInfo() *model.FeedInfo {
	f.feedInfoCell.fill(func() {
		rows, err := tryLoad[csvFeedInfo](f.src, "feed_info.txt")
		if err != nil {
			f.recordErr(err)
			return
		}
		if len(rows) > 0 {
			f.feedInfo = rows[0].toModel()
		}
	})
	return f.feedInfo
}

// Err returns the first error encountered by any on-demand table load, if
// any occurred.
func (f *LazyFeed) Err() error { return f.loadErr }

func (f *LazyFeed) AgencyCount() int {
	return f.countOrLen("agency.txt", &f.agenciesCell, func() int { return len(f.Agencies()) })
}

func (f *LazyFeed) StopCount() int {
	return f.countOrLen("stops.txt", &f.stopsCell, func() int { return len(f.Stops()) })
}

func (f *LazyFeed) RouteCount() int {
	return f.countOrLen("routes.txt", &f.routesCell, func() int { return len(f.Routes()) })
}

func (f *LazyFeed) TripCount() int {
	return f.countOrLen("trips.txt", &f.tripsCell, func() int { return len(f.Trips()) })
}

func (f *LazyFeed) StopTimeCount() int {
	return f.countOrLen("stop_times.txt", &f.stopTimesCell, func() int { return len(f.StopTimes()) })
}

// countOrLen answers a *_count query without forcing a full parse: if the
// table has already been loaded, reuse len(loaded); otherwise use the fast
// line count.
func (f *LazyFeed) countOrLen(fileName string, cell *lazyCell, loadedLen func() int) int {
	if cell.done {
		return loadedLen()
	}
	return f.fastCount(fileName)
}
