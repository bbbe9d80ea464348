package converter

import (
	"fmt"

	"github.com/transitkit/txc-gtfs/model"
)

// produceRoutes builds one GTFS route per (service_code, line) pair.
func produceRoutes(doc *model.TxcDocument) []*model.GtfsRoute {
	var routes []*model.GtfsRoute
	for _, svc := range doc.Services {
		routeType := model.MapTxcModeToGtfsRouteType(svc.Mode)
		for _, line := range svc.Lines {
			routes = append(routes, &model.GtfsRoute{
				RouteID:        routeID(svc.ServiceCode, line.ID),
				AgencyID:       svc.OperatorRef,
				RouteShortName: line.Name,
				RouteLongName:  "",
				RouteType:      int(routeType),
			})
		}
	}
	return routes
}

func routeID(serviceCode, lineID string) string {
	return fmt.Sprintf("%s:%s", serviceCode, lineID)
}
